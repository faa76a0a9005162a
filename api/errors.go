package api

import "fmt"

// StatusError is returned for any non-2xx response. Body carries the start
// of the response body for diagnostics; callers should not parse it.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Body)
}
