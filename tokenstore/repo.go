package tokenstore

import "github.com/pkg/errors"

var NoTokenErr = errors.New("no token stored")

// Repo persists the single bearer token across restarts of the client.
// At most one token is stored at a time: Save always overwrites.
type Repo interface {
	// Save durably persists the token, replacing any existing value.
	Save(token string) error
	// Load returns the persisted token, or NoTokenErr when absent.
	Load() (string, error)
	// Clear removes the persisted value. Clearing an empty store is not an error.
	Clear() error
}
