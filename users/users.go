package users

import "time"

// User is the authenticated identity returned by the backend's profile
// endpoint. It is a read-only snapshot: each successful fetch replaces the
// previous value wholesale, the client never merges fields.
type User struct {
	ID             string     `json:"id,omitempty"`              // Unique identifier for the user
	Email          string     `json:"email,omitempty"`           // User's email address
	Name           string     `json:"name,omitempty"`            // Display name
	OutlookProfile string     `json:"outlook_profile,omitempty"` // Linked mailbox account, if any
	CreatedAt      *time.Time `json:"created_at,omitempty"`      // When the account was registered
	LastLogin      *time.Time `json:"last_login,omitempty"`      // Last successful login
}

// DisplayName returns the name to show in user-facing output, falling back
// to the email address when the profile has no name set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
