package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/smartmail/go-assistant-client/emails"
)

// Emails returns the synced messages for the current session, newest first
// as ordered by the backend.
func (c *Client) Emails(ctx context.Context) ([]emails.Email, error) {
	var list []emails.Email
	if err := c.do(ctx, c.currentToken(), http.MethodGet, emailsRoute, nil, "", &list); err != nil {
		return nil, errors.Wrap(err, "[Client.Emails] emails request")
	}
	return list, nil
}

// Email fetches a single message by ID.
func (c *Client) Email(ctx context.Context, id string) (*emails.Email, error) {
	if id == "" {
		return nil, errors.New("[Client.Email] id is required")
	}
	var email emails.Email
	if err := c.do(ctx, c.currentToken(), http.MethodGet, emailsRoute+"/"+id, nil, "", &email); err != nil {
		return nil, errors.Wrap(err, "[Client.Email] email request")
	}
	return &email, nil
}

// SyncEmails asks the backend to pull new mail from the linked mailbox.
// Returns the backend's status message (e.g. "Synced 12 emails").
func (c *Client) SyncEmails(ctx context.Context) (string, error) {
	var response struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, c.currentToken(), http.MethodPost, emailsSyncRoute, nil, "", &response); err != nil {
		return "", errors.Wrap(err, "[Client.SyncEmails] sync request")
	}
	return response.Message, nil
}
