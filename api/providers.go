package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// AIProvider is a configured AI backend as returned by the settings
// endpoint. The server never returns the API key.
type AIProvider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	IsActive bool   `json:"is_active"`
}

// AIProviderUpsert creates or updates a provider, keyed by name.
type AIProviderUpsert struct {
	Name     string `json:"name"` // 'groq', 'openai', 'gemini'
	APIKey   string `json:"api_key"`
	Priority int    `json:"priority"`
	IsActive bool   `json:"is_active"`
}

// AIProviders lists the configured providers ordered by priority.
func (c *Client) AIProviders(ctx context.Context) ([]AIProvider, error) {
	var list []AIProvider
	if err := c.do(ctx, c.currentToken(), http.MethodGet, aiProvidersRoute, nil, "", &list); err != nil {
		return nil, errors.Wrap(err, "[Client.AIProviders] providers request")
	}
	return list, nil
}

// UpsertAIProvider creates the named provider or updates its credentials and
// priority if it already exists. Returns the backend's status message.
func (c *Client) UpsertAIProvider(ctx context.Context, provider AIProviderUpsert) (string, error) {
	if provider.Name == "" {
		return "", errors.New("[Client.UpsertAIProvider] provider name is required")
	}
	if provider.APIKey == "" {
		return "", errors.New("[Client.UpsertAIProvider] api key is required")
	}

	body, err := json.Marshal(provider)
	if err != nil {
		return "", errors.Wrap(err, "[Client.UpsertAIProvider] Marshal")
	}

	var response struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, c.currentToken(), http.MethodPost, aiProvidersRoute, bytes.NewReader(body), "application/json", &response); err != nil {
		return "", errors.Wrap(err, "[Client.UpsertAIProvider] providers request")
	}
	return response.Message, nil
}
