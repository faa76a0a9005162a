package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/smartmail/go-assistant-client/api"
	"github.com/smartmail/go-assistant-client/users"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := api.New("  ")
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))

		require.NoError(t, r.ParseForm())
		require.Equal(t, "admin@example.com", r.PostFormValue("username"))
		require.Equal(t, "secret123", r.PostFormValue("password"))

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "issued-token"})
	}))
	defer server.Close()

	client, err := api.New(server.URL)
	require.NoError(t, err)

	rawToken, err := client.Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "issued-token", rawToken)
}

func TestLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Incorrect email or password"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := api.New(server.URL)
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)

	var statusErr *api.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusUnauthorized, statusErr.Code)
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":    "u1",
			"name":  "Alice",
			"email": "alice@x.com",
		})
	}))
	defer server.Close()

	client, err := api.New(server.URL)
	require.NoError(t, err)

	user, err := client.FetchProfile(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Equal(t, &users.User{ID: "u1", Name: "Alice", Email: "alice@x.com"}, user)
}

func TestFetchProfileUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "could not validate credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := api.New(server.URL)
	require.NoError(t, err)

	_, err = client.FetchProfile(context.Background(), "stale-token")
	require.Error(t, err)

	var statusErr *api.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusUnauthorized, statusErr.Code)
}

func TestEmailsUsesAmbientToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/emails", r.URL.Path)
		require.Equal(t, "Bearer ambient-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"id":"e1","subject":"Quarterly report","sender":"bob@x.com","is_read":false},
			{"id":"e2","subject":"Lunch?","sender":"carol@x.com","is_read":true}
		]`))
	}))
	defer server.Close()

	client, err := api.New(server.URL)
	require.NoError(t, err)
	client.SetToken("ambient-token")

	list, err := client.Emails(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Quarterly report", list[0].Subject)
	require.False(t, list[0].IsRead)
	require.True(t, list[1].IsRead)
}

func TestSyncEmails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/emails/sync", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Synced 12 emails"})
	}))
	defer server.Close()

	client, err := api.New(server.URL)
	require.NoError(t, err)
	client.SetToken("tok")

	message, err := client.SyncEmails(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Synced 12 emails", message)
}

func TestUpsertAIProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/config/ai-providers", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "groq", body["name"])
		require.Equal(t, "gsk_test", body["api_key"])
		require.Equal(t, float64(2), body["priority"])
		require.Equal(t, true, body["is_active"])

		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Provider created"})
	}))
	defer server.Close()

	client, err := api.New(server.URL)
	require.NoError(t, err)
	client.SetToken("tok")

	message, err := client.UpsertAIProvider(context.Background(), api.AIProviderUpsert{
		Name:     "groq",
		APIKey:   "gsk_test",
		Priority: 2,
		IsActive: true,
	})
	require.NoError(t, err)
	require.Equal(t, "Provider created", message)
}

func TestUpsertAIProviderValidation(t *testing.T) {
	client, err := api.New("http://localhost:8000")
	require.NoError(t, err)

	_, err = client.UpsertAIProvider(context.Background(), api.AIProviderUpsert{APIKey: "k"})
	require.Error(t, err)

	_, err = client.UpsertAIProvider(context.Background(), api.AIProviderUpsert{Name: "groq"})
	require.Error(t, err)
}

func TestAIProvidersAndUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/config/ai-providers":
			_, _ = w.Write([]byte(`[{"id":"p1","name":"groq","priority":1,"is_active":true}]`))
		case "/api/config/users":
			_, _ = w.Write([]byte(`[{"id":"u1","email":"alice@x.com","name":"Alice"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := api.New(server.URL)
	require.NoError(t, err)
	client.SetToken("tok")

	providers, err := client.AIProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 1)
	require.Equal(t, "groq", providers[0].Name)
	require.True(t, providers[0].IsActive)

	list, err := client.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Alice", list[0].Name)
}

func TestTransportFailure(t *testing.T) {
	client, err := api.New("http://127.0.0.1:1") // nothing listens here
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "a@x.com", "pw")
	require.Error(t, err)

	var statusErr *api.StatusError
	require.False(t, errors.As(err, &statusErr), "transport failures are not status errors")
}
