package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/smartmail/go-assistant-client/users"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10
)

// Client talks to the Smart Email Assistant backend. The base URL is fixed at
// construction; the ambient bearer token used for product calls is set once a
// session has been established. Profile fetches during session validation take
// their token explicitly so validation never depends on client state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	lock     sync.RWMutex
	rawToken string
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client (primarily for testing).
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// New initialises a new Client for the given backend base URL.
func New(baseURL string, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[api.New] base URL is required")
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// SetToken sets the bearer token attached to subsequent product calls,
// replacing any previous value.
func (c *Client) SetToken(rawToken string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.rawToken = rawToken
}

// ClearToken removes the ambient bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) currentToken() string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.rawToken
}

// Login submits credentials to the login endpoint using OAuth2 password-form
// encoding and returns the issued access token. Any non-2xx response is an
// error; the caller decides what to surface to the user.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var response struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(ctx, "", http.MethodPost, loginRoute, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &response)
	if err != nil {
		return "", errors.Wrap(err, "[Client.Login] login request")
	}
	if response.AccessToken == "" {
		return "", errors.New("[Client.Login] response missing access token")
	}
	return response.AccessToken, nil
}

// FetchProfile resolves a bearer token into the current user via a single
// call to the profile endpoint. No retries: a failure means the session is
// not usable as-is.
func (c *Client) FetchProfile(ctx context.Context, rawToken string) (*users.User, error) {
	var user users.User
	if err := c.do(ctx, rawToken, http.MethodGet, meRoute, nil, "", &user); err != nil {
		return nil, errors.Wrap(err, "[Client.FetchProfile] profile request")
	}
	return &user, nil
}

// Users lists the registered users visible to the current session.
func (c *Client) Users(ctx context.Context) ([]users.User, error) {
	var list []users.User
	if err := c.do(ctx, c.currentToken(), http.MethodGet, configUsersRoute, nil, "", &list); err != nil {
		return nil, errors.Wrap(err, "[Client.Users] users request")
	}
	return list, nil
}

// do performs a single request against the backend. A non-empty rawToken is
// attached as a bearer credential through an oauth2 static token source.
func (c *Client) do(ctx context.Context, rawToken, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "[Client.do] NewRequestWithContext")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.New().String()
	req.Header.Set(requestIDHeader, requestID)

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Msg("api request")

	resp, err := c.authorisedClient(ctx, rawToken).Do(req)
	if err != nil {
		return errors.Wrap(err, "[Client.do] Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "[Client.do] Decode")
	}
	return nil
}

// authorisedClient wraps the base HTTP client with bearer injection when a
// token is supplied. Unauthenticated calls (login) use the base client as-is.
func (c *Client) authorisedClient(ctx context.Context, rawToken string) *http.Client {
	if rawToken == "" {
		return c.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	authorised := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: rawToken}))
	authorised.Timeout = c.httpClient.Timeout // oauth2.NewClient only carries the transport over
	return authorised
}
