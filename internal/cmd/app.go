package cmd

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/smartmail/go-assistant-client/api"
	"github.com/smartmail/go-assistant-client/internal/config"
	"github.com/smartmail/go-assistant-client/session"
	"github.com/smartmail/go-assistant-client/tokenstore/filerepo"
	"github.com/smartmail/go-assistant-client/users"
)

// app wires the configuration, token store, API client, and session manager
// for a single command invocation.
type app struct {
	cfg     config.Config
	logger  zerolog.Logger
	client  *api.Client
	manager *session.Manager
}

func newApp() (*app, error) {
	cfg := config.New()

	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	store, err := filerepo.New(cfg.GetDataFolder())
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] filerepo.New")
	}

	client, err := api.New(cfg.GetBaseURL(), api.WithTimeout(cfg.GetHTTPTimeout()), api.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] api.New")
	}

	manager, err := session.New(store, client, client, session.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] session.New")
	}

	return &app{cfg: cfg, logger: logger, client: client, manager: manager}, nil
}

// restore re-establishes any persisted session and points the API client at
// its token.
func (a *app) restore(ctx context.Context) {
	a.manager.Restore(ctx)
	if a.manager.State() == session.StateAuthenticated {
		a.client.SetToken(a.manager.Token())
	}
}

// requireUser restores the session and fails unless it resolved to an
// authenticated user. Expiry and absence present identically: sign in again.
func (a *app) requireUser(ctx context.Context) (*users.User, error) {
	a.restore(ctx)
	if a.manager.State() != session.StateAuthenticated {
		return nil, errors.Wrap(session.NotAuthenticatedErr, "run 'mailassist login' first")
	}
	return a.manager.User(), nil
}
