package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/smartmail/go-assistant-client/token"
	"github.com/smartmail/go-assistant-client/tokenstore"
	"github.com/smartmail/go-assistant-client/users"
)

// State is the session lifecycle state.
type State string

const (
	// StateRestoring only occurs between finding a persisted token and the
	// terminal outcome of validating it.
	StateRestoring State = "restoring"
	StateAnonymous State = "anonymous"
	// StateAuthenticated means a token is present, decoded cleanly, was not
	// expired, and the profile fetch for it succeeded.
	StateAuthenticated State = "authenticated"
)

// ProfileFetcher resolves a bearer token into the current user identity.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, rawToken string) (*users.User, error)
}

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Manager owns the authentication token and the session state derived from
// it. It is the only component that mutates the token or user; everything
// else reads through the accessors.
//
// Both the startup restore and the post-login path run through the same
// decode -> expiry -> profile-fetch validation, so a single policy decides
// what "authenticated" means.
type Manager struct {
	store         tokenstore.Repo
	fetcher       ProfileFetcher
	authenticator Authenticator
	nowTime       func() time.Time // nowTime function (injectable for testing)
	logger        zerolog.Logger

	lock       sync.Mutex
	state      State
	rawToken   string
	user       *users.User
	loading    bool
	generation uint64 // bumped on every token set/clear; stale validations check it
}

// Option defines a function type to modify the Manager instance.
type Option func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New initialises a Manager with required dependencies. The manager starts
// Anonymous with the loading flag set; call Restore once at startup to
// re-establish any persisted session and clear the flag.
func New(store tokenstore.Repo, fetcher ProfileFetcher, authenticator Authenticator, options ...Option) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[session.New] token store is required")
	}
	if fetcher == nil {
		return nil, errors.New("[session.New] profile fetcher is required")
	}
	if authenticator == nil {
		return nil, errors.New("[session.New] authenticator is required")
	}

	manager := &Manager{
		store:         store,
		fetcher:       fetcher,
		authenticator: authenticator,
		nowTime:       time.Now,
		logger:        zerolog.Nop(),
		state:         StateAnonymous,
		loading:       true,
	}

	for _, opt := range options {
		opt(manager)
	}

	return manager, nil
}

// Restore re-establishes a session from a previously persisted token. With
// no persisted token it settles to Anonymous immediately and makes no
// network calls. Validation failures of any kind resolve to a forced logout;
// they are never surfaced to the caller.
func (m *Manager) Restore(ctx context.Context) {
	m.lock.Lock()
	rawToken, err := m.store.Load()
	if err != nil {
		if !errors.Is(err, tokenstore.NoTokenErr) {
			m.logger.Warn().Err(err).Msg("could not read persisted token")
		}
		m.state = StateAnonymous
		m.loading = false
		m.lock.Unlock()
		return
	}
	m.rawToken = rawToken
	m.user = nil
	m.generation++
	generation := m.generation
	m.state = StateRestoring
	m.lock.Unlock()

	m.validate(ctx, rawToken, generation)
}

// Login submits credentials and, on success, persists the issued token and
// validates it exactly like a restore. On failure the session state is left
// unchanged and the error is surfaced to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	rawToken, err := m.authenticator.Login(ctx, email, password)
	if err != nil {
		m.logger.Debug().Err(err).Msg("login rejected")
		return errors.Wrap(LoginFailedErr, err.Error())
	}

	m.lock.Lock()
	if err := m.store.Save(rawToken); err != nil {
		m.lock.Unlock()
		return errors.Wrap(err, "[Manager.Login] store.Save")
	}
	m.rawToken = rawToken
	m.user = nil
	m.generation++
	generation := m.generation
	m.state = StateRestoring
	m.lock.Unlock()

	m.validate(ctx, rawToken, generation)
	return nil
}

// Logout clears the persisted token and the in-memory session. Idempotent
// and callable from any state.
func (m *Manager) Logout() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.logoutLocked()
}

// validate is the single source of truth for what makes a session valid:
// decode, check expiry against the injected clock, then resolve the profile.
// Any failure is a forced logout. The generation recorded at the start makes
// a superseded validation a no-op: last write wins on state assignment.
func (m *Manager) validate(ctx context.Context, rawToken string, generation uint64) {
	decoded, err := token.Decode(rawToken)
	if err != nil {
		m.logger.Info().Err(err).Msg("discarding malformed token")
		m.forceLogout(generation)
		return
	}

	if decoded.Expired(m.nowTime()) {
		m.logger.Info().Msg("token expired, clearing session")
		m.forceLogout(generation)
		return
	}

	user, err := m.fetcher.FetchProfile(ctx, rawToken)
	if err != nil {
		// Deliberately conflates "token rejected" with "server unreachable":
		// the session must never be left stuck in Restoring. The cause is
		// logged so an operator can tell the two apart.
		m.logger.Info().Err(err).Msg("profile fetch failed, clearing session")
		m.forceLogout(generation)
		return
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	if generation != m.generation {
		m.logger.Debug().Msg("stale session validation discarded")
		return
	}
	m.user = user
	m.state = StateAuthenticated
	m.loading = false
}

// forceLogout resolves a failed validation to Anonymous, unless a newer
// login or logout has superseded it in the meantime.
func (m *Manager) forceLogout(generation uint64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if generation != m.generation {
		m.logger.Debug().Msg("stale session validation discarded")
		return
	}
	m.logoutLocked()
}

func (m *Manager) logoutLocked() {
	if err := m.store.Clear(); err != nil {
		m.logger.Warn().Err(err).Msg("could not clear persisted token")
	}
	m.rawToken = ""
	m.user = nil
	m.generation++
	m.state = StateAnonymous
	m.loading = false
}

// State returns the current session state.
func (m *Manager) State() State {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.state
}

// User returns the resolved profile, or nil unless Authenticated.
func (m *Manager) User() *users.User {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.user
}

// Token returns the active bearer token, or empty unless a token is set.
func (m *Manager) Token() string {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.rawToken
}

// Loading reports whether the initial restore is still in progress. It is
// true from construction until Restore reaches a terminal outcome, and false
// for the rest of the session's lifetime.
func (m *Manager) Loading() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.loading
}
