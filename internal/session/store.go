// Package session holds the client's authentication state: exactly one of
// Unauthenticated, Authenticating, Authenticated at any observation point.
// State changes happen only through Init, Login, Logout and
// FetchCurrentUser.
package session

import (
	"context"
	"sync"

	"github.com/studioportal/portal-client/internal/common"
	"github.com/studioportal/portal-client/internal/logging"
	"github.com/studioportal/portal-client/internal/models"
	"github.com/studioportal/portal-client/internal/storage"
	"github.com/studioportal/portal-client/internal/token"
	"github.com/studioportal/portal-client/internal/transport"
)

type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

const snapshotFileName = "session.json"

// snapshot is the last-known session persisted between runs. It is display
// material only; authorization always waits for a fresh /auth/me.
type snapshot struct {
	User *models.User `json:"user"`
}

// Store is the process-wide session. Construct one at startup and pass it to
// every controller; it is safe for concurrent use.
type Store struct {
	client  transport.Client
	tokens  *token.Store
	storage *storage.Store
	log     logging.Logger

	mu        sync.Mutex
	state     State
	user      *models.User
	lastKnown *models.User
}

func New(client transport.Client, tokens *token.Store, st *storage.Store, log logging.Logger) *Store {
	return &Store{
		client:  client,
		tokens:  tokens,
		storage: st,
		log:     log,
		state:   StateUnauthenticated,
	}
}

// State returns the current authentication state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether the session has settled as authenticated.
func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// CurrentUser returns the authenticated user snapshot. ok is false unless
// the state is Authenticated; the user must not be read mid-transition.
func (s *Store) CurrentUser() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return nil, false
	}
	return s.user, true
}

// LastKnownUser returns the user restored from the persisted snapshot during
// Init, for display while the session settles. Never use it for gating.
func (s *Store) LastKnownUser() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastKnown == nil {
		return nil, false
	}
	return s.lastKnown, true
}

func (s *Store) setState(st State, user *models.User) {
	s.mu.Lock()
	s.state = st
	s.user = user
	s.mu.Unlock()
}

// Init hydrates the session on process start: restore the last-known
// snapshot, then validate any persisted token pair with a fresh /auth/me.
// Storage unavailability is recoverable and leaves the session
// Unauthenticated.
func (s *Store) Init(ctx context.Context) State {
	var snap snapshot
	if ok, err := s.storage.Read(snapshotFileName, &snap); err != nil {
		s.log.Warn(ctx, "session snapshot unavailable", "error", err)
	} else if ok && snap.User != nil {
		s.mu.Lock()
		s.lastKnown = snap.User
		s.mu.Unlock()
		s.log.Debug(ctx, "restored session snapshot", "user_id", snap.User.ID)
	}

	return s.FetchCurrentUser(ctx)
}

// Teardown logs the final session state. Persistence is handled eagerly by
// the operations themselves, so there is nothing to flush.
func (s *Store) Teardown(ctx context.Context) {
	s.log.Debug(ctx, "session teardown", "state", s.State().String())
}

// Login authenticates with the backend. The token pair is persisted before
// the follow-up user fetch; if either step fails the pair is discarded and
// the session returns to Unauthenticated with an AuthenticationError
// carrying the backend detail when available.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setState(StateAuthenticating, nil)

	pair, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.setState(StateUnauthenticated, nil)
		return &common.AuthenticationError{Message: common.Detail(err), Err: err}
	}

	if err := s.tokens.Save(pair); err != nil {
		s.setState(StateUnauthenticated, nil)
		return &common.AuthenticationError{Message: "could not persist session", Err: err}
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		// No orphaned token: roll back the pair written above.
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.log.Warn(ctx, "failed to clear token after login rollback", "error", clearErr)
		}
		s.setState(StateUnauthenticated, nil)
		return &common.AuthenticationError{Message: common.Detail(err), Err: err}
	}

	s.setState(StateAuthenticated, user)
	s.persistSnapshot(ctx, user)
	s.log.Info(ctx, "login succeeded", "user_id", user.ID, "role", user.Role)
	return nil
}

// Logout clears the token pair and snapshot and returns to Unauthenticated.
// No backend round-trip is required; safe to call from any state, any number
// of times.
func (s *Store) Logout(ctx context.Context) {
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn(ctx, "failed to clear tokens on logout", "error", err)
	}
	if err := s.storage.Remove(snapshotFileName); err != nil {
		s.log.Warn(ctx, "failed to clear session snapshot on logout", "error", err)
	}
	s.setState(StateUnauthenticated, nil)
	s.log.Info(ctx, "logged out")
}

// FetchCurrentUser refreshes the user snapshot against the backend. It is
// the sole recovery path for stale or invalid tokens: any failure demotes to
// Unauthenticated and clears the pair. It never returns an error; it
// resolves to the resulting state instead.
func (s *Store) FetchCurrentUser(ctx context.Context) State {
	pair, ok, err := s.tokens.Load()
	if err != nil {
		s.log.Warn(ctx, "token storage unavailable", "error", err)
		s.setState(StateUnauthenticated, nil)
		return StateUnauthenticated
	}
	if !ok {
		s.setState(StateUnauthenticated, nil)
		return StateUnauthenticated
	}

	if exp, known := pair.AccessExpiresAt(); known {
		s.log.Debug(ctx, "validating persisted token", "expires_at", exp)
	}

	s.setState(StateAuthenticating, nil)

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Info(ctx, "session refresh failed, demoting", "error", err)
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.log.Warn(ctx, "failed to clear stale token", "error", clearErr)
		}
		if removeErr := s.storage.Remove(snapshotFileName); removeErr != nil {
			s.log.Warn(ctx, "failed to clear stale snapshot", "error", removeErr)
		}
		s.setState(StateUnauthenticated, nil)
		return StateUnauthenticated
	}

	s.setState(StateAuthenticated, user)
	s.persistSnapshot(ctx, user)
	return StateAuthenticated
}

func (s *Store) persistSnapshot(ctx context.Context, user *models.User) {
	if err := s.storage.Write(snapshotFileName, snapshot{User: user}); err != nil {
		s.log.Warn(ctx, "failed to persist session snapshot", "error", err)
	}
}
