// Package session owns the authenticated identity: a state machine that is
// hydrated from a durable cache or a backend session probe, mutated on
// login/logout and persisted across process restarts.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/tmarques/hiredash/internal/types"
)

// State is the resolution state of the session store.
type State int

// Session states. A store starts Unresolved and settles into exactly one of
// Authenticated or Anonymous after Hydrate.
const (
	Unresolved State = iota
	Authenticated
	Anonymous
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unresolved"
	}
}

// Backend is the subset of the API client the store needs.
type Backend interface {
	Login(ctx context.Context, email, password string) (*types.Identity, error)
	SessionProbe(ctx context.Context) (*types.Identity, error)
	Logout(ctx context.Context) error
}

// Store holds the current session. It is constructed explicitly and passed
// by reference to consumers; there is no ambient global session.
type Store struct {
	backend Backend
	storage Storage
	log     zerolog.Logger

	state    State
	identity *types.Identity
}

// NewStore creates a session store in the Unresolved state.
func NewStore(backend Backend, storage Storage, log zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		storage: storage,
		log:     log,
		state:   Unresolved,
	}
}

// Snapshot returns the current state and identity. The identity is nil
// unless the state is Authenticated.
func (s *Store) Snapshot() (State, *types.Identity) {
	return s.state, s.identity
}

// Hydrate resolves the session. A cached identity is used directly with no
// network round trip, unless its token is visibly expired; otherwise the
// backend is probed. Any probe failure or empty payload settles the store as
// Anonymous. Hydrate never returns a transport error: resolution always
// completes.
func (s *Store) Hydrate(ctx context.Context) {
	cached, err := s.storage.LoadIdentity()
	if err != nil {
		s.log.Warn().Err(err).Msg("session cache unreadable, falling back to probe")
	}
	if cached != nil && !tokenExpired(cached.Token, time.Now()) {
		s.become(Authenticated, cached)
		return
	}
	if cached != nil {
		// Expired cache entry; drop it before probing.
		_ = s.storage.ClearIdentity()
	}

	identity, err := s.backend.SessionProbe(ctx)
	if err != nil || identity == nil {
		if err != nil {
			s.log.Debug().Err(err).Msg("session probe failed")
		}
		s.become(Anonymous, nil)
		return
	}

	s.persist(identity)
	s.become(Authenticated, identity)
}

// Login exchanges credentials for an authenticated session. A failed login
// leaves the current state untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*types.Identity, error) {
	identity, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if identity.Role == "" {
		identity.Role = types.RoleUser
	}

	s.persist(identity)
	s.become(Authenticated, identity)
	return identity, nil
}

// Logout notifies the backend best-effort, then unconditionally clears the
// local identity. A failed backend notify is swallowed, not surfaced.
func (s *Store) Logout(ctx context.Context) {
	if err := s.backend.Logout(ctx); err != nil {
		s.log.Debug().Err(err).Msg("backend logout notify failed")
	}
	if err := s.storage.ClearIdentity(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session cache")
	}
	s.become(Anonymous, nil)
}

// persist writes the identity to durable storage. The role field is dropped
// for non-admin users so a stale cache can never carry an escalated role.
func (s *Store) persist(identity *types.Identity) {
	stored := *identity
	if stored.Role != types.RoleAdmin {
		stored.Role = ""
	}
	if err := s.storage.SaveIdentity(&stored); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session")
	}
}

func (s *Store) become(state State, identity *types.Identity) {
	s.state = state
	s.identity = identity
	s.log.Debug().Stringer("state", state).Msg("session resolved")
}

// tokenExpired reports whether a cached JWT is past its expiry claim. The
// client holds no signing secret, so the claim is read without verification;
// tokens that are absent or unreadable are not treated as expired, matching
// the cache-first contract.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
