// Package session owns the authentication lifecycle: it is the single source
// of truth for who is logged in, and the only writer to the persisted
// credential and cached profile.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/courier-org/courier-cli/internal/api"
	"github.com/courier-org/courier-cli/internal/credstore"
)

// ErrMissingToken is returned by Login when the backend response carries no
// token under either supported field.
var ErrMissingToken = errors.New("session: login response contained no token")

// AuthClient is the slice of the API surface the session store needs.
// *api.AuthService satisfies it.
type AuthClient interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	CurrentUser(ctx context.Context) (*api.User, error)
}

// Session is a snapshot of the in-memory authentication state.
type Session struct {
	User    *api.User
	Loading bool
}

// IsAuthenticated reports whether a user is present.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// Store holds the session and drives its three lifecycle operations:
// Bootstrap, Login and Logout. Lifecycle operations are serialized by an
// internal mutex, so a Login submitted while Bootstrap is still hydrating
// observes a consistent persisted store.
type Store struct {
	mu          sync.Mutex
	creds       *credstore.Stack
	auth        AuthClient
	session     Session
	subscribers []func(Session)
}

// New creates a session store in the Bootstrapping state.
func New(creds *credstore.Stack, auth AuthClient) *Store {
	return &Store{
		creds:   creds,
		auth:    auth,
		session: Session{Loading: true},
	}
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Subscribe registers fn to be called with a snapshot after every state
// change. Callbacks run synchronously inside the store's lock and must not
// call back into the store.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Bootstrap restores the session from the persisted store. It migrates a
// legacy credential into the primary store, optimistically adopts a cached
// profile, then hydrates the current user from the backend. Any hydration
// failure silently demotes the session to anonymous: an expired token must
// never surface as an error, only log the user out. Loading ends false in
// every terminal path.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Loading = true

	// One-time legacy migration; a no-op once migrated.
	_ = s.creds.Migrate(credstore.KeyToken)

	token, tokenErr := s.creds.Get(credstore.KeyToken)
	hasToken := tokenErr == nil && token != ""

	// Adopt the cached profile so consumers can render optimistically
	// before hydration completes. A cached copy that fails to parse is
	// discarded without blocking the credential.
	if raw, err := s.creds.Get(credstore.KeyUser); err == nil {
		var cached api.User
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			s.session.User = &cached
		} else {
			_ = s.creds.Delete(credstore.KeyUser)
		}
	}

	if !hasToken {
		s.session.User = nil
		s.finishLocked()
		return
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		// Invalid or expired credential: clear everything.
		_ = s.creds.Delete(credstore.KeyToken)
		_ = s.creds.Delete(credstore.KeyUser)
		s.session.User = nil
	} else {
		s.session.User = user
		s.cacheUserLocked(user)
	}
	s.finishLocked()
}

// Login authenticates, persists the credential, then hydrates and persists
// the profile through the request gateway (which picks the new credential up
// from the store, proving the interceptor path). Unlike Bootstrap, every
// failure propagates to the caller; prior in-memory state is left unchanged.
func (s *Store) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	token := resp.BearerToken()
	if token == "" {
		return nil, ErrMissingToken
	}
	if err := s.creds.Set(credstore.KeyToken, token); err != nil {
		return nil, fmt.Errorf("failed to save credential: %w", err)
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheUserLocked(user)

	s.session.User = user
	s.notifyLocked()
	return resp, nil
}

// Logout clears the persisted credential and cached profile from both stores
// and drops the in-memory user. Best-effort local clearing only: no network
// call, never fails.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.creds.Delete(credstore.KeyToken)
	_ = s.creds.Delete(credstore.KeyUser)
	s.session.User = nil
	s.notifyLocked()
}

func (s *Store) cacheUserLocked(user *api.User) {
	if data, err := json.Marshal(user); err == nil {
		_ = s.creds.Set(credstore.KeyUser, string(data))
	}
}

func (s *Store) finishLocked() {
	s.session.Loading = false
	s.notifyLocked()
}

func (s *Store) notifyLocked() {
	for _, fn := range s.subscribers {
		fn(s.session)
	}
}
