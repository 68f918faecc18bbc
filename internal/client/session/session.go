// Package session holds the client's belief about the current authenticated
// user. The store is the single source of truth for "is someone signed in";
// its fields are mutated only through its own methods.
package session

import (
	"context"
	"sync"

	"github.com/okorotkov/taskpad/internal/client/api"
	"github.com/okorotkov/taskpad/internal/client/models"
)

// Store is the process-wide session state. It starts in the loading state
// until the first Init probe completes.
type Store struct {
	client api.Client

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

func NewStore(client api.Client) *Store {
	return &Store{client: client, loading: true}
}

// Init probes the backend for the current user. Failure of any kind —
// including a network failure — clears the user and is swallowed: an
// anonymous visitor hitting this endpoint is an expected outcome, not an
// error condition. This is the only place errors are dropped.
func (s *Store) Init(ctx context.Context) {
	u, err := s.client.CurrentUser(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.user = nil
	} else {
		s.user = u
	}
	s.loading = false
}

// Refresh re-runs the Init probe, resynchronizing state after suspected
// staleness.
func (s *Store) Refresh(ctx context.Context) {
	s.Init(ctx)
}

// SignIn authenticates and installs the returned user into the store before
// returning, so no caller can observe a successful sign-in with the store
// still reporting unauthenticated.
func (s *Store) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.setUser(u)
	return u, nil
}

// SignUp creates an account; state ordering is the same as SignIn.
func (s *Store) SignUp(ctx context.Context, email, password, name string) (*models.User, error) {
	u, err := s.client.SignUp(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	s.setUser(u)
	return u, nil
}

// SignOut calls the backend and clears the user whether or not the call
// succeeded; the error still propagates to the caller after the clear.
func (s *Store) SignOut(ctx context.Context) error {
	defer s.setUser(nil)
	return s.client.SignOut(ctx)
}

// Invalidate drops the user without a network call. Used when an API call
// returns the authentication kind while the store still claims a user: the
// route guard only checks cookie presence, so stale optimistic state is an
// expected transition.
func (s *Store) Invalidate() {
	s.setUser(nil)
}

func (s *Store) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.loading = false
}

// User returns the current user, or nil when signed out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated is derived: true exactly when a user is present.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

// IsLoading reports whether the initial probe is still pending.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
