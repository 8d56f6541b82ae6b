// Package session holds the client-side session state: the current user,
// the authentication flag, and the loading/error slots the UI renders from.
// It is the Go rendition of the browser build's auth store.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/techkatta/internal/client/api"
	"github.com/dmitrijs2005/techkatta/internal/client/models"
	"github.com/dmitrijs2005/techkatta/internal/client/services"
	"github.com/dmitrijs2005/techkatta/internal/logging"
)

// State is a snapshot of the session.
//
// Invariants: User != nil implies IsAuthenticated; the converse does not
// hold (authenticated-but-not-yet-fetched is a valid transient state).
// IsAuthenticated reflects token presence, not token validity.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// Store is the process-wide mutable session container. It is injectable by
// design: constructing a fresh Store per test isolates state completely.
//
// Every mutation synchronously notifies all current subscribers before the
// mutating method returns, and leaves IsLoading == false on every exit path.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int

	auth services.AuthService
	log  logging.Logger
}

// NewStore seeds IsAuthenticated from the token presence check; the user
// record stays nil until FetchUser resolves it.
func NewStore(ctx context.Context, auth services.AuthService, log logging.Logger) *Store {
	s := &Store{auth: auth, log: log, subs: make(map[int]func(State))}
	s.state.IsAuthenticated = auth.IsAuthenticated(ctx)
	return s
}

// State returns a copy of the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with every new snapshot. The returned
// function cancels the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// set applies mutate under the lock, then notifies subscribers outside it
// so a subscriber may call State() without deadlocking.
func (s *Store) set(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Login authenticates, then resolves the user record. On failure the error
// slot gets a human-readable message and the error is returned for the
// caller to react to; IsAuthenticated is left unchanged.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.set(func(st *State) { st.IsLoading = true; st.Err = "" })

	if _, err := s.auth.Login(ctx, email, password); err != nil {
		s.set(func(st *State) { st.IsLoading = false; st.Err = errDetail(err, "Login failed") })
		return err
	}

	user, err := s.auth.GetCurrentUser(ctx)
	if err != nil {
		s.set(func(st *State) { st.IsLoading = false; st.Err = errDetail(err, "Login failed") })
		return err
	}

	s.set(func(st *State) {
		st.User = user
		st.IsAuthenticated = true
		st.IsLoading = false
	})
	return nil
}

// Register creates an account. It deliberately does not log the user in;
// success only clears the loading flag.
func (s *Store) Register(ctx context.Context, data models.RegisterRequest) error {
	s.set(func(st *State) { st.IsLoading = true; st.Err = "" })

	if _, err := s.auth.Register(ctx, data); err != nil {
		s.set(func(st *State) { st.IsLoading = false; st.Err = errDetail(err, "Registration failed") })
		return err
	}

	s.set(func(st *State) { st.IsLoading = false })
	return nil
}

// Logout clears the stored credentials and drops the in-memory session.
// It never fails: a storage error is logged and the state is reset anyway.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored credentials", "error", err)
	}
	s.set(func(st *State) { st.User = nil; st.IsAuthenticated = false })
}

// FetchUser resolves the user record for an existing session, typically at
// startup. Without a stored credential it settles to logged-out without a
// network call. On any fetch error the session is torn down: flags reset
// and stored credentials cleared (that cleanup's own error is the one place
// a failure is only logged).
func (s *Store) FetchUser(ctx context.Context) error {
	if !s.auth.IsAuthenticated(ctx) {
		s.set(func(st *State) { st.IsAuthenticated = false })
		return nil
	}

	s.set(func(st *State) { st.IsLoading = true })

	user, err := s.auth.GetCurrentUser(ctx)
	if err != nil {
		s.set(func(st *State) {
			st.User = nil
			st.IsAuthenticated = false
			st.IsLoading = false
		})
		if lerr := s.auth.Logout(ctx); lerr != nil {
			s.log.Warn(ctx, "failed to clear stored credentials", "error", lerr)
		}
		return err
	}

	s.set(func(st *State) {
		st.User = user
		st.IsAuthenticated = true
		st.IsLoading = false
	})
	return nil
}

// Invalidate drops the in-memory session without touching stored
// credentials. The gateway calls it after a failed refresh has already
// cleared the store; it is the CLI analog of the browser's forced
// navigation to the login page.
func (s *Store) Invalidate() {
	s.set(func(st *State) {
		st.User = nil
		st.IsAuthenticated = false
		st.IsLoading = false
	})
}

// errDetail prefers the server's field-level detail message and falls back
// to a generic one.
func errDetail(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
