package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/tokenstore"
)

// State is the authentication lifecycle of the storefront session.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
	StateFailed          State = "failed"
)

// AuthAPI is the slice of the marketplace client the session store needs.
// Consumers define this interface, not the HTTP implementation.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, reg domain.Registration) (*api.AuthResponse, error)
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*api.UserResponse, error)
	ChangePassword(ctx context.Context, change api.PasswordChange) (string, error)
}

// Listener observes auth-state transitions. The cart engine subscribes to
// reload on customer login and clear on logout.
type Listener func(state State, user *domain.User)

// Store owns the authenticated principal and its bearer credential. It is the
// single writer of both, all API calls read the credential through Token().
type Store struct {
	api    AuthAPI
	tokens tokenstore.Store

	mu        sync.RWMutex
	state     State
	user      *domain.User
	token     string
	listeners []Listener
}

func NewStore(authAPI AuthAPI, tokens tokenstore.Store) *Store {
	return &Store{
		api:    authAPI,
		tokens: tokens,
		state:  StateUnauthenticated,
	}
}

// Subscribe registers a listener for every subsequent state transition.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns a copy of the current principal, or nil outside Authenticated.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// transition swaps the state and notifies listeners outside the lock.
func (s *Store) transition(state State, user *domain.User, token string) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.token = token
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		var u *domain.User
		if user != nil {
			cp := *user
			u = &cp
		}
		l(state, u)
	}
}

// Restore resumes a previous session from the durable token slot. The session
// is Loading for the whole restore, including the slot read. With no stored
// credential it settles Unauthenticated without any network call; a credential
// that fails validation is discarded.
func (s *Store) Restore(ctx context.Context) domain.Result {
	s.transition(StateLoading, nil, "")

	token, err := s.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNotFound) {
			log.Printf("token load error: %v", err)
		}
		s.transition(StateUnauthenticated, nil, "")
		return domain.Result{Success: false, Message: "No stored session"}
	}

	// attach the credential for the validation call, still Loading
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	user, err := s.api.Me(ctx)
	if err != nil {
		if errClear := s.tokens.Clear(ctx); errClear != nil {
			log.Printf("token clear error: %v", errClear)
		}
		s.transition(StateFailed, nil, "")
		s.transition(StateUnauthenticated, nil, "")
		return domain.Result{Success: false, Message: "Token validation failed"}
	}

	s.transition(StateAuthenticated, user, token)
	return domain.Result{Success: true}
}

func (s *Store) Login(ctx context.Context, email, password string) domain.Result {
	s.transition(StateLoading, nil, "")

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.transition(StateUnauthenticated, nil, "")
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Login failed")}
	}

	s.persistToken(resp.Token)
	s.transition(StateAuthenticated, &resp.User, resp.Token)
	return domain.Result{Success: true, Message: resp.Message}
}

// Register validates the form locally first, invalid submissions never reach
// the network. A successful registration behaves like a login.
func (s *Store) Register(ctx context.Context, reg domain.Registration) domain.Result {
	if err := reg.Validate(); err != nil {
		return domain.Result{Success: false, Message: err.Error()}
	}

	s.transition(StateLoading, nil, "")

	resp, err := s.api.Register(ctx, reg)
	if err != nil {
		s.transition(StateUnauthenticated, nil, "")
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Registration failed")}
	}

	s.persistToken(resp.Token)
	s.transition(StateAuthenticated, &resp.User, resp.Token)
	return domain.Result{Success: true, Message: resp.Message}
}

// UpdateProfile merges the server's user into the current principal without
// touching the authentication state.
func (s *Store) UpdateProfile(ctx context.Context, update api.ProfileUpdate) domain.Result {
	if !s.IsAuthenticated() {
		return domain.Result{Success: false, Message: domain.ErrNotAuthenticated.Error()}
	}

	resp, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Profile update failed")}
	}

	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.mu.Unlock()

	return domain.Result{Success: true, Message: resp.Message}
}

func (s *Store) ChangePassword(ctx context.Context, change api.PasswordChange) domain.Result {
	if !s.IsAuthenticated() {
		return domain.Result{Success: false, Message: domain.ErrNotAuthenticated.Error()}
	}

	message, err := s.api.ChangePassword(ctx, change)
	if err != nil {
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Password change failed")}
	}
	return domain.Result{Success: true, Message: message}
}

// Logout drops the principal and credential unconditionally. It never fails,
// a token-slot error is logged and the local state clears anyway.
func (s *Store) Logout() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.tokens.Clear(ctx); err != nil {
		log.Printf("token clear error: %v", err)
	}

	s.transition(StateUnauthenticated, nil, "")
}

func (s *Store) persistToken(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.tokens.Save(ctx, token); err != nil {
		log.Printf("token save error: %v", err)
	}
}
