// Package services contains application services for the TechKatta client.
// This file defines the authentication service: register, login, logout,
// current-user lookup, and the session presence check.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/techkatta/internal/client/api"
	"github.com/dmitrijs2005/techkatta/internal/client/models"
	"github.com/dmitrijs2005/techkatta/internal/client/tokens"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Register: create an account on the server; no local state changes,
//     no auto-login.
//   - Login: authenticate and persist the returned credential pair. Nothing
//     is persisted on failure.
//   - Logout: clear both credential slots. Idempotent.
//   - GetCurrentUser: fetch the caller's account record; errors propagate
//     unchanged, including a 401 that survived the gateway's refresh.
//   - IsAuthenticated: presence check only — an expired-but-present token
//     still reads as authenticated until a server call proves otherwise.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, data models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*models.User, error)
	IsAuthenticated(ctx context.Context) bool
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and the
// local token store.
type authService struct {
	client api.Client
	tokens tokens.Repository
}

// NewAuthService constructs an AuthService bound to the given API client and
// token repository.
func NewAuthService(client api.Client, repo tokens.Repository) AuthService {
	return &authService{client: client, tokens: repo}
}

func (a *authService) Register(ctx context.Context, data models.RegisterRequest) (*models.User, error) {
	return a.client.Register(ctx, data)
}

// Login authenticates against the server and unconditionally persists the
// returned pair before returning it. A failed login persists nothing.
func (a *authService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	pair, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.tokens.SetPair(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist session tokens: %w", err)
	}
	return pair, nil
}

// Logout wipes both credential slots. Calling it with no active session is
// a no-op.
func (a *authService) Logout(ctx context.Context) error {
	return a.tokens.Clear(ctx)
}

func (a *authService) GetCurrentUser(ctx context.Context) (*models.User, error) {
	return a.client.GetCurrentUser(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	access, err := a.tokens.Get(ctx, tokens.SlotAccess)
	return err == nil && access != ""
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
