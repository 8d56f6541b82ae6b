// Package api contains the HTTP building blocks for talking to the
// TechKatta backend.
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register/Login, GetCurrentUser, and a liveness Ping.
//  2. A concrete HTTP implementation (see HTTPClient) built on a custom
//     RoundTripper (see Transport) that injects the bearer access token,
//     transparently refreshes an expired session once per request, and maps
//     HTTP statuses to sentinel errors.
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: common.ErrUnauthorized, common.ErrUnavailable,
// common.ErrSessionExpired. Validation failures carry the server's detail
// message via *APIError.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api

import (
	"context"

	"github.com/dmitrijs2005/techkatta/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, data models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error
}
