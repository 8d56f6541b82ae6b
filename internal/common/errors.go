// Package common contains shared constants and sentinel errors used across
// TechKatta client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")

	// Generic flow control.
	ErrNotFound = errors.New("not found")
)
