// Package models defines the wire shapes exchanged with the TechKatta API.
// These are passive DTOs: the client never mutates a server record locally,
// it only re-fetches.
package models

import "time"

// Role enumerates the account roles known to the platform.
type Role string

const (
	RoleStudent   Role = "student"
	RoleMentor    Role = "mentor"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// User is the server's account record. Immutable from the client's
// perspective.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name,omitempty"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// DisplayName returns the name shown in greetings: the full name when the
// user provided one, the username otherwise.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}
