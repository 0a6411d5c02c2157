package domain

import (
	"slices"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. PasswordHash is an encoded argon2id hash and
// is never serialized.
type User struct {
	ID           uint     `json:"id"`
	Name         string   `json:"naam"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Roles        []string `json:"-"`
}

// Session holds the verified claims of a bearer token for one request.
type Session struct {
	UserID    uint
	Roles     []string
	ExpiresAt time.Time
}

// HasRole reports whether the session carries role.
func (s Session) HasRole(role string) bool {
	return slices.Contains(s.Roles, role)
}

// IsAdmin is shorthand for HasRole(RoleAdmin).
func (s Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}
