package domain

import (
	"strings"
	"time"
)

// Role is the permission level attached to a user account.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"

	// RoleUnknown is the fail-closed value for anything outside the
	// canonical enumeration. It carries no privileges at all.
	RoleUnknown Role = ""
)

// ParseRole normalises a raw role string into the canonical enumeration.
// Anything unrecognised (including the legacy "admin" variant that shows
// up in old records) collapses to RoleUnknown rather than failing.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent
	case RoleTeacher:
		return RoleTeacher
	default:
		return RoleUnknown
	}
}

// Valid reports whether the role is part of the canonical enumeration.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User models an account on the StudyTech platform. The same shape is
// used for API payloads and for the persisted session record; Password
// is only ever populated during authentication and registration flows.
type User struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Sanitized returns a copy safe to persist or display: the password is
// stripped and the role collapsed to the canonical enumeration.
func (u User) Sanitized() User {
	u.Password = ""
	u.Role = ParseRole(string(u.Role))
	return u
}
