package ports

import (
	"context"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// AuthService owns the session lifecycle: it is the only component that
// mutates the session slot, and observers watch it through Subscribe.
type AuthService interface {
	// Authenticate verifies the credentials against the platform and, on
	// success, establishes and persists a session. The returned user
	// never carries the password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// Register creates an account on the platform and establishes a
	// session exactly as Authenticate does.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Restore loads a persisted session at process start. Missing or
	// corrupt storage degrades to (nil, nil).
	Restore(ctx context.Context) (*domain.User, error)

	// Logout tears the session down. Succeeds even when no session
	// exists.
	Logout(ctx context.Context) error

	// Current returns the in-memory session, or nil when logged out.
	Current() *domain.User

	// Subscribe registers an observer invoked on every session change
	// with the new session (nil on logout).
	Subscribe(fn func(*domain.User))
}

// RegisterInput carries everything needed to create an account. The
// client checks the fields are non-empty; the platform validates the
// rest.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}
