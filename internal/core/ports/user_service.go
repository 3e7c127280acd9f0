package ports

import (
	"context"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// UpdateProfileInput carries a self-service profile update. Empty
// fields keep their current value; a non-empty password replaces the
// stored credential.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
}

// UserService is the administration facade over the users resource.
// Listing, role changes and deletion are teacher-only; profile updates
// on the caller's own record are open to any authenticated user.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
	ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	// DeleteUser is benign when the user is already gone, mirroring
	// PostService.DeletePost.
	DeleteUser(ctx context.Context, id string) error
}
