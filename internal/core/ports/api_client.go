package ports

import (
	"context"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// UserAPI is the remote platform's users resource. The platform is an
// external collaborator; every call is one HTTP round trip with
// fail-fast semantics and no caching.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, user domain.User) (*domain.User, error)
	// DeleteUser carries the acting user's id in the request body, a
	// quirk of the platform's delete contract.
	DeleteUser(ctx context.Context, id, actorID string) error
}

// PostAPI is the remote platform's posts resource.
type PostAPI interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	CreatePost(ctx context.Context, post domain.Post) (*domain.Post, error)
	UpdatePost(ctx context.Context, id string, post domain.Post) (*domain.Post, error)
	DeletePost(ctx context.Context, id string) error
}
