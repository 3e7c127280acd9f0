package ports

import (
	"context"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// CreatePostInput carries the author-editable fields of a new post.
// Author and creation time are stamped from the session.
type CreatePostInput struct {
	Title       string
	Description string
}

// UpdatePostInput carries the editable fields of an existing post.
type UpdatePostInput struct {
	Title       string
	Description string
}

// PostService is the feed facade: each operation checks the session
// role against the policy table and then issues one API call.
type PostService interface {
	Feed(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error)
	// DeletePost treats a missing post as already deleted: issuing the
	// same delete twice is not an error.
	DeletePost(ctx context.Context, id string) error
}
