package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/studytech/studytech-client/internal/core/domain"
	"github.com/studytech/studytech-client/internal/core/ports"
)

// PostService is the feed facade: one permission check, one API call,
// no caching and no retries.
type PostService struct {
	posts   ports.PostAPI
	session *Session
	log     zerolog.Logger
}

func NewPostService(posts ports.PostAPI, session *Session, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, session: session, log: log}
}

func (s *PostService) Feed(ctx context.Context) ([]domain.Post, error) {
	if err := s.authorize(domain.ActionViewFeed); err != nil {
		return nil, err
	}
	return s.posts.ListPosts(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if err := s.authorize(domain.ActionViewFeed); err != nil {
		return nil, err
	}
	return s.posts.GetPost(ctx, id)
}

func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if err := s.authorize(domain.ActionCreatePost); err != nil {
		return nil, err
	}
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrValidation)
	}

	author := s.session.Current()
	created, err := s.posts.CreatePost(ctx, domain.Post{
		Title:       input.Title,
		Description: input.Description,
		Author:      author.Name,
		CreatedAt:   now(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("author", created.Author).Msg("post created")
	return created, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	if err := s.authorize(domain.ActionEditPost); err != nil {
		return nil, err
	}
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrValidation)
	}

	// Author and created_at are immutable; only the editable fields go
	// over the wire.
	return s.posts.UpdatePost(ctx, id, domain.Post{
		Title:       input.Title,
		Description: input.Description,
	})
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.authorize(domain.ActionDeletePost); err != nil {
		return err
	}

	err := s.posts.DeletePost(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		// A second delete racing the first lands here; the post is gone
		// either way.
		s.log.Debug().Str("post_id", id).Msg("delete on missing post treated as done")
		return nil
	}
	return err
}

func (s *PostService) authorize(action domain.Action) error {
	if s.session.Current() == nil {
		return domain.ErrNoSession
	}
	if !domain.Can(s.session.Role(), action) {
		return fmt.Errorf("%w: role %q may not %s", domain.ErrUnauthorized, s.session.Role(), action)
	}
	return nil
}

// now is stubbed in tests.
var now = func() time.Time { return time.Now().UTC() }
