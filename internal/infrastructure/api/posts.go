package api

import (
	"context"
	"net/http"

	"github.com/studytech/studytech-client/internal/core/domain"
)

func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.do(ctx, http.MethodGet, "posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, http.MethodGet, "posts/"+id, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, post domain.Post) (*domain.Post, error) {
	var created domain.Post
	if err := c.do(ctx, http.MethodPost, "posts", post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePost(ctx context.Context, id string, post domain.Post) (*domain.Post, error) {
	var updated domain.Post
	if err := c.do(ctx, http.MethodPut, "posts/"+id, post, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "posts/"+id, nil, nil)
}
