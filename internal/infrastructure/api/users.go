package api

import (
	"context"
	"net/http"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// updateUserPayload mirrors the platform's PUT contract, which repeats
// the target id inside the body as user_id.
type updateUserPayload struct {
	domain.User
	UserID string `json:"user_id"`
}

// deleteUserPayload carries the acting user's id on DELETE.
type deleteUserPayload struct {
	UserID string `json:"user_id"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	if err := c.do(ctx, http.MethodPost, "users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, user domain.User) (*domain.User, error) {
	var updated domain.User
	payload := updateUserPayload{User: user, UserID: id}
	if err := c.do(ctx, http.MethodPut, "users/"+id, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id, actorID string) error {
	return c.do(ctx, http.MethodDelete, "users/"+id, deleteUserPayload{UserID: actorID}, nil)
}
