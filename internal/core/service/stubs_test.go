package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// stubUserAPI is an in-memory double of the platform's users resource.
type stubUserAPI struct {
	users   map[string]*domain.User
	nextID  int
	failAll error
}

func newStubUserAPI() *stubUserAPI {
	return &stubUserAPI{users: make(map[string]*domain.User)}
}

func (a *stubUserAPI) seed(u domain.User) *domain.User {
	a.nextID++
	u.ID = fmt.Sprintf("u%d", a.nextID)
	a.users[u.ID] = &u
	return &u
}

func (a *stubUserAPI) ListUsers(context.Context) ([]domain.User, error) {
	if a.failAll != nil {
		return nil, a.failAll
	}
	out := make([]domain.User, 0, len(a.users))
	for _, u := range a.users {
		out = append(out, *u)
	}
	return out, nil
}

func (a *stubUserAPI) GetUser(_ context.Context, id string) (*domain.User, error) {
	if a.failAll != nil {
		return nil, a.failAll
	}
	u, ok := a.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (a *stubUserAPI) CreateUser(_ context.Context, user domain.User) (*domain.User, error) {
	if a.failAll != nil {
		return nil, a.failAll
	}
	for _, existing := range a.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	return a.seed(user), nil
}

func (a *stubUserAPI) UpdateUser(_ context.Context, id string, user domain.User) (*domain.User, error) {
	if a.failAll != nil {
		return nil, a.failAll
	}
	if _, ok := a.users[id]; !ok {
		return nil, domain.ErrNotFound
	}
	user.ID = id
	a.users[id] = &user
	clone := user
	return &clone, nil
}

func (a *stubUserAPI) DeleteUser(_ context.Context, id, _ string) error {
	if a.failAll != nil {
		return a.failAll
	}
	if _, ok := a.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(a.users, id)
	return nil
}

// stubPostAPI is an in-memory double of the posts resource.
type stubPostAPI struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostAPI() *stubPostAPI {
	return &stubPostAPI{posts: make(map[string]*domain.Post)}
}

func (a *stubPostAPI) ListPosts(context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, 0, len(a.posts))
	for _, p := range a.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (a *stubPostAPI) GetPost(_ context.Context, id string) (*domain.Post, error) {
	p, ok := a.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (a *stubPostAPI) CreatePost(_ context.Context, post domain.Post) (*domain.Post, error) {
	a.nextID++
	post.ID = fmt.Sprintf("p%d", a.nextID)
	a.posts[post.ID] = &post
	clone := post
	return &clone, nil
}

func (a *stubPostAPI) UpdatePost(_ context.Context, id string, post domain.Post) (*domain.Post, error) {
	existing, ok := a.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	existing.Title = post.Title
	existing.Description = post.Description
	clone := *existing
	return &clone, nil
}

func (a *stubPostAPI) DeletePost(_ context.Context, id string) error {
	if _, ok := a.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(a.posts, id)
	return nil
}

// memStore is an in-memory SessionStore double.
type memStore struct {
	user    *domain.User
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) (*domain.User, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.user == nil {
		return nil, nil
	}
	clone := *m.user
	return &clone, nil
}

func (m *memStore) Save(_ context.Context, user *domain.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	clone := *user
	m.user = &clone
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.user = nil
	return nil
}

var errBoom = errors.New("boom")

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
