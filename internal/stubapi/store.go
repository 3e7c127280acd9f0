// Package stubapi is an in-memory double of the remote StudyTech
// platform, used for offline development and integration tests. It
// mirrors the platform's wire contract: users and posts resources,
// JSON bodies, and the trust-the-record authentication model where
// GET /users returns credentials for the client to verify.
package stubapi

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// Store holds every record behind the stub. All access is mutex-guarded
// since echo serves requests concurrently.
type Store struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	posts map[string]*domain.Post
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]*domain.User),
		posts: make(map[string]*domain.Post),
	}
}

// hashPassword keeps stub startup and tests fast; the double only needs
// digests the client recognises as bcrypt, not production-grade cost.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CreateUser registers a record, hashing the supplied password. A
// duplicate email collides with ErrUserExists.
func (s *Store) CreateUser(user domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, domain.ErrUserExists
		}
	}

	hash, err := hashPassword(user.Password)
	if err != nil {
		return nil, err
	}

	user.ID = uuid.NewString()
	user.Password = hash
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = &user

	clone := user
	return &clone, nil
}

// ListUsers returns every record, password digests included; the
// platform's clients verify credentials themselves.
func (s *Store) ListUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}

func (s *Store) GetUser(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

// UpdateUser applies name/email/role changes; a non-empty password is
// rehashed, an empty one keeps the stored digest.
func (s *Store) UpdateUser(id string, update domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if update.Name != "" {
		existing.Name = update.Name
	}
	if update.Email != "" {
		existing.Email = update.Email
	}
	if update.Role != "" {
		existing.Role = update.Role
	}
	if update.Password != "" {
		hash, err := hashPassword(update.Password)
		if err != nil {
			return nil, err
		}
		existing.Password = hash
	}

	clone := *existing
	return &clone, nil
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *Store) CreatePost(post domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = uuid.NewString()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	s.posts[post.ID] = &post

	clone := post
	return &clone, nil
}

func (s *Store) ListPosts() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out
}

func (s *Store) GetPost(id string) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

// UpdatePost edits the mutable fields only; author and created_at stay
// as written at creation.
func (s *Store) UpdatePost(id string, update domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	existing.Title = update.Title
	existing.Description = update.Description

	clone := *existing
	return &clone, nil
}

func (s *Store) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}
