package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/studytech/studytech-client/internal/core/domain"
	"github.com/studytech/studytech-client/internal/core/ports"
)

// AuthService implements login, registration and session teardown. It
// is the sole owner of the session slot.
type AuthService struct {
	users   ports.UserAPI
	store   ports.SessionStore
	session *Session
	log     zerolog.Logger
}

func NewAuthService(users ports.UserAPI, store ports.SessionStore, session *Session, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, store: store, session: session, log: log}
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	found, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password collapse into the same failure;
	// the caller presents one message either way.
	if found == nil || !verifyPassword(found.Password, password) {
		s.log.Debug().Str("email", email).Msg("authentication rejected")
		return nil, domain.ErrInvalidCredentials
	}

	return s.establish(ctx, *found)
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	role := input.Role
	if role == domain.RoleUnknown {
		role = domain.RoleStudent
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	created, err := s.users.CreateUser(ctx, domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("account registered")
	return s.establish(ctx, *created)
}

// Restore loads a persisted session at process start. Absent or corrupt
// storage is not an error: the user simply starts logged out.
func (s *AuthService) Restore(ctx context.Context) (*domain.User, error) {
	stored, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session restore degraded to logged out")
		return nil, nil
	}
	if stored == nil {
		return nil, nil
	}

	user := stored.Sanitized()
	s.session.set(&user)
	return s.session.Current(), nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	s.session.set(nil)
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	s.log.Info().Msg("session cleared")
	return nil
}

func (s *AuthService) Current() *domain.User {
	return s.session.Current()
}

func (s *AuthService) Subscribe(fn func(*domain.User)) {
	s.session.Subscribe(fn)
}

// establish persists and publishes a fresh session for the given user.
func (s *AuthService) establish(ctx context.Context, raw domain.User) (*domain.User, error) {
	user := raw.Sanitized()
	if err := s.store.Save(ctx, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	s.session.set(&user)
	s.log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("session established")
	return s.session.Current(), nil
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// verifyPassword accepts either a bcrypt digest or a plaintext stored
// credential; the platform has both in the wild.
func verifyPassword(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
