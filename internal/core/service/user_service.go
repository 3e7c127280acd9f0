package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/studytech/studytech-client/internal/core/domain"
	"github.com/studytech/studytech-client/internal/core/ports"
)

// UserService is the administration facade over the users resource.
// Role changes, listing and deletion are policy-gated; profile updates
// on the caller's own record are open to any authenticated user.
type UserService struct {
	users   ports.UserAPI
	store   ports.SessionStore
	session *Session
	log     zerolog.Logger
}

func NewUserService(users ports.UserAPI, store ports.SessionStore, session *Session, log zerolog.Logger) *UserService {
	return &UserService{users: users, store: store, session: session, log: log}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := s.authorize(domain.ActionManageUsers); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

// GetUser returns a single record. The caller may always fetch their
// own record; anyone else's requires the manage_users capability.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	current := s.session.Current()
	if current == nil {
		return nil, domain.ErrNoSession
	}
	if id != current.ID {
		if err := s.authorize(domain.ActionManageUsers); err != nil {
			return nil, err
		}
	}

	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	clean := user.Sanitized()
	return &clean, nil
}

// UpdateProfile applies a self-service update to the caller's own
// record. Empty fields keep their stored value. The refreshed record is
// persisted back into the session slot so the UI stays consistent.
func (s *UserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	current := s.session.Current()
	if current == nil {
		return nil, domain.ErrNoSession
	}
	if input.Name == "" && input.Email == "" && input.Password == "" {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}

	payload := *current
	if input.Name != "" {
		payload.Name = input.Name
	}
	if input.Email != "" {
		payload.Email = input.Email
	}
	payload.Password = input.Password

	updated, err := s.users.UpdateUser(ctx, current.ID, payload)
	if err != nil {
		return nil, err
	}

	refreshed := updated.Sanitized()
	if err := s.store.Save(ctx, &refreshed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	s.session.set(&refreshed)
	s.log.Info().Str("user_id", refreshed.ID).Msg("profile updated")
	return s.session.Current(), nil
}

// ChangeRole promotes or demotes another account. The full record is
// fetched first so the update carries every field the platform expects.
func (s *UserService) ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if err := s.authorize(domain.ActionChangeUserRole); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	payload := *user
	payload.Role = role
	// An empty password keeps the stored credential; resending the
	// digest would get rehashed on the platform side.
	payload.Password = ""
	updated, err := s.users.UpdateUser(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("role", string(role)).Msg("role changed")
	clean := updated.Sanitized()
	return &clean, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.authorize(domain.ActionManageUsers); err != nil {
		return err
	}

	err := s.users.DeleteUser(ctx, id, s.session.Current().ID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Debug().Str("user_id", id).Msg("delete on missing user treated as done")
		return nil
	}
	return err
}

func (s *UserService) authorize(action domain.Action) error {
	if s.session.Current() == nil {
		return domain.ErrNoSession
	}
	if !domain.Can(s.session.Role(), action) {
		return fmt.Errorf("%w: role %q may not %s", domain.ErrUnauthorized, s.session.Role(), action)
	}
	return nil
}
