package service

import (
	"sync"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// Session is the single in-memory slot holding the authenticated user.
// AuthService is the only writer; everything else reads through Current
// or watches changes through Subscribe. This replaces the ambient
// global the UI layer would otherwise reach for.
type Session struct {
	mu   sync.RWMutex
	user *domain.User
	subs []func(*domain.User)
}

// NewSession returns an empty session slot.
func NewSession() *Session {
	return &Session{}
}

// Current returns a copy of the session user, or nil when logged out.
func (s *Session) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Role returns the session role, fail-closed to RoleUnknown when no
// session is established.
func (s *Session) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.RoleUnknown
	}
	return s.user.Role
}

// Subscribe registers an observer called on every session change with
// the new value (nil on logout). Observers run synchronously on the
// mutating goroutine.
func (s *Session) Subscribe(fn func(*domain.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// set replaces the slot and notifies observers. Package-private: the
// services in this package are the only permitted writers.
func (s *Session) set(u *domain.User) {
	s.mu.Lock()
	if u != nil {
		clone := *u
		u = &clone
	}
	s.user = u
	subs := make([]func(*domain.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		var arg *domain.User
		if u != nil {
			clone := *u
			arg = &clone
		}
		fn(arg)
	}
}
