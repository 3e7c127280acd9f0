package ports

import (
	"context"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// SessionStore persists the authenticated user record across process
// restarts. The storage is a single named slot, process-local and
// single-writer by construction; implementations need no concurrent
// writer protection.
//
// All three operations are idempotent. Load reports a missing session
// as (nil, nil); corrupt data is also reported as absent after logging,
// never as an error that would block startup.
type SessionStore interface {
	Load(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Clear(ctx context.Context) error
}
