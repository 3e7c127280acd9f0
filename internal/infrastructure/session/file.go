// Package session provides the durable stores for the authenticated
// user record: a JSON file on disk (the default) and a Redis slot for
// setups where the session should outlive the local filesystem.
//
// Both stores honour the same contract: a single named slot, idempotent
// operations, and Load degrading to "absent" on missing or corrupt data.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/studytech/studytech-client/internal/core/domain"
)

// FileStore persists the session as one JSON document on disk. Writes
// go through a temp file and rename so a crash mid-write leaves either
// the old session or the new one, never a torn file.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore creates the parent directory if needed and returns the store.
func NewFileStore(path string, log zerolog.Logger) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("session: file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("session: create directory: %w", err)
	}
	return &FileStore{path: path, log: log}, nil
}

func (s *FileStore) Load(context.Context) (*domain.User, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("session file unreadable, starting logged out")
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("session file corrupt, starting logged out")
		return nil, nil
	}
	if user.Email == "" {
		// A record without an email was never a valid session.
		s.log.Warn().Str("path", s.path).Msg("session file incomplete, starting logged out")
		return nil, nil
	}
	return &user, nil
}

func (s *FileStore) Save(_ context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("session: cannot save nil user")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("session: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("session: chmod temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("session: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("session: replace session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove session file: %w", err)
	}
	return nil
}
