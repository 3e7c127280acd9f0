package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/studytech/studytech-client/internal/core/domain"
)

const (
	sessionKey     = "studytech:session:user"
	connectTimeout = 5 * time.Second
)

// RedisConfig captures the settings for the Redis-backed store.
type RedisConfig struct {
	Addr string
	DB   int
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session: redis ping: %w", err)
	}
	return client, nil
}

// RedisStore keeps the session in a single Redis key with no TTL; the
// session lives until an explicit logout, matching the file store.
type RedisStore struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisStore(client *redis.Client, log zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func (s *RedisStore) Load(ctx context.Context) (*domain.User, error) {
	raw, err := s.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("session slot unreachable, starting logged out")
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn().Err(err).Msg("session slot corrupt, starting logged out")
		return nil, nil
	}
	if user.Email == "" {
		s.log.Warn().Msg("session slot incomplete, starting logged out")
		return nil, nil
	}
	return &user, nil
}

func (s *RedisStore) Save(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("session: cannot save nil user")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("session: save slot: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("session: clear slot: %w", err)
	}
	return nil
}
