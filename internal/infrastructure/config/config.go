package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend selects which session store implementation is wired in.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Session SessionConfig
	Stub    StubConfig
}

type APIConfig struct {
	BaseURL string        `env:"STUDYTECH_BASE_URL,     default=https://study-tech-phi.vercel.app/"`
	Timeout time.Duration `env:"STUDYTECH_HTTP_TIMEOUT, default=10s"`
}

type SessionConfig struct {
	// Backend is "file" or "redis".
	Backend string `env:"SESSION_BACKEND, default=file"`
	// File is the session file path; empty means the per-user default
	// under os.UserConfigDir.
	File      string `env:"SESSION_FILE"`
	RedisAddr string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisDB   int    `env:"REDIS_DB,   default=0"`
}

type StubConfig struct {
	Port string `env:"STUB_PORT, default=8080"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Session.Backend != BackendFile && cfg.Session.Backend != BackendRedis {
		return nil, fmt.Errorf("config: unknown session backend %q", cfg.Session.Backend)
	}

	if cfg.Session.File == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve user config dir: %w", err)
		}
		cfg.Session.File = filepath.Join(dir, "studytech", "session.json")
	}

	return &cfg, nil
}

// Development reports whether the client runs with developer ergonomics
// (pretty logs).
func (c *Config) Development() bool {
	return c.Env == "development"
}
