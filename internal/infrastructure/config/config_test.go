package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL != "https://study-tech-phi.vercel.app/" {
		t.Fatalf("unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.API.Timeout)
	}
	if cfg.Session.Backend != BackendFile {
		t.Fatalf("unexpected backend %q", cfg.Session.Backend)
	}
	if cfg.Session.File == "" {
		t.Fatalf("expected a resolved default session file path")
	}
	if !cfg.Development() {
		t.Fatalf("default env must be development")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STUDYTECH_BASE_URL", "http://localhost:8080/")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("SESSION_FILE", "/tmp/s.json")
	t.Setenv("ENV", "production")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080/" {
		t.Fatalf("unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.Session.Backend != BackendRedis || cfg.Session.File != "/tmp/s.json" {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Development() {
		t.Fatalf("production env must not report development")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "sqlite")
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
