// Command studytech is a terminal front end for the StudyTech platform:
// log in, read the feed, and, with a teacher account, publish posts
// and administer users.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/studytech/studytech-client/internal/core/ports"
	"github.com/studytech/studytech-client/internal/core/service"
	"github.com/studytech/studytech-client/internal/infrastructure/api"
	"github.com/studytech/studytech-client/internal/infrastructure/config"
	"github.com/studytech/studytech-client/internal/infrastructure/session"
	"github.com/studytech/studytech-client/pkg/logger"
)

type commandFn func(app *application, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

// application bundles the wired client stack handed to every command.
type application struct {
	ctx   context.Context
	log   zerolog.Logger
	auth  ports.AuthService
	posts ports.PostService
	users ports.UserService
}

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	cmd, ok := commands()[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}

	app, cleanup, err := buildApplication(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}
	defer cleanup()

	if err := cmd.run(app, os.Args[2:]); err != nil {
		log.Error().Err(err).Str("command", cmd.name).Msg("command failed")
		os.Exit(1)
	}
}

// buildApplication wires the API client, the session store and the
// services, then restores any persisted session.
func buildApplication(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*application, func(), error) {
	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, logger.Component("api"))
	if err != nil {
		return nil, nil, err
	}

	store, cleanup, err := buildSessionStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	slot := service.NewSession()
	auth := service.NewAuthService(client, store, slot, logger.Component("auth"))
	if _, err := auth.Restore(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	app := &application{
		ctx:   ctx,
		log:   log,
		auth:  auth,
		posts: service.NewPostService(client, slot, logger.Component("posts")),
		users: service.NewUserService(client, store, slot, logger.Component("users")),
	}
	return app, cleanup, nil
}

func buildSessionStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, func(), error) {
	switch cfg.Session.Backend {
	case config.BackendRedis:
		client, err := session.Connect(ctx, session.RedisConfig{
			Addr: cfg.Session.RedisAddr,
			DB:   cfg.Session.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(client, logger.Component("session.redis")), func() { _ = client.Close() }, nil
	default:
		store, err := session.NewFileStore(cfg.Session.File, logger.Component("session.file"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: studytech <command> [flags]")
	fmt.Fprintln(os.Stderr)
	names := make([]string, 0)
	all := commands()
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-14s %s\n", name, all[name].description)
	}
}
