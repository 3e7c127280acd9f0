// Command studytech-stub runs an in-memory double of the StudyTech
// platform API for local development and demos. State is lost on exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/studytech/studytech-client/internal/infrastructure/config"
	"github.com/studytech/studytech-client/internal/stubapi"
	"github.com/studytech/studytech-client/pkg/logger"
)

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

	router := stubapi.NewRouter(stubapi.NewStore(), log)
	addr := ":" + cfg.Stub.Port

	go func() {
		log.Info().Str("addr", addr).Msg("stub platform listening")
		if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("stub platform stopped")
}
