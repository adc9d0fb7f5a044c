package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/config"
	"github.com/robalobadob/wordle/apps/cli/internal/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("wordle exited")
	}
}

// setupLogging sends human-readable logs to stderr so stdout stays clean.
func setupLogging(level string) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: ui.Stderr(), TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
