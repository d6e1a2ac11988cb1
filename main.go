// main.go
//
// Entry point for the duelarcade server.
//
// Startup order:
//   1. .env (godotenv), then config (defaults → XDG file → env).
//   2. Global log level.
//   3. Dictionary: SQLite table, word file, or the embedded list.
//   4. Session registry + HTTP server.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/duelarcade/internal/config"
	"github.com/robalobadob/duelarcade/internal/httpserver"
	"github.com/robalobadob/duelarcade/internal/session"
	"github.com/robalobadob/duelarcade/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dict, closeDict, err := openDictionary(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	defer closeDict()
	log.Info().Int("words", dict.Len()).Msg("dictionary ready")

	reg := session.NewRegistry(ctx, session.Options{
		Store:    store.NewMemoryStore[*session.Session](),
		Dict:     dict,
		Secret:   cfg.SeatSecret,
		Interval: cfg.Tick(),
	})
	defer reg.Close()

	srv := httpserver.New(reg, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		SeatSecret:   cfg.SeatSecret,
	})
	log.Info().Str("port", cfg.Port).Msg("starting duelarcade")
	go func() {
		if err := srv.Start(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()
	<-ctx.Done()
	log.Info().Msg("shutting down")
}
