package main

import (
	"context"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"contractpad/internal/ai"
	"contractpad/internal/cli"
	"contractpad/internal/config"
	"contractpad/internal/identity"
	"contractpad/internal/logging"
	"contractpad/internal/remote"
	"contractpad/internal/session"
	"contractpad/internal/store"
	"contractpad/internal/syncer"
)

// newLogger logs JSON to a rotated file when one is configured, text to
// stderr otherwise.
func newLogger(cfg *config.Config) logging.Logger {
	if cfg.LogFile != "" {
		w := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil)))
	}
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()
	log := newLogger(cfg)

	st, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "failed to open local store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	rem := remote.NewHTTPStore(cfg.RemoteURL, cfg.RemoteAPIKey)
	eng := syncer.New(st, rem, log, cfg.SyncInterval)
	auth := identity.NewTokenSession()
	aiSvc := ai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, log)
	editor := session.NewBuffer()
	sess := session.New(st, aiSvc, auth, editor, session.NewTimerScheduler(), cfg.AutosaveQuiet, log)

	app := cli.NewApp(cfg, st, rem, eng, sess, editor, auth, log)
	app.Run(ctx)
}
