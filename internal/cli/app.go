// Package cli is the interactive front end: a small REPL over the editing
// session, plus the connectivity watcher that gates the sync engine.
package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"contractpad/internal/config"
	"contractpad/internal/identity"
	"contractpad/internal/logging"
	"contractpad/internal/remote"
	"contractpad/internal/session"
	"contractpad/internal/store"
	"contractpad/internal/syncer"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	store   *store.Store
	remote  *remote.HTTPStore
	engine  *syncer.Engine
	session *session.Session
	editor  session.Editor
	auth    *identity.TokenSession
	log     logging.Logger
	reader  *bufio.Reader
	Mode    Mode
}

func NewApp(cfg *config.Config, st *store.Store, rem *remote.HTTPStore, eng *syncer.Engine, sess *session.Session, editor session.Editor, auth *identity.TokenSession, log logging.Logger) *App {
	return &App{
		config:  cfg,
		store:   st,
		remote:  rem,
		engine:  eng,
		session: sess,
		editor:  editor,
		auth:    auth,
		log:     log.With("component", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		Mode:    ModeOffline,
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.CurrentUserID()
	return ok
}

// setMode switches between offline and online and starts or stops the sync
// engine accordingly.
func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode == mode {
		return
	}
	a.Mode = mode
	printlnFn("Switched to", string(mode), "mode")

	switch mode {
	case ModeOnline:
		a.engine.Start(ctx)
		if uid, ok := a.auth.CurrentUserID(); ok {
			if err := a.engine.SyncFromServer(ctx, uid); err != nil {
				a.log.Warn(ctx, "pull after reconnect failed", "error", err)
			}
		}
	case ModeOffline:
		a.engine.Stop()
	}
}

// StartOnlineStatusWatcher probes remote reachability on an interval and
// flips the mode on transitions.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.remote.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// Run starts the REPL and the connectivity watcher and blocks until the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to contractpad (type 'help' for commands)")

	_ = a.Login(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	a.session.Close()
	a.engine.Stop()
}

func (a *App) getStatus() string {
	s := ""
	if uid, ok := a.auth.CurrentUserID(); ok {
		s = uid + " "
	}
	if a.Mode != "" {
		s += string(a.Mode)
	}
	if cur := a.session.Current(); cur != nil {
		s += " | " + cur.Title
	}
	return s
}
