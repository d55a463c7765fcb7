// Package syncer drains the local sync queue against the remote store and
// pulls remote state back into the local store. It is the only component
// that reads the queue and the only one that calls into the remote store.
package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"contractpad/internal/logging"
	"contractpad/internal/models"
	"contractpad/internal/remote"
)

// DefaultInterval is the period of the push timer while the engine runs.
const DefaultInterval = 5 * time.Second

// LocalStore is the subset of the local store the engine needs.
// *store.Store satisfies it.
type LocalStore interface {
	PendingEntries(ctx context.Context) ([]models.QueueEntry, error)
	MarkEntrySynced(ctx context.Context, id int64) error
	MarkDocumentSynced(ctx context.Context, id string) error
	PutDocument(ctx context.Context, doc *models.Document) error
	PutVersion(ctx context.Context, v *models.Version) error
}

// Engine pushes queued local mutations on a fixed interval and serves
// on-demand pulls. Start/Stop follow connectivity transitions: Running while
// online, Idle while offline. Stopping cancels future passes only; a pass
// already in flight runs to completion.
type Engine struct {
	local    LocalStore
	remote   remote.Store
	log      logging.Logger
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New creates an engine in the Idle state. interval <= 0 falls back to
// DefaultInterval.
func New(local LocalStore, rs remote.Store, log logging.Logger, interval time.Duration) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Engine{
		local:    local,
		remote:   rs,
		log:      log.With("component", "syncer"),
		interval: interval,
	}
}

// Start enters the Running state: one immediate drain pass, then one per
// tick. Calling Start while already running is a no-op. ctx bounds the
// lifetime of individual passes, not the timer; use Stop to leave Running.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stop != nil {
		return
	}
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	go e.run(ctx, e.stop, e.done)
	e.log.Info(ctx, "sync engine started", "interval", e.interval)
}

// Stop returns the engine to Idle. It cancels the timer loop and waits for
// an in-flight pass to finish. Calling Stop while idle is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	stop, done := e.stop, e.done
	e.stop, e.done = nil, nil
	e.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	e.log.Info(context.Background(), "sync engine stopped")
}

// Running reports whether the timer loop is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stop != nil
}

func (e *Engine) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	e.drain(ctx)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.drain(ctx)
		}
	}
}

func (e *Engine) drain(ctx context.Context) {
	if err := e.SyncToServer(ctx); err != nil {
		e.log.Warn(ctx, "drain pass failed", "error", err)
	}
}

// SyncToServer runs one drain pass: every pending queue entry is attempted
// in enqueue order. A failing entry is logged and left unsynced for the next
// pass; it never blocks the entries behind it. The returned error covers
// only the queue read itself.
func (e *Engine) SyncToServer(ctx context.Context) error {
	entries, err := e.local.PendingEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to read sync queue: %w", err)
	}

	for _, entry := range entries {
		if err := e.processEntry(ctx, entry); err != nil {
			e.log.Warn(ctx, "failed to sync entry, will retry",
				"entry", entry.ID, "table", entry.Table, "record", entry.RecordID, "error", err)
			continue
		}
		if err := e.local.MarkEntrySynced(ctx, entry.ID); err != nil {
			return fmt.Errorf("failed to mark entry %d synced: %w", entry.ID, err)
		}
	}
	return nil
}

func (e *Engine) processEntry(ctx context.Context, entry models.QueueEntry) error {
	switch entry.Table {
	case models.TableDocuments:
		var doc models.Document
		if err := json.Unmarshal(entry.Data, &doc); err != nil {
			return fmt.Errorf("failed to decode document payload: %w", err)
		}
		if err := e.remote.UpsertDocument(ctx, remote.DocumentToWire(&doc)); err != nil {
			return err
		}
		return e.local.MarkDocumentSynced(ctx, entry.RecordID)

	case models.TableVersions:
		var v models.Version
		if err := json.Unmarshal(entry.Data, &v); err != nil {
			return fmt.Errorf("failed to decode version payload: %w", err)
		}
		return e.remote.UpsertVersion(ctx, remote.VersionToWire(&v))

	default:
		// Unknown targets are dropped, not retried forever.
		e.log.Warn(ctx, "dropping entry for unknown table", "entry", entry.ID, "table", entry.Table)
		return nil
	}
}

// SyncFromServer pulls every remote document owned by userID, then the
// versions belonging to those documents, upserting both into the local
// store. The remote copy is authoritative: pulled documents land with
// synced=true. A fetch failure aborts the remaining steps; upserts already
// applied are not rolled back.
func (e *Engine) SyncFromServer(ctx context.Context, userID string) error {
	wireDocs, err := e.remote.DocumentsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch remote documents: %w", err)
	}

	ids := make([]string, 0, len(wireDocs))
	for _, w := range wireDocs {
		doc, err := remote.DocumentFromWire(w)
		if err != nil {
			e.log.Warn(ctx, "skipping malformed remote document", "record", w.ID, "error", err)
			continue
		}
		if err := e.local.PutDocument(ctx, doc); err != nil {
			return fmt.Errorf("failed to store pulled document %s: %w", doc.ID, err)
		}
		ids = append(ids, doc.ID)
	}

	wireVersions, err := e.remote.VersionsByDocuments(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch remote versions: %w", err)
	}

	for _, w := range wireVersions {
		v, err := remote.VersionFromWire(w)
		if err != nil {
			e.log.Warn(ctx, "skipping malformed remote version", "record", w.ID, "error", err)
			continue
		}
		if err := e.local.PutVersion(ctx, v); err != nil {
			return fmt.Errorf("failed to store pulled version %s: %w", v.ID, err)
		}
	}

	e.log.Info(ctx, "pull finished", "documents", len(ids), "versions", len(wireVersions))
	return nil
}
