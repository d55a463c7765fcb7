// Package store is the durable local store: documents, version snapshots and
// the sync queue, all in one on-device SQLite database. Every document or
// version write performed through Store also appends a pending sync-queue
// entry, so the sync engine can later replay local mutations against the
// remote store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"contractpad/internal/dbx"
	"contractpad/internal/models"
	"contractpad/internal/store/documents"
	"contractpad/internal/store/migrations"
	"contractpad/internal/store/syncqueue"
	"contractpad/internal/store/versions"
)

// Store bundles the three repositories over a single database handle.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the local database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(db), nil
}

// New wraps an already-migrated database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDocument upserts a document and appends one unsynced queue entry
// referencing it. The two writes happen in a single transaction so a queue
// entry never exists without its record (and vice versa).
func (s *Store) SaveDocument(ctx context.Context, doc *models.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document payload: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := documents.NewSQLiteRepository(tx).CreateOrUpdate(ctx, doc); err != nil {
			return err
		}
		return syncqueue.NewSQLiteRepository(tx).Append(ctx, &models.QueueEntry{
			Action:    models.ActionUpdate,
			Table:     models.TableDocuments,
			RecordID:  doc.ID,
			Data:      payload,
			Timestamp: s.now(),
		})
	})
}

// SaveVersion upserts a version snapshot and appends one unsynced queue
// entry referencing it.
func (s *Store) SaveVersion(ctx context.Context, v *models.Version) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode version payload: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := versions.NewSQLiteRepository(tx).CreateOrUpdate(ctx, v); err != nil {
			return err
		}
		return syncqueue.NewSQLiteRepository(tx).Append(ctx, &models.QueueEntry{
			Action:    models.ActionCreate,
			Table:     models.TableVersions,
			RecordID:  v.ID,
			Data:      payload,
			Timestamp: s.now(),
		})
	})
}

// PutDocument upserts a document without touching the sync queue. Used by
// the pull path, where the remote copy is already authoritative.
func (s *Store) PutDocument(ctx context.Context, doc *models.Document) error {
	return documents.NewSQLiteRepository(s.db).CreateOrUpdate(ctx, doc)
}

// PutVersion upserts a version snapshot without touching the sync queue.
func (s *Store) PutVersion(ctx context.Context, v *models.Version) error {
	return versions.NewSQLiteRepository(s.db).CreateOrUpdate(ctx, v)
}

// GetDocument returns one document or common.ErrNotFound.
func (s *Store) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return documents.NewSQLiteRepository(s.db).GetByID(ctx, id)
}

// ListDocumentsForUser lists a user's documents, most recently updated first.
func (s *Store) ListDocumentsForUser(ctx context.Context, userID string) ([]models.Document, error) {
	return documents.NewSQLiteRepository(s.db).ListByOwner(ctx, userID)
}

// ListVersions lists a document's snapshots, most recent first.
func (s *Store) ListVersions(ctx context.Context, documentID string) ([]models.Version, error) {
	return versions.NewSQLiteRepository(s.db).ListByDocument(ctx, documentID)
}

// PendingEntries returns unsynced queue entries in enqueue order.
func (s *Store) PendingEntries(ctx context.Context) ([]models.QueueEntry, error) {
	return syncqueue.NewSQLiteRepository(s.db).ListPending(ctx)
}

// MarkEntrySynced flags one queue entry as delivered. Idempotent.
func (s *Store) MarkEntrySynced(ctx context.Context, id int64) error {
	return syncqueue.NewSQLiteRepository(s.db).MarkSynced(ctx, id)
}

// MarkDocumentSynced flags the local document copy as pushed.
func (s *Store) MarkDocumentSynced(ctx context.Context, id string) error {
	return documents.NewSQLiteRepository(s.db).MarkSynced(ctx, id)
}
