package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"contractpad/internal/common"
	"contractpad/internal/content"
	"contractpad/internal/dbx"
	"contractpad/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts a document by id. On conflict all mutable columns
// are replaced; the put is atomic per record.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, d *models.Document) error {
	blob, err := json.Marshal(d.Content)
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	query := `INSERT INTO documents
			(id, title, content, owner_id, paid, downloaded, synced, created_at, updated_at, version_number)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET title = excluded.title,
				content = excluded.content,
				owner_id = excluded.owner_id,
				paid = excluded.paid,
				downloaded = excluded.downloaded,
				synced = excluded.synced,
				updated_at = excluded.updated_at,
				version_number = excluded.version_number
	`
	_, err = r.db.ExecContext(ctx, query,
		d.ID, d.Title, string(blob), d.OwnerID, d.Paid, d.Downloaded, d.Synced,
		d.CreatedAt.UTC().Format(time.RFC3339Nano),
		d.UpdatedAt.UTC().Format(time.RFC3339Nano),
		d.VersionNumber)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// GetByID returns a single document or common.ErrNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query := `SELECT id, title, content, owner_id, paid, downloaded, synced, created_at, updated_at, version_number
			FROM documents WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	d, err := scanDocument(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select document: %w", err)
	}
	return d, nil
}

// ListByOwner lists an owner's documents ordered by updated_at descending.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	query := `SELECT id, title, content, owner_id, paid, downloaded, synced, created_at, updated_at, version_number
			FROM documents WHERE owner_id = ? ORDER BY updated_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	var result []models.Document
	for rows.Next() {
		d, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkSynced sets synced=1. Idempotent; unknown ids are a no-op.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE documents SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark document synced: %w", err)
	}
	return nil
}

func scanDocument(scan func(dest ...any) error) (*models.Document, error) {
	d := &models.Document{}
	var blob, createdAt, updatedAt string

	if err := scan(&d.ID, &d.Title, &blob, &d.OwnerID, &d.Paid, &d.Downloaded, &d.Synced,
		&createdAt, &updatedAt, &d.VersionNumber); err != nil {
		return nil, err
	}

	var node content.Node
	if err := json.Unmarshal([]byte(blob), &node); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	d.Content = node

	var err error
	if d.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return d, nil
}
