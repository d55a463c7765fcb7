package versions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

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

// CreateOrUpdate upserts a version snapshot by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, v *models.Version) error {
	blob, err := json.Marshal(v.Content)
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	query := `INSERT INTO versions (id, document_id, content, version_number, created_at, created_by)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET content = excluded.content,
				version_number = excluded.version_number,
				created_at = excluded.created_at,
				created_by = excluded.created_by
	`
	_, err = r.db.ExecContext(ctx, query,
		v.ID, v.DocumentID, string(blob), v.VersionNumber,
		v.CreatedAt.UTC().Format(time.RFC3339Nano), v.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to upsert version: %w", err)
	}
	return nil
}

// ListByDocument lists snapshots for one document, newest version first.
func (r *SQLiteRepository) ListByDocument(ctx context.Context, documentID string) ([]models.Version, error) {
	query := `SELECT id, document_id, content, version_number, created_at, created_by
			FROM versions WHERE document_id = ? ORDER BY version_number DESC`
	rows, err := r.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select versions: %w", err)
	}
	defer rows.Close()

	var result []models.Version
	for rows.Next() {
		var v models.Version
		var blob, createdAt string
		if err := rows.Scan(&v.ID, &v.DocumentID, &blob, &v.VersionNumber, &createdAt, &v.CreatedBy); err != nil {
			return nil, err
		}

		var node content.Node
		if err := json.Unmarshal([]byte(blob), &node); err != nil {
			return nil, fmt.Errorf("failed to decode content: %w", err)
		}
		v.Content = node

		if v.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
