package syncqueue

import (
	"context"
	"fmt"
	"time"

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

// Append inserts an unsynced entry and stores the assigned sequence id back
// into e.ID.
func (r *SQLiteRepository) Append(ctx context.Context, e *models.QueueEntry) error {
	query := `INSERT INTO sync_queue (action, target_table, record_id, data, timestamp, synced)
			VALUES (?, ?, ?, ?, ?, 0)`
	res, err := r.db.ExecContext(ctx, query,
		string(e.Action), e.Table, e.RecordID, string(e.Data),
		e.Timestamp.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to append sync queue entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get entry id: %w", err)
	}
	e.ID = id
	e.Synced = false
	return nil
}

// ListPending returns all entries with synced=0 ordered by insertion.
func (r *SQLiteRepository) ListPending(ctx context.Context) ([]models.QueueEntry, error) {
	query := `SELECT id, action, target_table, record_id, data, timestamp, synced
			FROM sync_queue WHERE synced = 0 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending entries: %w", err)
	}
	defer rows.Close()

	var result []models.QueueEntry
	for rows.Next() {
		var e models.QueueEntry
		var action, data, ts string
		if err := rows.Scan(&e.ID, &action, &e.Table, &e.RecordID, &data, &ts, &e.Synced); err != nil {
			return nil, err
		}
		e.Action = models.Action(action)
		e.Data = []byte(data)
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkSynced sets synced=1 for one entry. Marking an already-synced entry
// has no effect.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sync_queue SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark entry synced: %w", err)
	}
	return nil
}
