package syncqueue

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"contractpad/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE sync_queue (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  action TEXT NOT NULL,
  target_table TEXT NOT NULL,
  record_id TEXT NOT NULL,
  data TEXT NOT NULL,
  timestamp TEXT NOT NULL,
  synced INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func entry(recordID string) *models.QueueEntry {
	return &models.QueueEntry{
		Action:    models.ActionUpdate,
		Table:     models.TableDocuments,
		RecordID:  recordID,
		Data:      json.RawMessage(`{"id":"` + recordID + `"}`),
		Timestamp: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestAppend_AssignsSequentialIDs(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e1, e2 := entry("a"), entry("b")
	require.NoError(t, r.Append(ctx, e1))
	require.NoError(t, r.Append(ctx, e2))

	assert.Greater(t, e2.ID, e1.ID)
	assert.False(t, e1.Synced)
}

func TestListPending_FIFOOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, id := range []string{"e1", "e2", "e3"} {
		require.NoError(t, r.Append(ctx, entry(id)))
	}

	got, err := r.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "e1", got[0].RecordID)
	assert.Equal(t, "e2", got[1].RecordID)
	assert.Equal(t, "e3", got[2].RecordID)
}

func TestListPending_SkipsSynced(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e1, e2 := entry("a"), entry("b")
	require.NoError(t, r.Append(ctx, e1))
	require.NoError(t, r.Append(ctx, e2))
	require.NoError(t, r.MarkSynced(ctx, e1.ID))

	got, err := r.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].RecordID)
}

func TestMarkSynced_Idempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := entry("a")
	require.NoError(t, r.Append(ctx, e))
	require.NoError(t, r.MarkSynced(ctx, e.ID))
	require.NoError(t, r.MarkSynced(ctx, e.ID))

	got, err := r.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
