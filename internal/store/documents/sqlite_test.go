package documents

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"contractpad/internal/common"
	"contractpad/internal/content"
	"contractpad/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE documents (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  owner_id TEXT NOT NULL,
  paid INTEGER NOT NULL DEFAULT 0,
  downloaded INTEGER NOT NULL DEFAULT 0,
  synced INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  version_number INTEGER NOT NULL DEFAULT 1
);
`)
	require.NoError(t, err)

	return db
}

func sampleDoc(id, owner string) *models.Document {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &models.Document{
		ID:            id,
		Title:         "Contrato A",
		Content:       content.Default("Contrato A"),
		OwnerID:       owner,
		CreatedAt:     now,
		UpdatedAt:     now,
		VersionNumber: 1,
	}
}

func TestCreateOrUpdate_InsertAndUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	d := sampleDoc("d1", "u1")
	require.NoError(t, r.CreateOrUpdate(ctx, d))

	got, err := r.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Contrato A", got.Title)
	assert.Equal(t, int64(1), got.VersionNumber)
	assert.False(t, got.Synced)
	assert.Equal(t, d.Content, got.Content)

	// update the same id
	d.Title = "Contrato A (rev)"
	d.VersionNumber = 2
	d.Synced = true
	require.NoError(t, r.CreateOrUpdate(ctx, d))

	got, err = r.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Contrato A (rev)", got.Title)
	assert.Equal(t, int64(2), got.VersionNumber)
	assert.True(t, got.Synced)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestListByOwner_OrderAndScope(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	older := sampleDoc("old", "u1")
	older.UpdatedAt = older.UpdatedAt.Add(-time.Hour)
	newer := sampleDoc("new", "u1")
	foreign := sampleDoc("other", "u2")

	require.NoError(t, r.CreateOrUpdate(ctx, older))
	require.NoError(t, r.CreateOrUpdate(ctx, newer))
	require.NoError(t, r.CreateOrUpdate(ctx, foreign))

	got, err := r.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID, "most recently updated first")
	assert.Equal(t, "old", got[1].ID)
}

func TestMarkSynced(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, sampleDoc("d1", "u1")))
	require.NoError(t, r.MarkSynced(ctx, "d1"))

	got, err := r.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.True(t, got.Synced)

	// repeated marking has no effect
	require.NoError(t, r.MarkSynced(ctx, "d1"))
}
