package versions

import (
	"context"

	"contractpad/internal/models"
)

// Repository describes persistence operations for Version snapshots.
// Versions are immutable: the upsert exists only so a remote pull can
// replay the same snapshot safely.
type Repository interface {
	// CreateOrUpdate inserts a version snapshot, replacing an identical id.
	CreateOrUpdate(ctx context.Context, v *models.Version) error

	// ListByDocument returns a document's versions, most recent first.
	ListByDocument(ctx context.Context, documentID string) ([]models.Version, error)
}
