package documents

import (
	"context"

	"contractpad/internal/models"
)

// Repository describes persistence operations for Document records.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// CreateOrUpdate inserts a new document or updates an existing one by ID.
	CreateOrUpdate(ctx context.Context, doc *models.Document) error

	// GetByID returns a document by its identifier, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Document, error)

	// ListByOwner returns all documents of one owner, most recently
	// updated first.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error)

	// MarkSynced flags a document as delivered to the remote store.
	MarkSynced(ctx context.Context, id string) error
}
