package syncqueue

import (
	"context"

	"contractpad/internal/models"
)

// Repository is the append-only log of pending mutations. The local store is
// the only writer; the sync engine is the only reader/drainer.
type Repository interface {
	// Append adds an entry with synced=false and fills in its sequence id.
	Append(ctx context.Context, e *models.QueueEntry) error

	// ListPending returns unsynced entries in enqueue (FIFO) order.
	ListPending(ctx context.Context) ([]models.QueueEntry, error)

	// MarkSynced flags one entry as delivered. Idempotent.
	MarkSynced(ctx context.Context, id int64) error
}
