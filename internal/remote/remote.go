// Package remote talks to the backend store. Only the sync engine calls into
// it: upserts keyed by record id on the push path, owner-scoped queries on
// the pull path.
package remote

import "context"

// Store is the remote half of the two independently writable copies of the
// data. Upserts must be idempotent per record id so queued mutations can be
// replayed in order, last write winning.
type Store interface {
	UpsertDocument(ctx context.Context, doc WireDocument) error
	UpsertVersion(ctx context.Context, v WireVersion) error

	// DocumentsByUser returns every remote document owned by userID.
	DocumentsByUser(ctx context.Context, userID string) ([]WireDocument, error)

	// VersionsByDocuments returns every remote version whose contract id is
	// in documentIDs. An empty id set returns nothing.
	VersionsByDocuments(ctx context.Context, documentIDs []string) ([]WireVersion, error)
}
