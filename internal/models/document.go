// Package models defines the data records persisted by the local store and
// exchanged with the remote store. JSON tags define the payload snapshot
// format used by the sync queue.
package models

import (
	"time"

	"contractpad/internal/content"
)

// Document is a contract record owned by a single user. The local copy is
// authoritative while editing; Synced reports whether the last known local
// state has been delivered to the remote store.
type Document struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Content content.Node `json:"content"`
	OwnerID string       `json:"ownerId"`

	// Paid is set externally by the payment flow; the sync core treats it
	// as an opaque attribute.
	Paid       bool `json:"paid"`
	Downloaded bool `json:"downloaded"`
	Synced     bool `json:"synced"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// VersionNumber always equals the number of the most recently created
	// Version for this document. Starts at 1, never decreases.
	VersionNumber int64 `json:"versionNumber"`
}

// Version is an immutable snapshot of a document's content. Created exactly
// once per explicit save-version event; never updated or deleted afterwards.
type Version struct {
	ID         string       `json:"id"`
	DocumentID string       `json:"documentId"`
	Content    content.Node `json:"content"`

	// VersionNumber is unique per document and assigned as previous+1.
	VersionNumber int64 `json:"versionNumber"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
