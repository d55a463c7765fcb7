package remote

import (
	"fmt"
	"time"

	"contractpad/internal/content"
	"contractpad/internal/models"
)

// WireDocument is the remote store's representation of a document. Field
// names follow the backend's snake_case convention and timestamps travel as
// ISO-8601 strings. The wire shape never embeds versions.
type WireDocument struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Content       content.Node `json:"content"`
	UserID        string       `json:"user_id"`
	Paid          bool         `json:"paid"`
	Downloaded    bool         `json:"downloaded"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
	VersionNumber int64        `json:"version_number"`
}

// WireVersion is the remote representation of a version snapshot.
type WireVersion struct {
	ID            string       `json:"id"`
	ContractID    string       `json:"contract_id"`
	Content       content.Node `json:"content"`
	VersionNumber int64        `json:"version_number"`
	CreatedAt     string       `json:"created_at"`
	CreatedBy     string       `json:"created_by"`
}

// DocumentToWire maps a local document to its wire shape. The mapping is
// total: every local field except the local-only synced flag crosses over.
func DocumentToWire(d *models.Document) WireDocument {
	return WireDocument{
		ID:            d.ID,
		Title:         d.Title,
		Content:       d.Content,
		UserID:        d.OwnerID,
		Paid:          d.Paid,
		Downloaded:    d.Downloaded,
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     d.UpdatedAt.UTC().Format(time.RFC3339Nano),
		VersionNumber: d.VersionNumber,
	}
}

// DocumentFromWire maps a fetched wire document to the local shape. The
// remote copy is authoritative once fetched, so Synced is forced true.
func DocumentFromWire(w WireDocument) (*models.Document, error) {
	createdAt, err := parseWireTime(w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := parseWireTime(w.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}
	return &models.Document{
		ID:            w.ID,
		Title:         w.Title,
		Content:       w.Content,
		OwnerID:       w.UserID,
		Paid:          w.Paid,
		Downloaded:    w.Downloaded,
		Synced:        true,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		VersionNumber: w.VersionNumber,
	}, nil
}

// VersionToWire maps a local version snapshot to its wire shape.
func VersionToWire(v *models.Version) WireVersion {
	return WireVersion{
		ID:            v.ID,
		ContractID:    v.DocumentID,
		Content:       v.Content,
		VersionNumber: v.VersionNumber,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:     v.CreatedBy,
	}
}

// VersionFromWire maps a fetched wire version to the local shape.
func VersionFromWire(w WireVersion) (*models.Version, error) {
	createdAt, err := parseWireTime(w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	return &models.Version{
		ID:            w.ID,
		DocumentID:    w.ContractID,
		Content:       w.Content,
		VersionNumber: w.VersionNumber,
		CreatedAt:     createdAt,
		CreatedBy:     w.CreatedBy,
	}, nil
}

func parseWireTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
