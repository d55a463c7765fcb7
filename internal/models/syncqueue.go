package models

import (
	"encoding/json"
	"time"
)

// Action is the kind of mutation a queue entry records.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Queue target tables. TableVersions matches the remote resource name.
const (
	TableDocuments = "documents"
	TableVersions  = "contract_versions"
)

// QueueEntry is one pending mutation awaiting delivery to the remote store.
// Data holds the full payload snapshot taken at enqueue time, not a delta;
// replaying entries for the same record in order is safe because remote
// writes are upserts keyed by record id.
type QueueEntry struct {
	// ID is the local auto-increment sequence number; it defines FIFO order.
	ID        int64           `json:"id"`
	Action    Action          `json:"action"`
	Table     string          `json:"table"`
	RecordID  string          `json:"recordId"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Synced    bool            `json:"synced"`
}
