// Package store provides durable-slot persistence for the workspace.
package store

import (
	"errors"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
)

// SchemaVersion is the current snapshot format version. Snapshots written
// with any other version are treated the same as an absent slot.
const SchemaVersion = 1

// ErrNoSnapshot is returned by Load when the durable slot is absent,
// unparsable, or carries a different schema version. All three cases fall
// back to the built-in seed workspace, indistinguishably.
var ErrNoSnapshot = errors.New("no usable workspace snapshot")

// Snapshot is the serialized form held in the durable slot.
type Snapshot struct {
	SchemaVersion int                `json:"schema_version"`
	Files         []model.FileBuffer `json:"files"`
}

// WorkspaceStore is the persistence boundary of the workspace.
type WorkspaceStore interface {
	// Load reads the snapshot from the durable slot.
	Load() ([]model.FileBuffer, error)
	// Save writes the full buffer collection to the durable slot.
	Save(files []model.FileBuffer) error
	// Close flushes any pending state.
	Close() error
}
