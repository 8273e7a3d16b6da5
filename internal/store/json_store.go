package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
)

const snapshotFile = "workspace.json"

// JSONStore implements WorkspaceStore using a single JSON snapshot file.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a store rooted in dataDir, creating the directory if
// needed.
func NewJSONStore(dataDir string) (*JSONStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}
	return &JSONStore{path: filepath.Join(dataDir, snapshotFile)}, nil
}

// Path returns the location of the durable slot.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the snapshot. Absent file, malformed JSON, and schema version
// mismatch all surface as ErrNoSnapshot; the caller falls back to the seed
// workspace without distinguishing the cases.
func (s *JSONStore) Load() ([]model.FileBuffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNoSnapshot, "slot absent")
		}
		return nil, errors.Wrapf(ErrNoSnapshot, "slot unreadable: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(content, &snap); err != nil {
		return nil, errors.Wrapf(ErrNoSnapshot, "slot malformed: %v", err)
	}
	if snap.SchemaVersion != SchemaVersion {
		return nil, errors.Wrapf(ErrNoSnapshot, "schema version %d, want %d", snap.SchemaVersion, SchemaVersion)
	}
	return snap.Files, nil
}

// Save serializes the full collection to the durable slot.
func (s *JSONStore) Save(files []model.FileBuffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{SchemaVersion: SchemaVersion, Files: files}
	content, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	if err := os.WriteFile(s.path, content, 0644); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	return nil
}

// Close is a no-op for the JSON store; every Save already hits disk.
func (s *JSONStore) Close() error {
	return nil
}
