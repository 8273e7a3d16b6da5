// Package workspace owns the authoritative set of file buffers and the
// active-buffer pointer, keeping the durable slot synchronized.
package workspace

import (
	"errors"
	"fmt"
	"log"

	"github.com/ashritanshuman/cpp-forge-ide/internal/lang"
	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
	"github.com/ashritanshuman/cpp-forge-ide/internal/store"
)

var (
	// ErrLastFile is returned when deleting the only remaining buffer.
	ErrLastFile = errors.New("cannot delete the last remaining file")
	// ErrDuplicateName is returned when creating a file whose name is taken.
	ErrDuplicateName = errors.New("a file with that name already exists")
)

// Workspace maintains the buffer collection in memory. All operations are
// synchronous and single-threaded; the Bubble Tea loop is the only caller.
// Persistence after a mutation is best-effort: a failed write is logged but
// never surfaced, matching the slot's fire-and-forget contract.
type Workspace struct {
	store    store.WorkspaceStore
	files    []model.FileBuffer
	activeID string
}

// New creates an empty workspace backed by s. Call Load before use.
func New(s store.WorkspaceStore) *Workspace {
	return &Workspace{store: s}
}

// Seed returns the built-in default pair of files used when the durable
// slot is absent or unusable.
func Seed() []model.FileBuffer {
	main := model.NewFileBuffer("main.cpp", model.LangCPP,
		"#include <iostream>\n#include \"header.h\"\n\nvoid greet(const std::string &name) {\n    std::cout << \"Hello, \" << name << \"!\" << std::endl;\n}\n\nint main() {\n    greet(\"world\");\n    return 0;\n}\n")
	header := model.NewFileBuffer("header.h", model.LangC,
		"#ifndef HEADER_H\n#define HEADER_H\n\n#include <string>\n\nvoid greet(const std::string &name);\n\n#endif // HEADER_H\n")
	return []model.FileBuffer{*main, *header}
}

// Load populates the workspace from the durable slot, falling back to the
// seed pair when no usable snapshot exists. The first buffer becomes active.
func (w *Workspace) Load() {
	files, err := w.store.Load()
	if err != nil || len(files) == 0 {
		if err != nil && !errors.Is(err, store.ErrNoSnapshot) {
			log.Printf("workspace: load: %v", err)
		}
		files = Seed()
		w.files = files
		w.activeID = files[0].ID
		w.persist()
		return
	}
	w.files = files
	w.activeID = files[0].ID
}

// Files returns a copy of the buffer collection in its current order.
func (w *Workspace) Files() []model.FileBuffer {
	out := make([]model.FileBuffer, len(w.files))
	copy(out, w.files)
	return out
}

// Count returns the number of buffers.
func (w *Workspace) Count() int {
	return len(w.files)
}

// ActiveID returns the id of the active buffer.
func (w *Workspace) ActiveID() string {
	return w.activeID
}

// Active returns a copy of the active buffer. The collection is never
// empty after Load, so this only returns nil on an unloaded workspace.
func (w *Workspace) Active() *model.FileBuffer {
	return w.Get(w.activeID)
}

// Get returns a copy of the buffer with the given id, or nil.
func (w *Workspace) Get(id string) *model.FileBuffer {
	for i := range w.files {
		if w.files[i].ID == id {
			b := w.files[i]
			return &b
		}
	}
	return nil
}

// SetActiveFile selects the buffer to edit. Unknown ids are a silent no-op;
// it reports whether the pointer moved.
func (w *Workspace) SetActiveFile(id string) bool {
	for i := range w.files {
		if w.files[i].ID == id {
			w.activeID = id
			return true
		}
	}
	return false
}

// UpdateContent replaces the content of the buffer matching id and schedules
// re-persistence. Unknown ids are a silent no-op.
func (w *Workspace) UpdateContent(id, text string) {
	for i := range w.files {
		if w.files[i].ID == id {
			w.files[i].Content = text
			w.persist()
			return
		}
	}
}

// CreateFile validates the name, seeds a skeleton program for the detected
// language, appends the new buffer, and makes it active.
func (w *Workspace) CreateFile(name string) (*model.FileBuffer, error) {
	language, err := lang.Detect(name)
	if err != nil {
		return nil, err
	}
	for i := range w.files {
		if w.files[i].Name == name {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
	}

	buf := model.NewFileBuffer(name, language, lang.Skeleton(name, language))
	w.files = append(w.files, *buf)
	w.activeID = buf.ID
	w.persist()
	return buf, nil
}

// DeleteFile removes the buffer with matching id. Deleting the last
// remaining buffer is refused. When the removed buffer was active, the
// pointer moves to the head of the remaining collection. Unknown ids are a
// silent no-op.
func (w *Workspace) DeleteFile(id string) error {
	for i := range w.files {
		if w.files[i].ID != id {
			continue
		}
		if len(w.files) == 1 {
			return ErrLastFile
		}
		w.files = append(w.files[:i], w.files[i+1:]...)
		if w.activeID == id {
			w.activeID = w.files[0].ID
		}
		w.persist()
		return nil
	}
	return nil
}

// Persist writes the collection to the durable slot and reports failure.
// This is the explicit-save path; mutations persist implicitly via persist.
func (w *Workspace) Persist() error {
	return w.store.Save(w.files)
}

// persist is the implicit, fire-and-forget write after a mutation. Failures
// are unobserved beyond the debug log.
func (w *Workspace) persist() {
	if err := w.store.Save(w.files); err != nil {
		log.Printf("workspace: persist: %v", err)
	}
}
