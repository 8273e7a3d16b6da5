package model

import (
	"strings"

	"github.com/google/uuid"
)

// FileBuffer represents one in-memory text document of the workspace.
type FileBuffer struct {
	// ID is the unique identifier for this buffer, assigned at creation.
	ID string `json:"id"`
	// Name is the user-supplied file name, including extension.
	Name string `json:"name"`
	// Language is derived once from Name's extension at creation time.
	Language Language `json:"language"`
	// Content is the buffer text, mutated in place by editor input.
	Content string `json:"content"`
}

// NewFileBuffer creates a buffer with a generated UUID.
func NewFileBuffer(name string, lang Language, content string) *FileBuffer {
	return &FileBuffer{
		ID:       uuid.New().String(),
		Name:     name,
		Language: lang,
		Content:  content,
	}
}

// LineCount returns the number of lines in the buffer content.
func (b *FileBuffer) LineCount() int {
	if b.Content == "" {
		return 1
	}
	return strings.Count(b.Content, "\n") + 1
}

// CharCount returns the number of runes in the buffer content.
func (b *FileBuffer) CharCount() int {
	return len([]rune(b.Content))
}

// Stem returns the file name without its extension, used as the synthetic
// binary name in the simulated run command.
func (b *FileBuffer) Stem() string {
	name := b.Name
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}
