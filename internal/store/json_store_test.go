package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
)

func newStore(t *testing.T) *JSONStore {
	t.Helper()
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func sampleFiles() []model.FileBuffer {
	a := model.NewFileBuffer("main.cpp", model.LangCPP, "int main() { return 0; }\n")
	b := model.NewFileBuffer("header.h", model.LangC, "#pragma once\n")
	return []model.FileBuffer{*a, *b}
}

func TestLoadAbsentSlot(t *testing.T) {
	s := newStore(t)

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestRoundTrip(t *testing.T) {
	s := newStore(t)
	files := sampleFiles()

	require.NoError(t, s.Save(files))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, files, got)
}

func TestLoadMalformedSlotFallsBack(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestLoadSchemaVersionMismatchFallsBack(t *testing.T) {
	s := newStore(t)
	snap := Snapshot{SchemaVersion: SchemaVersion + 1, Files: sampleFiles()}
	content, err := json.Marshal(snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path(), content, 0644))

	_, err = s.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSaveWritesVersionedSnapshot(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(sampleFiles()))

	content, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(content, &snap))
	assert.Equal(t, SchemaVersion, snap.SchemaVersion)
	assert.Len(t, snap.Files, 2)
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	s := newStore(t)
	files := sampleFiles()
	require.NoError(t, s.Save(files))

	solo := files[:1]
	require.NoError(t, s.Save(solo))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, solo, got)
}

func TestNewJSONStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := NewJSONStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "workspace.json"), s.Path())
}
