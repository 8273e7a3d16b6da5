package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
)

func TestDetectSupportedExtensions(t *testing.T) {
	cases := []struct {
		name string
		want model.Language
	}{
		{"main.c", model.LangC},
		{"header.h", model.LangC},
		{"main.cpp", model.LangCPP},
		{"main.cc", model.LangCPP},
		{"main.cxx", model.LangCPP},
		{"header.hpp", model.LangCPP},
	}

	for _, tc := range cases {
		got, err := Detect(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestDetectRejectsUnsupported(t *testing.T) {
	for _, name := range []string{"script.py", "notes.txt", "index.js", "Makefile", "noext", "", "   "} {
		_, err := Detect(name)
		assert.ErrorIs(t, err, ErrUnsupported, name)
	}
}

func TestSkeletonCSource(t *testing.T) {
	s := Skeleton("utils.c", model.LangC)
	assert.Contains(t, s, "#include <stdio.h>")
	assert.Contains(t, s, "int main(void)")
	assert.Contains(t, s, "utils.c")
}

func TestSkeletonCPPSource(t *testing.T) {
	s := Skeleton("app.cpp", model.LangCPP)
	assert.Contains(t, s, "#include <iostream>")
	assert.Contains(t, s, "int main()")
}

func TestSkeletonHeaderGuard(t *testing.T) {
	s := Skeleton("my-header.hpp", model.LangCPP)
	assert.Contains(t, s, "#ifndef MY_HEADER_HPP")
	assert.Contains(t, s, "#define MY_HEADER_HPP")
	assert.Contains(t, s, "#endif")
}

func TestIsHeader(t *testing.T) {
	assert.True(t, IsHeader("a.h"))
	assert.True(t, IsHeader("a.hpp"))
	assert.False(t, IsHeader("a.c"))
	assert.False(t, IsHeader("a.cpp"))
}
