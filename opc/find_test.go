// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFile(t *testing.T) {
	dir := t.TempDir()
	want := writeExport(t, dir, "sample123.csv", minimalExport)
	writeExport(t, dir, "sample456.csv", minimalExport)
	writeExport(t, dir, "notes.txt", "")

	for _, suffix := range []string{"123", "123.csv", "sample123.csv"} {
		got, err := FindFile(dir, suffix)
		require.NoError(t, err, suffix)
		assert.Equal(t, want, got, suffix)
	}

	got, err := FindFile(dir, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.txt"), got)
}

func TestFindFileNotFound(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "sample123.csv", minimalExport)

	_, err := FindFile(dir, "789")
	assert.ErrorIs(t, err, ErrFileNotFound)

	// The suffix must precede the extension.
	_, err = FindFile(dir, "sample")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = FindFile(filepath.Join(dir, "missing"), "123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestFindFileFirstMatch(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "b123.csv", minimalExport)
	writeExport(t, dir, "a123.csv", minimalExport)

	got, err := FindFile(dir, "123")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a123.csv"), got)
}
