package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDependencies_SeedsFilesFromArgs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# notes\n"), 0o644))

	deps := buildDependencies([]string{path})

	require.NotNil(t, deps.Workspace)
	assert.Equal(t, 1, deps.Workspace.Store().Len())
	rows := deps.Workspace.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "File", rows[0].Type)
}

func TestBuildDependencies_SkipsMissingFiles(t *testing.T) {
	deps := buildDependencies([]string{"/definitely/not/a/file.txt"})

	assert.Equal(t, 0, deps.Workspace.Store().Len())
}

func TestBuildDependencies_NoArgs(t *testing.T) {
	deps := buildDependencies(nil)

	require.NotNil(t, deps.Config)
	require.NotNil(t, deps.Registry)
	assert.Equal(t, deps.Config.UI.DefaultTarget, deps.Workspace.Store().Target())
	assert.Equal(t, 0, deps.Workspace.Store().Len())
}
