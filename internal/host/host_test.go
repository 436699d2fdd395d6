package host

import (
	"os"
	"testing"
	"time"

	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFileInfo implements os.FileInfo for the mock filesystem
type mockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return 0o644 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() any           { return nil }

type mockFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool
}

func (m *mockFileSystem) Stat(path string) (os.FileInfo, error) {
	if m.dirs[path] {
		return &mockFileInfo{name: path, isDir: true}, nil
	}
	if data, ok := m.files[path]; ok {
		return &mockFileInfo{name: path, size: int64(len(data))}, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) ReadFileCapped(path string, max int64) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	if max > 0 && int64(len(data)) > max {
		data = data[:max]
	}
	return data, nil
}

func newTestHost(files map[string][]byte) *Host {
	return NewHost(&mockFileSystem{files: files, dirs: map[string]bool{}}, 0)
}

func TestHost_BufferLifecycle(t *testing.T) {
	h := newTestHost(nil)

	h.OpenBuffer("main.go", "package main\n")
	assert.True(t, h.BufferLive("main.go"))

	text, err := h.BufferText("main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main\n", text)

	h.CloseBuffer("main.go")
	assert.False(t, h.BufferLive("main.go"))

	_, err = h.BufferText("main.go")
	assert.ErrorIs(t, err, engine.ErrSourceMissing)
}

func TestHost_BufferRegion(t *testing.T) {
	h := newTestHost(nil)
	h.OpenBuffer("notes", "one\ntwo\nthree\nfour")

	region, err := h.BufferRegion("notes", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "two\nthree", region)

	// Out-of-range spans are clamped rather than rejected.
	region, err = h.BufferRegion("notes", 0, 99)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\nfour", region)
}

func TestHost_OverlayReleaseDetaches(t *testing.T) {
	h := newTestHost(nil)
	h.OpenBuffer("main.go", "package main\n")

	ov, err := h.AddOverlay("main.go", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, h.OverlayCount("main.go"))

	ov.Release()
	assert.Equal(t, 0, h.OverlayCount("main.go"))

	// Double release stays silent.
	assert.NotPanics(t, func() { ov.Release() })
}

func TestHost_OverlayReleaseAfterBufferClosed(t *testing.T) {
	h := newTestHost(nil)
	h.OpenBuffer("main.go", "package main\n")
	ov, err := h.AddOverlay("main.go", 1, 1)
	require.NoError(t, err)

	h.CloseBuffer("main.go")

	// Best-effort: the decoration is already gone with the buffer.
	assert.NotPanics(t, func() { ov.Release() })
}

func TestHost_AddOverlayOnMissingBuffer(t *testing.T) {
	h := newTestHost(nil)

	_, err := h.AddOverlay("nope", 1, 2)

	assert.ErrorIs(t, err, engine.ErrSourceMissing)
}

func TestHost_FileLiveness(t *testing.T) {
	h := NewHost(&mockFileSystem{
		files: map[string][]byte{"/a.txt": []byte("hello")},
		dirs:  map[string]bool{"/dir": true},
	}, 0)

	assert.True(t, h.FileLive("/a.txt"))
	assert.False(t, h.FileLive("/missing.txt"))
	assert.False(t, h.FileLive("/dir"), "directories are not file sources")
}

func TestHost_FileTextCapped(t *testing.T) {
	h := NewHost(&mockFileSystem{
		files: map[string][]byte{"/big.txt": []byte("0123456789")},
		dirs:  map[string]bool{},
	}, 4)

	text, err := h.FileText("/big.txt")

	require.NoError(t, err)
	assert.Equal(t, "0123", text)
}

func TestHost_VisitBuffer(t *testing.T) {
	h := newTestHost(nil)
	h.OpenBuffer("main.go", "package main\n")

	v, err := h.Visit(&contextitem.BufferItem{Handle: "main.go"})

	require.NoError(t, err)
	assert.Equal(t, "main.go", v.Title)
	assert.Equal(t, "package main\n", v.Content)
}

func TestHost_VisitMissingSource(t *testing.T) {
	h := newTestHost(nil)

	_, err := h.Visit(&contextitem.BufferItem{Handle: "gone"})
	assert.ErrorIs(t, err, engine.ErrSourceMissing)

	_, err = h.Visit(&contextitem.FileItem{Path: "/gone.txt"})
	assert.ErrorIs(t, err, engine.ErrSourceMissing)
}

func TestHost_VisitFile(t *testing.T) {
	h := newTestHost(map[string][]byte{"/doc.md": []byte("# hi\n")})

	v, err := h.Visit(&contextitem.FileItem{Path: "/doc.md", MIME: "text/markdown", DisplayName: "doc.md"})

	require.NoError(t, err)
	assert.Equal(t, "doc.md", v.Title)
	assert.Equal(t, "# hi\n", v.Content)
	assert.Equal(t, "text/markdown", v.MIME)
}

func TestHost_ItemLive(t *testing.T) {
	h := newTestHost(map[string][]byte{"/a.txt": []byte("x")})
	h.OpenBuffer("main.go", "")

	assert.True(t, h.ItemLive(&contextitem.BufferItem{Handle: "main.go"}))
	assert.True(t, h.ItemLive(&contextitem.FileItem{Path: "/a.txt"}))
	assert.False(t, h.ItemLive(&contextitem.BufferItem{Handle: "gone"}))
}
