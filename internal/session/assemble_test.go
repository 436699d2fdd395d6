package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	buffers map[string]string
	files   map[string][]byte
}

var errGone = errors.New("gone")

func (f *fakeSource) BufferText(name string) (string, error) {
	text, ok := f.buffers[name]
	if !ok {
		return "", errGone
	}
	return text, nil
}

func (f *fakeSource) BufferRegion(name string, startLine, endLine int) (string, error) {
	text, ok := f.buffers[name]
	if !ok {
		return "", errGone
	}
	return fmt.Sprintf("region(%d-%d) of %s", startLine, endLine, text), nil
}

func (f *fakeSource) FileText(path string) (string, error) {
	data, err := f.FileBytes(path)
	return string(data), err
}

func (f *fakeSource) FileBytes(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errGone
	}
	return data, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		buffers: map[string]string{"main.go": "package main"},
		files: map[string][]byte{
			"/notes.md": []byte("# notes"),
			"/logo.png": {0x89, 0x50, 0x4e, 0x47},
		},
	}
}

func TestContents_EmptyListYieldsNil(t *testing.T) {
	a := NewAssembler(newFakeSource())

	assert.Nil(t, a.Contents(nil))
}

func TestContents_FullBuffer(t *testing.T) {
	a := NewAssembler(newFakeSource())

	contents := a.Contents([]contextitem.Item{
		&contextitem.BufferItem{Handle: "main.go"},
	})

	require.Len(t, contents, 1)
	assert.Equal(t, "user", contents[0].Role)
	require.Len(t, contents[0].Parts, 1)
	assert.Contains(t, contents[0].Parts[0].Text, "In buffer `main.go`:")
	assert.Contains(t, contents[0].Parts[0].Text, "package main")
}

func TestContents_OverlaysNarrowTheBuffer(t *testing.T) {
	a := NewAssembler(newFakeSource())
	released := contextitem.NewOverlay("main.go", 1, 2, nil)
	released.Release()

	contents := a.Contents([]contextitem.Item{
		&contextitem.BufferItem{
			Handle: "main.go",
			Overlays: []*contextitem.Overlay{
				contextitem.NewOverlay("main.go", 3, 7, nil),
				released,
			},
		},
	})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 1, "released overlays contribute nothing")
	assert.Contains(t, contents[0].Parts[0].Text, "lines 3-7")
	assert.Contains(t, contents[0].Parts[0].Text, "region(3-7)")
}

func TestContents_TextualFile(t *testing.T) {
	a := NewAssembler(newFakeSource())

	contents := a.Contents([]contextitem.Item{
		&contextitem.FileItem{Path: "/notes.md", MIME: "text/markdown", DisplayName: "notes.md"},
	})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 1)
	assert.Contains(t, contents[0].Parts[0].Text, "In file `notes.md`:")
	assert.Contains(t, contents[0].Parts[0].Text, "# notes")
}

func TestContents_BinaryFileBecomesInlineData(t *testing.T) {
	a := NewAssembler(newFakeSource())

	contents := a.Contents([]contextitem.Item{
		&contextitem.FileItem{Path: "/logo.png", MIME: "image/png"},
	})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 1)
	part := contents[0].Parts[0]
	require.NotNil(t, part.InlineData)
	assert.Equal(t, "image/png", part.InlineData.MIMEType)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, part.InlineData.Data)
}

func TestContents_DeadSourcesAreSkipped(t *testing.T) {
	a := NewAssembler(newFakeSource())

	contents := a.Contents([]contextitem.Item{
		&contextitem.BufferItem{Handle: "closed-buffer"},
		&contextitem.FileItem{Path: "/deleted.md", MIME: "text/markdown"},
		&contextitem.BufferItem{Handle: "main.go"},
	})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 1, "only the live item contributes")
	assert.Contains(t, contents[0].Parts[0].Text, "main.go")
}

func TestContents_PartsFollowListOrder(t *testing.T) {
	a := NewAssembler(newFakeSource())

	contents := a.Contents([]contextitem.Item{
		&contextitem.FileItem{Path: "/notes.md", MIME: "text/markdown"},
		&contextitem.BufferItem{Handle: "main.go"},
	})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	assert.Contains(t, contents[0].Parts[0].Text, "/notes.md")
	assert.Contains(t, contents[0].Parts[1].Text, "main.go")
}
