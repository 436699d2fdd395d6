// Package host is the editor side of the context view: a registry of
// open buffers, overlay bookkeeping, and file access. Context items
// point into it by buffer handle or file path; the host answers
// liveness checks and resolves visits.
package host

import (
	"strings"

	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/engine"
)

// Buffer is an open document in the host.
type Buffer struct {
	name     string
	text     string
	overlays []*contextitem.Overlay
}

func (b *Buffer) Name() string { return b.name }
func (b *Buffer) Text() string { return b.text }

// Region returns lines startLine through endLine, 1-based inclusive,
// clamped to the buffer.
func (b *Buffer) Region(startLine, endLine int) string {
	lines := strings.Split(b.text, "\n")
	if startLine < 1 {
		startLine = 1
	}
	if endLine > len(lines) {
		endLine = len(lines)
	}
	if startLine > endLine {
		return ""
	}
	return strings.Join(lines[startLine-1:endLine], "\n")
}

// Host owns the buffer registry and the filesystem used for file
// items. Single-threaded like everything else on the UI loop.
type Host struct {
	fs      FileSystem
	buffers map[string]*Buffer
	maxRead int64
}

// NewHost creates a host reading files through fs, capping reads at
// maxRead bytes (<= 0 for no cap).
func NewHost(fs FileSystem, maxRead int64) *Host {
	return &Host{
		fs:      fs,
		buffers: make(map[string]*Buffer),
		maxRead: maxRead,
	}
}

// OpenBuffer creates or replaces the named buffer.
func (h *Host) OpenBuffer(name, text string) *Buffer {
	b := &Buffer{name: name, text: text}
	h.buffers[name] = b
	return b
}

// CloseBuffer removes the named buffer. Overlays over it are orphaned;
// releasing them later is a silent no-op.
func (h *Host) CloseBuffer(name string) {
	delete(h.buffers, name)
}

// BufferLive reports whether the named buffer is open.
func (h *Host) BufferLive(name string) bool {
	_, ok := h.buffers[name]
	return ok
}

// BufferText returns the full text of the named buffer, or
// ErrSourceMissing when it is gone.
func (h *Host) BufferText(name string) (string, error) {
	b, ok := h.buffers[name]
	if !ok {
		return "", engine.ErrSourceMissing
	}
	return b.text, nil
}

// BufferRegion returns the overlay span's text from the named buffer.
func (h *Host) BufferRegion(name string, startLine, endLine int) (string, error) {
	b, ok := h.buffers[name]
	if !ok {
		return "", engine.ErrSourceMissing
	}
	return b.Region(startLine, endLine), nil
}

// AddOverlay decorates a line span of the named buffer and returns
// the overlay. The overlay's release callback detaches it from the
// buffer; release after the buffer is closed is tolerated silently.
func (h *Host) AddOverlay(name string, startLine, endLine int) (*contextitem.Overlay, error) {
	b, ok := h.buffers[name]
	if !ok {
		return nil, engine.ErrSourceMissing
	}
	var ov *contextitem.Overlay
	ov = contextitem.NewOverlay(name, startLine, endLine, func() {
		h.detachOverlay(name, ov)
	})
	b.overlays = append(b.overlays, ov)
	return ov, nil
}

// OverlayCount returns the number of overlays attached to the named
// buffer, 0 when the buffer is gone.
func (h *Host) OverlayCount(name string) int {
	b, ok := h.buffers[name]
	if !ok {
		return 0
	}
	return len(b.overlays)
}

func (h *Host) detachOverlay(name string, ov *contextitem.Overlay) {
	b, ok := h.buffers[name]
	if !ok {
		return // buffer already closed, nothing to detach
	}
	for i, o := range b.overlays {
		if o == ov {
			b.overlays = append(b.overlays[:i], b.overlays[i+1:]...)
			return
		}
	}
}

// FileLive reports whether the file exists.
func (h *Host) FileLive(path string) bool {
	info, err := h.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// FileBytes reads the file's raw contents, capped at the host's read
// limit. Returns ErrSourceMissing when the file is gone.
func (h *Host) FileBytes(path string) ([]byte, error) {
	if !h.FileLive(path) {
		return nil, engine.ErrSourceMissing
	}
	data, err := h.fs.ReadFileCapped(path, h.maxRead)
	if err != nil {
		return nil, engine.ErrSourceMissing
	}
	return data, nil
}

// FileText reads the file's contents as text, capped at the host's
// read limit.
func (h *Host) FileText(path string) (string, error) {
	data, err := h.FileBytes(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ItemLive reports whether the item's source still exists.
func (h *Host) ItemLive(it contextitem.Item) bool {
	switch v := it.(type) {
	case *contextitem.BufferItem:
		return h.BufferLive(v.Handle)
	case *contextitem.FileItem:
		return h.FileLive(v.Path)
	default:
		return false
	}
}
