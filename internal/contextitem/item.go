// Package contextitem defines the items that make up a session's
// context list: open buffers (optionally narrowed by overlays) and
// file references. Identity is value-based so items survive refreshes
// of the backing store without relying on pointer equality.
package contextitem

// Kind tags the variant of a context item.
type Kind string

const (
	KindBuffer Kind = "Buffer"
	KindFile   Kind = "File"
)

// Identity names a context item by value. Two items with the same
// Identity refer to the same source, regardless of list position.
// Comparable, so it can key mark sets.
type Identity struct {
	Kind Kind
	Key  string
}

// Item is one entry in a context list. Release frees any resources
// the item owns (overlays for buffer items); it must be safe to call
// more than once.
type Item interface {
	Identity() Identity
	Release()
}

// BufferItem references an open buffer in the host. When Overlays is
// non-empty the context is narrowed to those spans; otherwise the
// whole buffer is in context.
type BufferItem struct {
	Handle   string
	Overlays []*Overlay
}

func (b *BufferItem) Identity() Identity {
	return Identity{Kind: KindBuffer, Key: b.Handle}
}

// Release releases every overlay the item owns. Overlays guard
// against double release themselves, so this is idempotent.
func (b *BufferItem) Release() {
	for _, ov := range b.Overlays {
		ov.Release()
	}
}

// FileItem references a file on disk by path. MIME is an optional
// content-type label; DisplayName is an abbreviated path for display
// and defaults to Path when empty.
type FileItem struct {
	Path        string
	MIME        string
	DisplayName string
}

func (f *FileItem) Identity() Identity {
	return Identity{Kind: KindFile, Key: f.Path}
}

// Release is a no-op: file items own no host resources.
func (f *FileItem) Release() {}

// Name returns the display name for a file item.
func (f *FileItem) Name() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return f.Path
}
