package host

import (
	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/engine"
)

// Visit is the displayable content of a context item's source.
type Visit struct {
	Title   string
	Content string
	MIME    string
}

// Visit resolves an item to its source content. A source that no
// longer exists yields ErrSourceMissing, which the view reports as a
// transient message rather than a failure.
func (h *Host) Visit(it contextitem.Item) (Visit, error) {
	switch v := it.(type) {
	case *contextitem.BufferItem:
		text, err := h.BufferText(v.Handle)
		if err != nil {
			return Visit{}, err
		}
		return Visit{Title: v.Handle, Content: text}, nil

	case *contextitem.FileItem:
		text, err := h.FileText(v.Path)
		if err != nil {
			return Visit{}, err
		}
		return Visit{Title: v.Name(), Content: text, MIME: v.MIME}, nil

	default:
		return Visit{}, engine.ErrSourceMissing
	}
}
