package contextitem

// Overlay marks a line span of a buffer as the part that is in
// context. The host creates overlays and supplies the release
// callback that removes the decoration; the owning item releases the
// overlay exactly once when it is removed from the list.
type Overlay struct {
	Buffer    string
	StartLine int
	EndLine   int

	released bool
	release  func()
}

// NewOverlay creates an overlay over [startLine, endLine] of the
// named buffer. release is invoked once when the overlay is released;
// it may be nil.
func NewOverlay(buffer string, startLine, endLine int, release func()) *Overlay {
	return &Overlay{
		Buffer:    buffer,
		StartLine: startLine,
		EndLine:   endLine,
		release:   release,
	}
}

// Release frees the overlay. Safe to call repeatedly; only the first
// call runs the release callback. Release failures in the host are
// the host's to swallow (best-effort, ignore if already gone).
func (o *Overlay) Release() {
	if o.released {
		return
	}
	o.released = true
	if o.release != nil {
		o.release()
	}
}

// Released reports whether the overlay has been released.
func (o *Overlay) Released() bool {
	return o.released
}
