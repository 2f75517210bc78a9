package testing

// DeferredHost is a ringgraph.Host that only marks itself dirty, like a
// platform view that repaints on the next display pass.
type DeferredHost struct {
	// Requests counts SetNeedsDisplay calls.
	Requests int
	dirty    bool
}

// SetNeedsDisplay implements ringgraph.Host.
func (h *DeferredHost) SetNeedsDisplay() {
	h.Requests++
	h.dirty = true
}

// TakeDirty reports whether a redraw was requested since the last call
// and clears the flag.
func (h *DeferredHost) TakeDirty() bool {
	dirty := h.dirty
	h.dirty = false
	return dirty
}
