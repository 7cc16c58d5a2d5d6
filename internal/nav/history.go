package nav

// History is the navigation stack. It always holds at least the root entry;
// the current view is the last one. The zero value is not usable, call
// NewHistory.
//
// History is not safe for concurrent use; callers serialise access.
type History struct {
	entries []View
}

// NewHistory starts a history at root.
func NewHistory(root View) *History {
	return &History{entries: []View{root}}
}

// Push appends v. Repeats and cycles are allowed.
func (h *History) Push(v View) {
	h.entries = append(h.entries, v)
}

// Pop drops the current view unless it is the root. It reports whether an
// entry was removed.
func (h *History) Pop() bool {
	if len(h.entries) <= 1 {
		return false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return true
}

// Current returns the top of the stack.
func (h *History) Current() View {
	return h.entries[len(h.entries)-1]
}

// Len returns the stack depth, at least 1.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the stack, root first.
func (h *History) Entries() []View {
	out := make([]View, len(h.entries))
	copy(out, h.entries)
	return out
}
