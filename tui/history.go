// Package tui provides a Bubble Tea terminal UI for the wayfarer engine.
package tui

// History remembers submitted lines in a fixed-size ring. Up and Down walk
// it from the newest entry back.
type History struct {
	ring  []string
	head  int // index of the oldest entry
	size  int
	pos   int // steps back from the newest entry; 0 = editing fresh input
	limit int
}

// NewHistory creates a history holding at most limit lines.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{ring: make([]string, limit), limit: limit}
}

// at returns the i-th entry counting from the oldest.
func (h *History) at(i int) string {
	return h.ring[(h.head+i)%h.limit]
}

// Push records line, dropping the oldest entry once full. Blank lines and
// repeats of the newest entry are not recorded.
func (h *History) Push(line string) {
	if line == "" || (h.size > 0 && h.at(h.size-1) == line) {
		return
	}
	if h.size < h.limit {
		h.ring[(h.head+h.size)%h.limit] = line
		h.size++
		return
	}
	h.ring[h.head] = line
	h.head = (h.head + 1) % h.limit
}

// Prev steps one entry older and returns it, stopping at the oldest.
func (h *History) Prev() (string, bool) {
	if h.size == 0 {
		return "", false
	}
	if h.pos < h.size {
		h.pos++
	}
	return h.at(h.size - h.pos), true
}

// Next steps one entry newer. Stepping past the newest returns false and
// leaves navigation.
func (h *History) Next() (string, bool) {
	if h.pos <= 1 {
		h.pos = 0
		return "", false
	}
	h.pos--
	return h.at(h.size - h.pos), true
}

// ResetCursor leaves navigation.
func (h *History) ResetCursor() {
	h.pos = 0
}

// Recent returns up to n entries, oldest first.
func (h *History) Recent(n int) []string {
	if n > h.size {
		n = h.size
	}
	out := make([]string, n)
	for i := range out {
		out[i] = h.at(h.size - n + i)
	}
	return out
}

// Len is the number of remembered lines.
func (h *History) Len() int { return h.size }
