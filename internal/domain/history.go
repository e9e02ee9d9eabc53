package domain

// DefaultHistorySize is the number of recent picks each engine remembers.
const DefaultHistorySize = 8

const maxHistorySize = 32

// History is a bounded FIFO of recently selected rule ids. It is a value:
// Record returns a new History and never modifies the receiver, so callers
// own every state transition. A repeated id occupies one slot per use.
type History struct {
	ids      []string
	capacity int
}

// NewHistory returns an empty history. Capacity is clamped to [1, 32].
func NewHistory(capacity int) History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	if capacity > maxHistorySize {
		capacity = maxHistorySize
	}
	return History{capacity: capacity}
}

// Record appends id, evicting the oldest entries past capacity.
func (h History) Record(id string) History {
	capacity := h.capacity
	if capacity == 0 {
		capacity = DefaultHistorySize
	}
	ids := make([]string, 0, min(len(h.ids)+1, capacity))
	start := len(h.ids) + 1 - capacity
	if start < 0 {
		start = 0
	}
	ids = append(ids, h.ids[start:]...)
	ids = append(ids, id)
	return History{ids: ids, capacity: capacity}
}

// IDs returns a copy of the queue, oldest first.
func (h History) IDs() []string {
	out := make([]string, len(h.ids))
	copy(out, h.ids)
	return out
}

// Count is how many slots id occupies.
func (h History) Count(id string) int {
	n := 0
	for _, v := range h.ids {
		if v == id {
			n++
		}
	}
	return n
}

func (h History) Contains(id string) bool { return h.Count(id) > 0 }

// Recent returns up to n most recent ids, newest first.
func (h History) Recent(n int) []string {
	if n > len(h.ids) {
		n = len(h.ids)
	}
	out := make([]string, 0, n)
	for i := len(h.ids) - 1; i >= len(h.ids)-n; i-- {
		out = append(out, h.ids[i])
	}
	return out
}

// Last is the most recent id, or "".
func (h History) Last() string {
	if len(h.ids) == 0 {
		return ""
	}
	return h.ids[len(h.ids)-1]
}

func (h History) Len() int { return len(h.ids) }

func (h History) Cap() int {
	if h.capacity == 0 {
		return DefaultHistorySize
	}
	return h.capacity
}
