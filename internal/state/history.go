package state

import (
	"slices"
	"sync"

	"github.com/five82/cinefind/internal/location"
)

// Snapshot is a copy of the history at a point in time.
type Snapshot struct {
	Entries []location.Location
	Index   int
}

// Current returns the active entry, or false when the history is empty.
func (s Snapshot) Current() (location.Location, bool) {
	if s.Index < 0 || s.Index >= len(s.Entries) {
		return location.Location{}, false
	}
	return s.Entries[s.Index], true
}

// CanBack reports whether Back would move.
func (s Snapshot) CanBack() bool { return s.Index > 0 }

// CanForward reports whether Forward would move.
func (s Snapshot) CanForward() bool { return s.Index >= 0 && s.Index < len(s.Entries)-1 }

// History is an in-memory navigation stack with browser semantics: Push
// drops every forward entry, Replace rewrites the active one.
type History struct {
	mu      sync.RWMutex
	entries []location.Location
	index   int
	limit   int
}

// DefaultLimit bounds the number of retained entries.
const DefaultLimit = 200

// NewHistory returns an empty history that keeps at most limit entries.
// A limit below 1 uses DefaultLimit.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &History{index: -1, limit: limit}
}

// Push appends loc after the active entry and makes it active.
func (h *History) Push(loc location.Location) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.init()

	h.entries = append(h.entries[:h.index+1], loc)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = slices.Delete(h.entries, 0, over)
	}
	h.index = len(h.entries) - 1
}

// Replace swaps the active entry for loc. On an empty history it pushes.
func (h *History) Replace(loc location.Location) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.init()

	if h.index < 0 {
		h.entries = append(h.entries[:0], loc)
		h.index = 0
		return
	}
	h.entries[h.index] = loc
}

// Back moves to the previous entry and returns it.
func (h *History) Back() (location.Location, bool) {
	return h.step(-1)
}

// Forward moves to the next entry and returns it.
func (h *History) Forward() (location.Location, bool) {
	return h.step(1)
}

func (h *History) step(delta int) (location.Location, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.init()

	next := h.index + delta
	if h.index < 0 || next < 0 || next >= len(h.entries) {
		return location.Location{}, false
	}
	h.index = next
	return h.entries[next], true
}

// Current returns the active entry.
func (h *History) Current() (location.Location, bool) {
	return h.Snapshot().Current()
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Snapshot returns a copy of the entries and the active index.
func (h *History) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	index := h.index
	if h.limit == 0 {
		// zero value History
		index = len(h.entries) - 1
	}
	return Snapshot{Entries: slices.Clone(h.entries), Index: index}
}

// init makes the zero value usable. Callers hold the write lock.
func (h *History) init() {
	if h.limit == 0 {
		h.limit = DefaultLimit
		h.index = len(h.entries) - 1
	}
}
