// Package pagination computes the bounded set of page links shown under a
// result list.
package pagination

// DefaultSize is the number of numbered links shown when no size is set.
const DefaultSize = 5

// maxLookback is how many pages before the current one the window tries to show.
const maxLookback = 2

// Link is a numbered page link.
type Link struct {
	Page      int
	IsCurrent bool
}

// Target is a directional link (first, prev, next, last).
type Target struct {
	Page    int
	Enabled bool
}

// Window is the computed set of links for one result page.
type Window struct {
	Current int
	Total   int
	Pages   []Link
	First   Target
	Prev    Target
	Next    Target
	Last    Target
}

// Compute builds the window for current out of total pages.
//
// Candidates run from up to two pages before current to size-1 pages after
// it. Candidates outside [1, total] are dropped and the rest is truncated to
// size entries in ascending order. A current page beyond total is not
// clamped: it yields a partial or empty window.
func Compute(current, total, size int) Window {
	if size < 1 {
		size = DefaultSize
	}
	if total < 1 {
		total = 1
	}

	back := min(maxLookback, (size-1)/2)
	pages := make([]Link, 0, size)
	for p := current - back; p <= current+size-1 && len(pages) < size; p++ {
		if p <= 0 || p > total {
			continue
		}
		pages = append(pages, Link{Page: p, IsCurrent: p == current})
	}

	return Window{
		Current: current,
		Total:   total,
		Pages:   pages,
		First:   Target{Page: 1, Enabled: current > 1},
		Prev:    Target{Page: max(1, current-1), Enabled: current > 1},
		Next:    Target{Page: min(current+1, total), Enabled: current < total},
		Last:    Target{Page: total, Enabled: current < total},
	}
}

// Allows reports whether clicking page is a real navigation: page is one of
// the numbered links or an enabled directional target, and is not the
// current page.
func (w Window) Allows(page int) bool {
	if page == w.Current {
		return false
	}
	for _, link := range w.Pages {
		if link.Page == page {
			return true
		}
	}
	for _, t := range []Target{w.First, w.Prev, w.Next, w.Last} {
		if t.Enabled && t.Page == page {
			return true
		}
	}
	return false
}

// Numbers returns the page numbers of the numbered links.
func (w Window) Numbers() []int {
	out := make([]int, len(w.Pages))
	for i, link := range w.Pages {
		out[i] = link.Page
	}
	return out
}
