package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cinefind/internal/location"
)

var _ location.History = (*History)(nil)

func loc(raw string) location.Location { return location.Parse(raw) }

func TestHistory_ZeroValueIsEmpty(t *testing.T) {
	var h History

	_, ok := h.Current()
	assert.False(t, ok)
	_, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())

	h.Push(loc("index.html#/tv/batman/1"))
	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "index.html#/tv/batman/1", cur.String())
}

func TestHistory_PushBackForward(t *testing.T) {
	h := NewHistory(0)
	h.Push(loc("index.html#"))
	h.Push(loc("index.html#/tv/batman/1"))
	h.Push(loc("index.html#/tv/batman/2"))

	prev, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/tv/batman/1", prev.Fragment)

	next, ok := h.Forward()
	require.True(t, ok)
	assert.Equal(t, "/tv/batman/2", next.Fragment)

	_, ok = h.Forward()
	assert.False(t, ok)
}

func TestHistory_PushDropsForwardEntries(t *testing.T) {
	h := NewHistory(0)
	h.Push(loc("#/tv/a/1"))
	h.Push(loc("#/tv/a/2"))
	h.Push(loc("#/tv/a/3"))
	h.Back()
	h.Back()

	h.Push(loc("#/movie/b/1"))

	snap := h.Snapshot()
	assert.Len(t, snap.Entries, 2)
	assert.Equal(t, 1, snap.Index)
	assert.False(t, snap.CanForward())
	assert.True(t, snap.CanBack())
}

func TestHistory_ReplaceRewritesActiveEntry(t *testing.T) {
	h := NewHistory(0)
	h.Replace(loc("index.html#"))
	assert.Equal(t, 1, h.Len())

	h.Push(loc("#/tv/a/1"))
	h.Replace(loc("#/tv/a/2"))

	snap := h.Snapshot()
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "/tv/a/2", snap.Entries[1].Fragment)
	assert.Equal(t, "", snap.Entries[0].Fragment)
}

func TestHistory_LimitTrimsOldest(t *testing.T) {
	h := NewHistory(2)
	h.Push(loc("#/tv/a/1"))
	h.Push(loc("#/tv/a/2"))
	h.Push(loc("#/tv/a/3"))

	snap := h.Snapshot()
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "/tv/a/2", snap.Entries[0].Fragment)
	cur, _ := snap.Current()
	assert.Equal(t, "/tv/a/3", cur.Fragment)
}

func TestHistory_SnapshotIsACopy(t *testing.T) {
	h := NewHistory(0)
	h.Push(loc("#/tv/a/1"))

	snap := h.Snapshot()
	snap.Entries[0].Fragment = "mutated"

	cur, _ := h.Current()
	assert.Equal(t, "/tv/a/1", cur.Fragment)
}

func TestHistory_ConcurrentAccess(t *testing.T) {
	h := NewHistory(50)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Push(loc("#/tv/a/1"))
				h.Back()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = h.Snapshot()
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, h.Len(), 50)
}
