package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Location
	}{
		{"index.html#/tv/batman/1", Location{Page: MainPage, Fragment: "/tv/batman/1"}},
		{"./credits.html#/movie/550", Location{Page: CreditsPage, Fragment: "/movie/550"}},
		{"#/tv/x", Location{Page: MainPage, Fragment: "/tv/x"}},
		{"  credits.html  ", Location{Page: CreditsPage}},
		{"", Location{Page: MainPage}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestLocation_StringAndEmpty(t *testing.T) {
	loc := Build(Codec{}, MainPage, "tv", "batman", "1")
	assert.Equal(t, "index.html#/tv/batman/1", loc.String())
	assert.False(t, loc.Empty())
	assert.Equal(t, Tuple{"tv", "batman", "1", ""}, loc.Args(Codec{}))

	blank := Build(Codec{}, CreditsPage)
	assert.Equal(t, "credits.html#", blank.String())
	assert.True(t, blank.Empty())
	assert.True(t, Parse("index.html#/").Empty())
}

type recordingHistory struct {
	pushed   []Location
	replaced []Location
}

func (h *recordingHistory) Push(l Location)    { h.pushed = append(h.pushed, l) }
func (h *recordingHistory) Replace(l Location) { h.replaced = append(h.replaced, l) }

func TestPublish(t *testing.T) {
	h := &recordingHistory{}
	loc := Parse("index.html#/tv/x/1")

	Publish(h, loc, false)
	Publish(h, loc, true)
	Publish(nil, loc, true)

	assert.Equal(t, []Location{loc}, h.pushed)
	assert.Equal(t, []Location{loc}, h.replaced)
}
