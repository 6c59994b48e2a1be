package nav

import (
	"github.com/five82/cinefind/internal/location"
	"github.com/five82/cinefind/internal/pagination"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/tmdb"
)

// Renderer draws controller output. Implementations are called from the
// goroutine that drives the controller.
type Renderer interface {
	// Clear empties the result area.
	Clear()
	// Welcome shows the landing view of a page opened without arguments.
	Welcome()
	// Message shows an informational line such as an empty-input hint or
	// a no-results notice.
	Message(text string)
	// Error shows a failed request or a state that could not be issued, in
	// place of results.
	Error(err error)
	// Entities shows one result page together with its pagination window.
	Entities(req search.Request, results []tmdb.Title, meta search.PageMetadata, window pagination.Window)
	// Credits shows cast and crew of title, both ordered by popularity.
	Credits(req search.Request, title string, cast, crew []tmdb.Person)
	// SyncForm sets the search form to kind and keyword.
	SyncForm(kind search.Kind, keyword string)
}

// Navigator performs a full navigation: the location is recorded and its
// page is loaded from scratch.
type Navigator interface {
	Navigate(loc location.Location) *Pending
}
