package ui

import (
	"github.com/five82/cinefind/internal/nav"
	"github.com/five82/cinefind/internal/pagination"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/tmdb"
)

var _ nav.Renderer = (*screen)(nil)

// screenMode is what the result pane currently shows.
type screenMode int

const (
	modeBlank screenMode = iota
	modeWelcome
	modeMessage
	modeError
	modeEntities
	modeCredits
)

// screen collects controller output for the next View. It is shared by
// pointer between the Model copies bubbletea passes around and the session.
type screen struct {
	mode screenMode
	text string
	err  error

	req    search.Request
	titles []tmdb.Title
	meta   search.PageMetadata
	window pagination.Window

	creditsTitle string
	cast         []tmdb.Person
	crew         []tmdb.Person

	// Pending form update, applied by the model after each session call.
	formKind    search.Kind
	formKeyword string
	formDirty   bool
}

func (s *screen) Clear() {
	s.mode = modeBlank
	s.text = ""
	s.err = nil
	s.titles = nil
	s.cast = nil
	s.crew = nil
	s.creditsTitle = ""
	s.window = pagination.Window{}
}

func (s *screen) Welcome() {
	s.mode = modeWelcome
}

func (s *screen) Message(text string) {
	s.mode = modeMessage
	s.text = text
}

func (s *screen) Error(err error) {
	s.mode = modeError
	s.err = err
}

func (s *screen) Entities(req search.Request, results []tmdb.Title, meta search.PageMetadata, window pagination.Window) {
	s.mode = modeEntities
	s.req = req
	s.titles = results
	s.meta = meta
	s.window = window
}

func (s *screen) Credits(req search.Request, title string, cast, crew []tmdb.Person) {
	s.mode = modeCredits
	s.req = req
	s.creditsTitle = title
	s.cast = cast
	s.crew = crew
}

func (s *screen) SyncForm(kind search.Kind, keyword string) {
	s.formKind = kind
	s.formKeyword = keyword
	s.formDirty = true
}

// takeForm returns a pending form update once.
func (s *screen) takeForm() (search.Kind, string, bool) {
	if !s.formDirty {
		return search.KindUnset, "", false
	}
	s.formDirty = false
	return s.formKind, s.formKeyword, true
}
