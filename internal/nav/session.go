package nav

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/cinefind/internal/location"
	"github.com/five82/cinefind/internal/pagination"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/state"
	"github.com/five82/cinefind/internal/tmdb"
)

// SessionOptions configure a Session.
type SessionOptions struct {
	History    *state.History
	Catalog    tmdb.Catalog
	Renderer   Renderer
	Codec      location.Codec
	WindowSize int
	// DefaultKind is handed to every controller the session creates.
	DefaultKind search.Kind
	Logger      *slog.Logger
	NewID       func() string
}

// Session is a single browsing window: a history of locations and the
// controller of the page currently shown. Opening a location on another
// page discards the active controller and loads a fresh one; moving within
// the same page is a history pop.
//
// Like Controller, a Session is driven from one goroutine.
type Session struct {
	history     *state.History
	catalog     tmdb.Catalog
	render      Renderer
	codec       location.Codec
	windowSize  int
	defaultKind search.Kind
	logger      *slog.Logger
	newID       func() string

	active *Controller
}

// NewSession returns a session with no page loaded.
func NewSession(opts SessionOptions) *Session {
	history := opts.History
	if history == nil {
		history = state.NewHistory(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	render := opts.Renderer
	if render == nil {
		render = discardRenderer{}
	}
	return &Session{
		history:     history,
		catalog:     opts.Catalog,
		render:      render,
		codec:       opts.Codec,
		windowSize:  opts.WindowSize,
		defaultKind: opts.DefaultKind,
		logger:      logger,
		newID:       opts.NewID,
	}
}

// History returns the session history.
func (s *Session) History() *state.History { return s.history }

// Active returns the controller of the page shown, or nil before the first
// Open.
func (s *Session) Active() *Controller { return s.active }

// Current returns the active history entry.
func (s *Session) Current() (location.Location, bool) { return s.history.Current() }

// Open records raw as a new history entry and shows it, like typing a
// location into the address bar.
func (s *Session) Open(raw string) *Pending {
	loc := location.Parse(raw)
	s.history.Push(loc)
	return s.load(loc, false)
}

// Navigate records loc and loads its page from scratch.
func (s *Session) Navigate(loc location.Location) *Pending {
	s.history.Push(loc)
	return s.load(loc, true)
}

// Back moves one entry back. It returns nil at the start of the history.
func (s *Session) Back() *Pending {
	loc, ok := s.history.Back()
	if !ok {
		return nil
	}
	return s.load(loc, false)
}

// Forward moves one entry forward.
func (s *Session) Forward() *Pending {
	loc, ok := s.history.Forward()
	if !ok {
		return nil
	}
	return s.load(loc, false)
}

// Reload reissues the request of the active entry.
func (s *Session) Reload() *Pending {
	loc, ok := s.history.Current()
	if !ok {
		return nil
	}
	return s.load(loc, false)
}

// Submit forwards a form submit to the active page.
func (s *Session) Submit(kind search.Kind, keyword string) *Pending {
	if s.active == nil {
		s.Open(location.MainPage + "#")
	}
	return s.active.OnFormSubmit(kind, keyword)
}

// ChangeKind forwards a kind selector change to the active page.
func (s *Session) ChangeKind(kind search.Kind, keyword string) *Pending {
	if s.active == nil {
		return nil
	}
	return s.active.OnKindChange(kind, keyword)
}

// GoToPage forwards a pagination click to the active page.
func (s *Session) GoToPage(page int) *Pending {
	if s.active == nil {
		return nil
	}
	return s.active.OnPageLinkClick(page)
}

// OpenCredits navigates to the credits of title.
func (s *Session) OpenCredits(title tmdb.Title) *Pending {
	if s.active == nil {
		return nil
	}
	return s.active.OpenCredits(title)
}

// Deliver hands res to the active controller.
func (s *Session) Deliver(res Result) bool {
	if s.active == nil {
		return false
	}
	return s.active.Deliver(res)
}

// Await runs p synchronously and delivers its result. It reports whether
// the result was rendered.
func (s *Session) Await(ctx context.Context, p *Pending) bool {
	if p == nil {
		return false
	}
	return s.Deliver(p.Run(ctx))
}

// Window returns the pagination window of the active page.
func (s *Session) Window() (pagination.Window, bool) {
	if s.active == nil {
		return pagination.Window{}, false
	}
	return s.active.Window()
}

// Busy reports whether a request is awaited.
func (s *Session) Busy() bool {
	return s.active != nil && s.active.Inflight() != ""
}

func (s *Session) load(loc location.Location, reload bool) *Pending {
	page := search.PageFromFile(loc.Page)
	if page == search.PageUnknown {
		s.logger.Warn("unknown page", "location", loc.String())
		s.active = nil
		s.render.Clear()
		s.render.Error(fmt.Errorf("unknown page %q", loc.Page))
		return nil
	}

	if reload || s.active == nil || s.active.Page() != page {
		s.logger.Info("loading page", "location", loc.String())
		s.active = NewController(Options{
			Page:        page,
			History:     s.history,
			Navigator:   s,
			Catalog:     s.catalog,
			Renderer:    s.render,
			Codec:       s.codec,
			WindowSize:  s.windowSize,
			DefaultKind: s.defaultKind,
			Logger:      s.logger,
			NewID:       s.newID,
		})
		return s.active.OnInitialLoad(loc.Fragment)
	}
	return s.active.OnHistoryPop(loc.Fragment)
}
