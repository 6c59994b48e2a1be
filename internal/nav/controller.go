package nav

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/five82/cinefind/internal/location"
	"github.com/five82/cinefind/internal/pagination"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/tmdb"
)

// Options configure a Controller.
type Options struct {
	Page      search.Page
	History   location.History
	Navigator Navigator
	Catalog   tmdb.Catalog
	Renderer  Renderer
	Codec     location.Codec
	// WindowSize is the number of numbered pagination links.
	WindowSize int
	// DefaultKind preselects the form when a page opens without arguments.
	// Unset means KindShow.
	DefaultKind search.Kind
	Logger      *slog.Logger
	// NewID generates request ids. Defaults to uuid.NewString.
	NewID func() string
}

// Controller reacts to the triggers of one page: form submit, pagination
// click and history pop. Every trigger ends in the same terminal action,
// which clears the result area, validates the search state and returns a
// Pending request for the caller to run.
//
// A Controller is not safe for concurrent use. Run the returned Pending on
// any goroutine, but hand its Result back through Deliver on the goroutine
// that owns the controller.
type Controller struct {
	page        search.Page
	history     location.History
	navigator   Navigator
	catalog     tmdb.Catalog
	render      Renderer
	codec       location.Codec
	windowSize  int
	defaultKind search.Kind
	logger      *slog.Logger
	newID       func() string

	state       *search.State
	displayName string
	inflight    string
	window      *pagination.Window
}

// NewController builds a controller for opts.Page.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	render := opts.Renderer
	if render == nil {
		render = discardRenderer{}
	}
	defaultKind := opts.DefaultKind
	if defaultKind == search.KindUnset {
		defaultKind = search.KindShow
	}
	return &Controller{
		page:        opts.Page,
		history:     opts.History,
		navigator:   opts.Navigator,
		catalog:     opts.Catalog,
		render:      render,
		codec:       opts.Codec,
		windowSize:  opts.WindowSize,
		defaultKind: defaultKind,
		logger:      logger.With("view", opts.Page.String()),
		newID:       newID,
		state:       search.NewState(opts.Page),
	}
}

// Page returns the page the controller serves.
func (c *Controller) Page() search.Page { return c.page }

// State returns a copy of the current search state.
func (c *Controller) State() search.State { return *c.state }

// DisplayName is the title name carried by a credits location.
func (c *Controller) DisplayName() string { return c.displayName }

// Window returns the pagination window of the last rendered result page.
func (c *Controller) Window() (pagination.Window, bool) {
	if c.window == nil {
		return pagination.Window{}, false
	}
	return *c.window, true
}

// Inflight returns the id of the request whose result is awaited, or "".
func (c *Controller) Inflight() string { return c.inflight }

// Location encodes the current state as a location of this page.
func (c *Controller) Location() location.Location {
	s := c.state
	switch c.page {
	case search.PageCredits:
		return location.Build(c.codec, location.CreditsPage, s.Kind.String(), s.TargetID, s.Keyword, c.displayName)
	default:
		return location.Build(c.codec, location.MainPage, s.Kind.String(), s.Keyword, strconv.Itoa(s.Page))
	}
}

// OnFormSubmit starts a first-page search for keyword. On the credits page
// the search belongs to the main page, so the submit becomes a full
// navigation there.
func (c *Controller) OnFormSubmit(kind search.Kind, keyword string) *Pending {
	keyword = strings.TrimSpace(keyword)
	if c.page == search.PageCredits {
		loc := location.Build(c.codec, location.MainPage, kind.String(), keyword, "1")
		c.logger.Info("submit redirects to main page", "location", loc.String())
		return c.navigate(loc)
	}

	c.state.Reset()
	c.state.Kind = kind
	c.state.Keyword = keyword
	c.state.Page = 1
	location.Publish(c.history, c.Location(), false)
	return c.issue()
}

// OnKindChange reacts to the kind selector. It submits only when a keyword
// is already entered.
func (c *Controller) OnKindChange(kind search.Kind, keyword string) *Pending {
	if strings.TrimSpace(keyword) == "" {
		return nil
	}
	return c.OnFormSubmit(kind, keyword)
}

// OnPageLinkClick moves to target within the current search. Targets that
// are not offered by the last rendered window are ignored.
func (c *Controller) OnPageLinkClick(target int) *Pending {
	if c.window == nil || !c.window.Allows(target) {
		c.logger.Debug("ignoring page link", "target", target)
		return nil
	}
	c.state.Page = search.ClampPage(target)
	location.Publish(c.history, c.Location(), false)
	return c.issue()
}

// OnHistoryPop restores the state carried by fragment without publishing a
// new history entry.
func (c *Controller) OnHistoryPop(fragment string) *Pending {
	loc := location.Location{Page: c.page.FileName(), Fragment: fragment}
	if loc.Empty() {
		c.state.Reset()
		c.displayName = ""
		c.inflight = ""
		c.window = nil
		location.Publish(c.history, location.Location{Page: loc.Page}, true)
		c.render.Clear()
		c.render.Welcome()
		c.render.SyncForm(c.defaultKind, "")
		return nil
	}

	c.displayName = c.state.DeriveFromLocation(loc.Args(c.codec), c.page)
	c.render.SyncForm(c.state.Kind, c.state.Keyword)
	return c.issue()
}

// OnInitialLoad is the first trigger of a freshly opened page. It behaves
// like a history pop.
func (c *Controller) OnInitialLoad(fragment string) *Pending {
	return c.OnHistoryPop(fragment)
}

// OpenCredits navigates to the credits page of title.
func (c *Controller) OpenCredits(title tmdb.Title) *Pending {
	kind := c.state.Kind
	if kind == search.KindUnset {
		kind = search.KindMovie
	}
	loc := location.Build(c.codec, location.CreditsPage, kind.String(), title.IDString(), c.state.Keyword, title.DisplayTitle())
	return c.navigate(loc)
}

// Deliver renders res if it answers the request in flight. Stale results
// are dropped and Deliver reports false.
func (c *Controller) Deliver(res Result) bool {
	id := res.Request.ID
	if id == "" || id != c.inflight {
		c.logger.Debug("discarding stale result", "request_id", id, "inflight", c.inflight)
		return false
	}
	c.inflight = ""

	if res.Err != nil {
		c.logger.Warn("catalog request failed", "request_id", id, "error", res.Err)
		c.render.Error(res.Err)
		return true
	}

	switch res.Request.Mode {
	case search.ModeEntitySearch:
		c.deliverEntities(res)
	case search.ModeCreditsLookup:
		c.deliverCredits(res)
	default:
		c.render.Error(&search.UnexpectedStateError{Reason: "result without a request mode"})
	}
	return true
}

func (c *Controller) deliverEntities(res Result) {
	page := res.Page
	if page == nil || page.TotalResults == 0 || len(page.Results) == 0 {
		c.render.Message(search.NoResultsMessage(res.Request))
		return
	}
	meta := search.NewPageMetadata(page.Page, page.TotalPages, page.TotalResults)
	window := pagination.Compute(meta.CurrentPage, meta.TotalPages, c.windowSize)
	c.window = &window
	c.logger.Info("results rendered",
		"request_id", res.Request.ID,
		"page", meta.CurrentPage,
		"total_pages", meta.TotalPages,
		"total_results", meta.TotalResults,
	)
	c.render.Entities(res.Request, page.Results, meta, window)
}

func (c *Controller) deliverCredits(res Result) {
	if res.Credits == nil || res.Credits.Empty() {
		c.render.Message("No credits found.")
		return
	}
	c.render.Credits(res.Request, c.displayName,
		tmdb.SortByPopularity(res.Credits.Cast),
		tmdb.SortByPopularity(res.Credits.Crew),
	)
}

// issue is the terminal action shared by every trigger.
func (c *Controller) issue() *Pending {
	c.render.Clear()
	c.window = nil
	c.inflight = ""

	if err := c.state.Validate(); err != nil {
		var empty *search.EmptyInputError
		if errors.As(err, &empty) {
			c.render.Message(empty.Error())
			return nil
		}
		c.logger.Error("refusing request", "error", err)
		c.render.Error(err)
		return nil
	}

	req := c.state.Snapshot(c.newID())
	c.inflight = req.ID
	c.logger.Info("request issued",
		"request_id", req.ID,
		"mode", req.Mode.String(),
		"kind", req.Kind.String(),
		"keyword", req.Keyword,
		"page", req.Page,
		"target", req.TargetID,
	)
	return &Pending{Request: req, catalog: c.catalog}
}

func (c *Controller) navigate(loc location.Location) *Pending {
	c.inflight = ""
	if c.navigator == nil {
		location.Publish(c.history, loc, false)
		return nil
	}
	return c.navigator.Navigate(loc)
}

type discardRenderer struct{}

func (discardRenderer) Clear() {}

func (discardRenderer) Welcome() {}

func (discardRenderer) Message(string) {}

func (discardRenderer) Error(error) {}

func (discardRenderer) SyncForm(search.Kind, string) {}

func (discardRenderer) Entities(search.Request, []tmdb.Title, search.PageMetadata, pagination.Window) {}

func (discardRenderer) Credits(search.Request, string, []tmdb.Person, []tmdb.Person) {}
