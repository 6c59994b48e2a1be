package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cinefind/internal/location"
	"github.com/five82/cinefind/internal/nav"
	"github.com/five82/cinefind/internal/pagination"
	"github.com/five82/cinefind/internal/prefs"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/state"
	"github.com/five82/cinefind/internal/tmdb"
)

// focus is the element receiving key presses.
type focus int

const (
	focusResults focus = iota
	focusSearch
	focusLocation
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Catalog    tmdb.Catalog
	History    *state.History
	Codec      location.Codec
	WindowSize int
	// ImageBase is the TMDB image host; poster URLs are shown on wide
	// terminals.
	ImageBase string
	Logger    *slog.Logger
	// Start is the location opened on launch. Empty opens the main page.
	Start     string
	Prefs     prefs.Prefs
	PrefsPath string
	// NewID generates request ids. Defaults to uuid.NewString.
	NewID func() string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	session   *nav.Session
	screen    *screen
	codec     location.Codec
	imageBase string
	logger    *slog.Logger
	prefs     prefs.Prefs
	prefsPath string

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool
	focus  focus

	// Search form
	kind     search.Kind
	keyword  textinput.Model
	location textinput.Model

	// Results
	selected int
	content  viewport.Model
	spinner  spinner.Model
	loading  bool
	initial  *nav.Pending

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model and opens the start location.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	kind, ok := search.ParseKind(p.DefaultKind)
	if !ok {
		kind = search.KindShow
	}

	scr := &screen{}
	session := nav.NewSession(nav.SessionOptions{
		History:     opts.History,
		Catalog:     opts.Catalog,
		Renderer:    scr,
		Codec:       opts.Codec,
		WindowSize:  opts.WindowSize,
		DefaultKind: kind,
		Logger:      logger.With("component", "ui"),
		NewID:       opts.NewID,
	})

	keyword := textinput.New()
	keyword.Placeholder = "Search movies and TV shows"
	keyword.Prompt = ""
	keyword.CharLimit = searchCharLimit

	loc := textinput.New()
	loc.Placeholder = location.MainPage + "#/tv/batman/1"
	loc.Prompt = ""

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:       ctx,
		session:   session,
		screen:    scr,
		codec:     opts.Codec,
		imageBase: opts.ImageBase,
		logger:    logger,
		prefs:     p,
		prefsPath: prefsPath,
		theme:     GetTheme(p.Theme),
		keys:      DefaultKeyMap(),
		kind:      kind,
		keyword:   keyword,
		location:  loc,
		spinner:   spin,
		content:   viewport.New(0, 0),
	}

	start := strings.TrimSpace(opts.Start)
	if start == "" {
		start = location.MainPage + "#"
	}
	m.initial = session.Open(start)
	m.loading = m.initial != nil
	m.syncForm()
	if current, ok := session.Current(); !ok || current.Empty() {
		m.focus = focusSearch
		m.keyword.Focus()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initial != nil {
		cmds = append(cmds, m.run(m.initial), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.Width = msg.Width
		m.content.Height = max(msg.Height-chromeRows, 1)
		m.keyword.Width = max(msg.Width/2, 10)
		m.location.Width = max(msg.Width-12, 10)
		m.ready = true
		m.refresh()
		return m, nil

	case resultMsg:
		m.initial = nil
		if m.session.Deliver(nav.Result(msg)) {
			m.selected = 0
			m.content.GotoTop()
		}
		m.loading = m.session.Busy()
		m.syncForm()
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusLocation:
		return m.handleLocationKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.keyword.Focus()

	case key.Matches(msg, m.keys.OpenLocation):
		m.focus = focusLocation
		if current, ok := m.session.Current(); ok {
			m.location.SetValue(current.String())
			m.location.CursorEnd()
		}
		return m, m.location.Focus()

	case key.Matches(msg, m.keys.ToggleKind):
		return m.toggleKind()

	case key.Matches(msg, m.keys.Confirm):
		title, ok := m.selectedTitle()
		if !ok {
			return m, nil
		}
		return m.start(m.session.OpenCredits(title))

	case key.Matches(msg, m.keys.Back):
		return m.start(m.session.Back())

	case key.Matches(msg, m.keys.Forward):
		return m.start(m.session.Forward())

	case key.Matches(msg, m.keys.Reload):
		return m.start(m.session.Reload())

	case key.Matches(msg, m.keys.PrevPage):
		return m.goToPage(func(w pagination.Window) pagination.Target { return w.Prev })

	case key.Matches(msg, m.keys.NextPage):
		return m.goToPage(func(w pagination.Window) pagination.Target { return w.Next })

	case key.Matches(msg, m.keys.FirstPage):
		return m.goToPage(func(w pagination.Window) pagination.Target { return w.First })

	case key.Matches(msg, m.keys.LastPage):
		return m.goToPage(func(w pagination.Window) pagination.Target { return w.Last })

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.selectableTitles())-1 {
			m.selected++
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.content.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.content.HalfPageUp()
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = focusResults
		m.keyword.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.focus = focusResults
		m.keyword.Blur()
		return m.start(m.session.Submit(m.kind, m.keyword.Value()))

	case key.Matches(msg, m.keys.ToggleKind):
		return m.toggleKind()
	}

	var cmd tea.Cmd
	m.keyword, cmd = m.keyword.Update(msg)
	return m, cmd
}

func (m Model) handleLocationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = focusResults
		m.location.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.focus = focusResults
		m.location.Blur()
		raw := strings.TrimSpace(m.location.Value())
		if raw == "" {
			return m, nil
		}
		return m.start(m.session.Open(raw))
	}

	var cmd tea.Cmd
	m.location, cmd = m.location.Update(msg)
	return m, cmd
}

func (m Model) toggleKind() (tea.Model, tea.Cmd) {
	m.kind = m.kind.Toggle()
	return m.start(m.session.ChangeKind(m.kind, m.keyword.Value()))
}

func (m Model) goToPage(pick func(pagination.Window) pagination.Target) (tea.Model, tea.Cmd) {
	w, ok := m.session.Window()
	if !ok {
		return m, nil
	}
	target := pick(w)
	if !target.Enabled {
		return m, nil
	}
	return m.start(m.session.GoToPage(target.Page))
}

// start applies the screen changes of a session call and runs p.
func (m Model) start(p *nav.Pending) (tea.Model, tea.Cmd) {
	m.syncForm()
	m.selected = 0
	m.content.GotoTop()
	m.refresh()
	if p == nil {
		m.loading = m.session.Busy()
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.run(p), m.spinner.Tick)
}

func (m Model) run(p *nav.Pending) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return resultMsg(p.Run(ctx))
	}
}

// syncForm copies a form update requested by the controller into the
// inputs.
func (m *Model) syncForm() {
	kind, keyword, ok := m.screen.takeForm()
	if !ok {
		return
	}
	if kind != search.KindUnset {
		m.kind = kind
	}
	m.keyword.SetValue(keyword)
	m.keyword.CursorEnd()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.prefs.Theme = m.theme.Name
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
			m.logger.Warn("saving preferences failed", "error", err)
		}
	}
	m.refresh()
}

func (m Model) selectableTitles() []tmdb.Title {
	if m.screen.mode != modeEntities {
		return nil
	}
	return m.screen.titles
}

func (m Model) selectedTitle() (tmdb.Title, bool) {
	titles := m.selectableTitles()
	if m.selected < 0 || m.selected >= len(titles) {
		return tmdb.Title{}, false
	}
	return titles[m.selected], true
}

// refresh rebuilds the result pane and keeps the selection in view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.content.SetContent(m.renderContent())
	if m.screen.mode != modeEntities {
		return
	}
	top := contentHeaderRows + m.selected*cardRows
	bottom := top + cardRows - 1
	switch {
	case top < m.content.YOffset:
		m.content.SetYOffset(top)
	case bottom >= m.content.YOffset+m.content.Height:
		m.content.SetYOffset(bottom - m.content.Height + 1)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderLocationBar(),
		m.content.View(),
		m.renderPaginationBar(),
		m.renderCommandBar(),
	)
}

// Messages

type resultMsg nav.Result

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
