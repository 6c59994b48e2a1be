// Package search holds the search intent that drives every catalog request:
// which catalog partition is targeted, the keyword, the requested page and,
// on the credits page, the title whose credits are shown.
package search

import (
	"strings"

	"github.com/five82/cinefind/internal/location"
)

// Kind is the catalog partition a search targets.
type Kind int

const (
	KindUnset Kind = iota
	KindMovie
	KindShow
)

// String returns the location slug for k ("movie", "tv") or "" when unset.
func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindShow:
		return "tv"
	default:
		return ""
	}
}

// Label returns a human readable name for k.
func (k Kind) Label() string {
	switch k {
	case KindMovie:
		return "Movies"
	case KindShow:
		return "TV Shows"
	default:
		return "Unknown"
	}
}

// Toggle flips between movie and show. An unset kind becomes a show search,
// matching the form default.
func (k Kind) Toggle() Kind {
	if k == KindShow {
		return KindMovie
	}
	return KindShow
}

// ParseKind matches "movie" or "tv" case-insensitively.
func ParseKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "movie":
		return KindMovie, true
	case "tv":
		return KindShow, true
	default:
		return KindUnset, false
	}
}

// KindOrMovie parses raw and falls back to a movie search for anything that
// is neither "movie" nor "tv".
func KindOrMovie(raw string) Kind {
	if kind, ok := ParseKind(raw); ok {
		return kind
	}
	return KindMovie
}

// Mode is the kind of request a page issues.
type Mode int

const (
	ModeNone Mode = iota
	ModeEntitySearch
	ModeCreditsLookup
)

func (m Mode) String() string {
	switch m {
	case ModeEntitySearch:
		return "entity search"
	case ModeCreditsLookup:
		return "credits lookup"
	default:
		return "none"
	}
}

// Page identifies the logical page a controller serves.
type Page int

const (
	PageUnknown Page = iota
	PageMain
	PageCredits
)

// PageFromFile maps a location page name to a Page.
func PageFromFile(name string) Page {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case location.MainPage:
		return PageMain
	case location.CreditsPage:
		return PageCredits
	default:
		return PageUnknown
	}
}

// FileName returns the location page name for p.
func (p Page) FileName() string {
	switch p {
	case PageMain:
		return location.MainPage
	case PageCredits:
		return location.CreditsPage
	default:
		return ""
	}
}

// Mode returns the request mode the page issues.
func (p Page) Mode() Mode {
	switch p {
	case PageMain:
		return ModeEntitySearch
	case PageCredits:
		return ModeCreditsLookup
	default:
		return ModeNone
	}
}

func (p Page) String() string {
	switch p {
	case PageMain:
		return "main"
	case PageCredits:
		return "credits"
	default:
		return "unknown"
	}
}

// State is the mutable search intent of one page.
type State struct {
	Kind     Kind
	Mode     Mode
	Keyword  string
	Page     int
	TargetID string
}

// NewState returns a reset state bound to page.
func NewState(page Page) *State {
	s := &State{Mode: page.Mode()}
	s.Reset()
	return s
}

// Reset restores the defaults. Mode is owned by the page and is kept.
func (s *State) Reset() {
	s.Kind = KindUnset
	s.Keyword = ""
	s.Page = 1
	s.TargetID = ""
}

// DeriveFromLocation resets s and fills it positionally from args.
//
// Main page: kind, keyword, page. Credits page: kind, target id, keyword,
// display name. The display name is returned rather than stored since it is
// only used for presentation. Unknown kinds fall back to movie.
func (s *State) DeriveFromLocation(args location.Tuple, page Page) string {
	s.Mode = page.Mode()
	s.Reset()
	s.Kind = KindOrMovie(args[0])

	switch s.Mode {
	case ModeEntitySearch:
		s.Keyword = strings.TrimSpace(args[1])
		s.Page = NormalizePage(args[2])
	case ModeCreditsLookup:
		s.TargetID = strings.TrimSpace(args[1])
		s.Keyword = strings.TrimSpace(args[2])
		return strings.TrimSpace(args[3])
	}
	return ""
}

// Validate reports whether s can be sent to the catalog. It returns an
// *EmptyInputError or an *UnexpectedStateError.
func (s State) Validate() error {
	switch s.Mode {
	case ModeEntitySearch:
		if s.Kind == KindUnset {
			return &UnexpectedStateError{Reason: "entity search without a kind"}
		}
		if s.Keyword == "" {
			return &EmptyInputError{Mode: s.Mode}
		}
	case ModeCreditsLookup:
		if s.Kind == KindUnset {
			return &UnexpectedStateError{Reason: "credits lookup without a kind"}
		}
		if s.TargetID == "" {
			return &EmptyInputError{Mode: s.Mode}
		}
	default:
		return &UnexpectedStateError{Reason: "no entity search or credits lookup is active"}
	}
	return nil
}

// Request is an immutable snapshot of a state issued to the catalog.
type Request struct {
	ID       string
	Kind     Kind
	Mode     Mode
	Keyword  string
	Page     int
	TargetID string
}

// Snapshot freezes s under the given request id.
func (s State) Snapshot(id string) Request {
	return Request{
		ID:       id,
		Kind:     s.Kind,
		Mode:     s.Mode,
		Keyword:  s.Keyword,
		Page:     s.Page,
		TargetID: s.TargetID,
	}
}
