package location

import "strings"

// Page file names used as the base of every location.
const (
	MainPage    = "index.html"
	CreditsPage = "credits.html"
)

// Location is a page plus the fragment body after "#".
type Location struct {
	Page     string
	Fragment string
}

// Parse splits raw into page and fragment. A leading "./" or "/" on the page
// is dropped and a missing page resolves to MainPage, so "#/tv/x/1" and
// "index.html#/tv/x/1" are the same location.
func Parse(raw string) Location {
	raw = strings.TrimSpace(raw)
	page, fragment, _ := strings.Cut(raw, "#")
	page = strings.TrimPrefix(page, "./")
	page = strings.TrimPrefix(page, "/")
	if page == "" {
		page = MainPage
	}
	return Location{Page: page, Fragment: fragment}
}

// Build encodes values with codec and returns the resulting location.
func Build(codec Codec, page string, values ...string) Location {
	return Parse(codec.Encode(page, values...))
}

// String renders the location as "<page>#<fragment>".
func (l Location) String() string {
	return l.Page + "#" + l.Fragment
}

// Empty reports whether the location carries no fragment arguments.
func (l Location) Empty() bool {
	return strings.Trim(l.Fragment, Separator) == ""
}

// Args decodes the fragment with codec.
func (l Location) Args(codec Codec) Tuple {
	return codec.Decode(l.Fragment)
}

// History is the navigation boundary a location is published to.
type History interface {
	Push(Location)
	Replace(Location)
}

// Publish records loc on h, replacing the current entry when replace is set.
func Publish(h History, loc Location, replace bool) {
	if h == nil {
		return
	}
	if replace {
		h.Replace(loc)
		return
	}
	h.Push(loc)
}
