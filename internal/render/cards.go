// Package render turns catalog results into presentation models and plain
// text. The TUI styles the models itself; Writer prints them for the
// command line.
package render

import (
	"fmt"
	"strings"

	"github.com/five82/cinefind/internal/location"
	"github.com/five82/cinefind/internal/pagination"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/tmdb"
)

// MissingImage stands in for a poster or profile that has no image.
const MissingImage = "image not found"

// TitleCard is one movie or show in a result list.
type TitleCard struct {
	Title    tmdb.Title
	Heading  string
	Year     string
	Rating   string
	Overview string
	Image    string
	// Credits is the location of the title's credits page.
	Credits location.Location
}

// PersonCard is one cast or crew member.
type PersonCard struct {
	Name  string
	Role  string
	Image string
}

// TitleCards builds the cards for a result page of req.
func TitleCards(codec location.Codec, imageBase string, req search.Request, titles []tmdb.Title) []TitleCard {
	cards := make([]TitleCard, 0, len(titles))
	for _, t := range titles {
		heading := t.DisplayTitle()
		cards = append(cards, TitleCard{
			Title:    t,
			Heading:  heading,
			Year:     t.Year(),
			Rating:   t.RatingText(),
			Overview: t.OverviewText(),
			Image:    imageOrMissing(tmdb.ImageURL(imageBase, tmdb.PosterSize, t.PosterPath)),
			Credits: location.Build(codec, location.CreditsPage,
				req.Kind.String(), t.IDString(), req.Keyword, heading),
		})
	}
	return cards
}

// PersonCards builds the cards for people in the given order.
func PersonCards(imageBase string, people []tmdb.Person) []PersonCard {
	cards := make([]PersonCard, 0, len(people))
	for _, p := range people {
		cards = append(cards, PersonCard{
			Name:  strings.TrimSpace(p.Name),
			Role:  p.Role(),
			Image: imageOrMissing(tmdb.ImageURL(imageBase, tmdb.ProfileSize, p.ProfilePath)),
		})
	}
	return cards
}

// HeadingLine is the line above a result list.
func HeadingLine(req search.Request, meta search.PageMetadata) string {
	return fmt.Sprintf("%s matching %q: %d results, page %d of %d",
		req.Kind.Label(), req.Keyword, meta.TotalResults, meta.CurrentPage, meta.TotalPages)
}

// PageLabel is the text of a numbered link; the current page is bracketed.
func PageLabel(link pagination.Link) string {
	if link.IsCurrent {
		return fmt.Sprintf("[%d]", link.Page)
	}
	return fmt.Sprint(link.Page)
}

// PaginationLine renders w as "« ‹ 1 [2] 3 4 5 › »". Disabled directional
// links are shown as "·".
func PaginationLine(w pagination.Window) string {
	parts := make([]string, 0, len(w.Pages)+4)
	parts = append(parts, arrow("«", w.First), arrow("‹", w.Prev))
	for _, link := range w.Pages {
		parts = append(parts, PageLabel(link))
	}
	parts = append(parts, arrow("›", w.Next), arrow("»", w.Last))
	return strings.Join(parts, " ")
}

func arrow(symbol string, t pagination.Target) string {
	if !t.Enabled {
		return "·"
	}
	return symbol
}

func imageOrMissing(url string) string {
	if url == "" {
		return MissingImage
	}
	return url
}
