package tmdb

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Image sizes requested from the image CDN.
const (
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	PosterSize          = "w500"
	ProfileSize         = "w185"
)

// SearchPage is one page of /3/search/{movie|tv} results.
type SearchPage struct {
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Results      []Title `json:"results"`
}

// Title is a movie or tv show search hit. Movies fill Title and
// ReleaseDate, shows fill Name and FirstAirDate.
type Title struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
}

// DisplayTitle prefers the movie title and falls back to the show name.
func (t Title) DisplayTitle() string {
	if s := strings.TrimSpace(t.Title); s != "" {
		return s
	}
	if s := strings.TrimSpace(t.Name); s != "" {
		return s
	}
	return "Untitled"
}

// Year returns the four digit release or first air year, or "".
func (t Title) Year() string {
	date := t.ReleaseDate
	if date == "" {
		date = t.FirstAirDate
	}
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// RatingText formats the vote average as "7.3 / 10".
func (t Title) RatingText() string {
	if t.VoteAverage <= 0 {
		return "Rating N/A"
	}
	return strconv.FormatFloat(t.VoteAverage, 'f', -1, 64) + " / 10"
}

// OverviewText returns the overview or a placeholder.
func (t Title) OverviewText() string {
	if s := strings.TrimSpace(t.Overview); s != "" {
		return s
	}
	return "Overview N/A"
}

// IDString is the id as it appears in locations.
func (t Title) IDString() string {
	return strconv.FormatInt(t.ID, 10)
}

// Credits is the /3/{movie|tv}/{id}/credits payload.
type Credits struct {
	ID   int64    `json:"id"`
	Cast []Person `json:"cast"`
	Crew []Person `json:"crew"`
}

// Empty reports whether neither cast nor crew has entries.
func (c Credits) Empty() bool {
	return len(c.Cast) == 0 && len(c.Crew) == 0
}

// Person is a cast or crew member.
type Person struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Character          string  `json:"character,omitempty"`
	Job                string  `json:"job,omitempty"`
	Department         string  `json:"department,omitempty"`
	KnownForDepartment string  `json:"known_for_department,omitempty"`
	ProfilePath        string  `json:"profile_path"`
	Popularity         float64 `json:"popularity"`
}

// Role is the character for cast members and the job for crew.
func (p Person) Role() string {
	if s := strings.TrimSpace(p.Character); s != "" {
		return s
	}
	if s := strings.TrimSpace(p.Job); s != "" {
		return s
	}
	return p.KnownForDepartment
}

// SortByPopularity returns a copy of people ordered by descending
// popularity. People without a popularity score go last; ties keep their
// original order.
func SortByPopularity(people []Person) []Person {
	out := slices.Clone(people)
	slices.SortStableFunc(out, func(a, b Person) int {
		switch {
		case a.Popularity <= 0 && b.Popularity <= 0:
			return 0
		case a.Popularity <= 0:
			return 1
		case b.Popularity <= 0:
			return -1
		}
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	return out
}

// ImageURL joins an image path onto the CDN base with the given size.
// An empty path yields "".
func ImageURL(base, size, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if base == "" {
		base = DefaultImageBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + size + "/" + strings.TrimPrefix(path, "/")
}
