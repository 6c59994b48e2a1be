package search

import "strconv"

// MaxPage is the highest page number the catalog serves.
const MaxPage = 1000

// NormalizePage parses the leading integer of raw ("12", "+3", "7abc") and
// clamps it with ClampPage. Anything unparsable becomes page 1.
func NormalizePage(raw string) int {
	n, ok := leadingInt(raw)
	if !ok {
		return 1
	}
	return ClampPage(n)
}

// ClampPage returns n when it lies in [1, MaxPage] and 1 otherwise.
func ClampPage(n int) int {
	if n <= 0 || n > MaxPage {
		return 1
	}
	return n
}

func leadingInt(raw string) (int, bool) {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n') {
		i++
	}
	start := i
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	digits := i
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}
	n, err := strconv.Atoi(raw[start:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// PageMetadata is the paging information echoed by a search response.
type PageMetadata struct {
	CurrentPage  int
	TotalPages   int
	TotalResults int
}

// NewPageMetadata sanitizes the raw response values: the current page goes
// through ClampPage, total pages default to 1 and results never go negative.
func NewPageMetadata(page, totalPages, totalResults int) PageMetadata {
	if totalPages < 1 {
		totalPages = 1
	}
	if totalResults < 0 {
		totalResults = 0
	}
	return PageMetadata{
		CurrentPage:  ClampPage(page),
		TotalPages:   totalPages,
		TotalResults: totalResults,
	}
}
