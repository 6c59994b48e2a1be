package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which overviews are hidden.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the width from which image URLs are shown.
	LayoutWideWidth = 140
)

// Fixed rows around the content pane: header, location bar, pagination
// bar and command bar.
const chromeRows = 4

// cardRows is the height of one result card: title line, overview line
// and a spacer.
const cardRows = 3

// searchCharLimit bounds the keyword input.
const searchCharLimit = 120
