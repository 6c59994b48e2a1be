package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/five82/cinefind/internal/location"
	"github.com/five82/cinefind/internal/nav"
	"github.com/five82/cinefind/internal/pagination"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/tmdb"
)

var _ nav.Renderer = (*Writer)(nil)

// WelcomeText is shown for a page opened without arguments.
const WelcomeText = "Search for movies and TV shows by keyword."

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 80

// WriterOptions configure a Writer.
type WriterOptions struct {
	Codec     location.Codec
	ImageBase string
	Width     int
	// ShowImages prints poster and profile URLs.
	ShowImages bool
}

// Writer renders controller output as plain text.
type Writer struct {
	mu   sync.Mutex
	out  io.Writer
	opts WriterOptions

	failure  error
	writeErr error
}

// NewWriter returns a Writer printing to out.
func NewWriter(out io.Writer, opts WriterOptions) *Writer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Writer{out: out, opts: opts}
}

// Failure returns the last error rendered through Error, if any.
func (w *Writer) Failure() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failure
}

// WriteErr returns the first error from the underlying writer.
func (w *Writer) WriteErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeErr
}

func (w *Writer) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.failure = nil
}

func (w *Writer) Welcome() {
	w.println(WelcomeText)
}

func (w *Writer) Message(text string) {
	w.println(text)
}

func (w *Writer) Error(err error) {
	w.mu.Lock()
	w.failure = err
	w.mu.Unlock()
	w.println("error: " + err.Error())
}

// SyncForm has no form to update on a plain writer.
func (w *Writer) SyncForm(search.Kind, string) {}

func (w *Writer) Entities(req search.Request, results []tmdb.Title, meta search.PageMetadata, window pagination.Window) {
	var b strings.Builder
	b.WriteString(HeadingLine(req, meta))
	b.WriteString("\n\n")

	indent := "     "
	for i, card := range TitleCards(w.opts.Codec, w.opts.ImageBase, req, results) {
		heading := card.Heading
		if card.Year != "" {
			heading += " (" + card.Year + ")"
		}
		fmt.Fprintf(&b, "%3d. %s  %s\n", i+1, heading, card.Rating)
		for _, line := range Wrap(card.Overview, w.opts.Width-len(indent)) {
			b.WriteString(indent + line + "\n")
		}
		if w.opts.ShowImages {
			b.WriteString(indent + "poster: " + card.Image + "\n")
		}
		b.WriteString(indent + "credits: " + card.Credits.String() + "\n\n")
	}
	b.WriteString(PaginationLine(window))
	w.println(b.String())
}

func (w *Writer) Credits(_ search.Request, title string, cast, crew []tmdb.Person) {
	var b strings.Builder
	if title == "" {
		title = "selected title"
	}
	b.WriteString("Credits for " + title + "\n")
	w.writePeople(&b, "Cast", PersonCards(w.opts.ImageBase, cast))
	w.writePeople(&b, "Crew", PersonCards(w.opts.ImageBase, crew))
	w.println(strings.TrimRight(b.String(), "\n"))
}

func (w *Writer) writePeople(b *strings.Builder, heading string, cards []PersonCard) {
	if len(cards) == 0 {
		return
	}
	b.WriteString("\n" + heading + "\n")
	for _, card := range cards {
		line := "  " + Truncate(card.Name, w.opts.Width/2)
		if card.Role != "" {
			line += " - " + card.Role
		}
		b.WriteString(Truncate(line, w.opts.Width) + "\n")
		if w.opts.ShowImages {
			b.WriteString("    " + card.Image + "\n")
		}
	}
}

func (w *Writer) println(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.writeErr != nil {
		return
	}
	if _, err := io.WriteString(w.out, s+"\n"); err != nil {
		w.writeErr = err
	}
}
