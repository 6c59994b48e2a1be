package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cinefind/internal/render"
)

// contentHeaderRows precede the first card: heading line and a spacer.
const contentHeaderRows = 2

// renderHeader renders the logo, the kind selector and the keyword input.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Sep(" │ ")

	parts := []string{
		bg.Render("cinefind", styles.Logo),
		styles.KindBadge(m.kind).Render(m.kind.Label()),
	}

	input := m.keyword.View()
	if m.focus == focusSearch {
		input = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg)).Render(input)
	} else if m.keyword.Value() == "" {
		input = bg.Render("press / to search", styles.FaintText)
	}
	parts = append(parts, input)

	if m.loading {
		parts = append(parts, bg.Render(m.spinner.View()+" Loading", styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderLocationBar shows the active history entry or the location input.
func (m Model) renderLocationBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	label := bg.Render("location", styles.FaintText) + bg.Spaces(1)
	if m.focus == focusLocation {
		return bg.FillLine(label+m.location.View(), m.width)
	}

	current := ""
	if loc, ok := m.session.Current(); ok {
		current = loc.String()
	}
	history := m.session.History().Snapshot()
	arrows := ""
	if history.CanBack() {
		arrows += "‹"
	}
	if history.CanForward() {
		arrows += "›"
	}
	line := label + bg.Render(render.Truncate(current, max(m.width-14, 10)), styles.MutedText)
	if arrows != "" {
		line += bg.Spaces(1) + bg.Render(arrows, styles.AccentText)
	}
	return bg.FillLine(line, m.width)
}

// renderContent renders the result pane for the current screen mode.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	scr := m.screen

	switch scr.mode {
	case modeWelcome:
		return styles.MutedText.Render(render.WelcomeText)
	case modeMessage:
		return styles.InfoText.Render(scr.text)
	case modeError:
		return styles.DangerText.Render("Error: " + scr.err.Error())
	case modeEntities:
		return m.renderEntities()
	case modeCredits:
		return m.renderCredits()
	default:
		return ""
	}
}

func (m Model) renderEntities() string {
	styles := m.theme.Styles()
	scr := m.screen
	compact := m.width < LayoutCompactWidth
	wide := m.width >= LayoutWideWidth

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(
		render.Truncate(render.HeadingLine(scr.req, scr.meta), m.width)))
	b.WriteString("\n\n")

	cards := render.TitleCards(m.codec, m.imageBase, scr.req, scr.titles)
	for i, card := range cards {
		marker := "  "
		if i == m.selected {
			marker = "› "
		}
		title := card.Heading
		if card.Year != "" {
			title += fmt.Sprintf(" (%s)", card.Year)
		}
		line := marker + render.Truncate(title, max(m.width-20, 10))
		rating := styles.MutedText.Render("  " + card.Rating)

		if i == m.selected {
			b.WriteString(styles.Selected.Render(line) + rating)
		} else {
			b.WriteString(styles.Text.Render(line) + rating)
		}
		b.WriteString("\n")

		detail := ""
		switch {
		case wide:
			detail = render.Truncate(card.Overview, m.width/2) + "  " + card.Image
		case !compact:
			detail = card.Overview
		}
		b.WriteString(styles.FaintText.Render("  " + render.Truncate(detail, max(m.width-4, 10))))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderCredits() string {
	styles := m.theme.Styles()
	scr := m.screen

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Credits for " + scr.creditsTitle))
	b.WriteString("\n")

	sections := []struct {
		heading string
		cards   []render.PersonCard
	}{
		{"Cast", render.PersonCards(m.imageBase, scr.cast)},
		{"Crew", render.PersonCards(m.imageBase, scr.crew)},
	}
	nameWidth := max(m.width/3, 12)
	for _, section := range sections {
		if len(section.cards) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Bold(true).Render(section.heading))
		b.WriteString("\n")
		for _, card := range section.cards {
			name := render.PadRight(render.Truncate(card.Name, nameWidth), nameWidth)
			b.WriteString(styles.Text.Render(name))
			b.WriteString(styles.MutedText.Render("  " + card.Role))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderPaginationBar shows the pagination window of the result page.
func (m Model) renderPaginationBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	w, ok := m.session.Window()
	if !ok || m.screen.mode != modeEntities {
		return bg.FillLine("", m.width)
	}
	return bg.FillLine(bg.Render(render.PaginationLine(w), styles.AccentText), m.width)
}

// renderCommandBar lists the most used key bindings.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	bindings := m.keys.ShortHelp()
	if m.focus != focusResults {
		bindings = append(bindings[:0:0], m.keys.Confirm, m.keys.Cancel)
		if m.focus == focusSearch {
			bindings = append(bindings, m.keys.ToggleKind)
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, bg.Render(h.Key, styles.WarningText)+bg.Spaces(1)+bg.Render(h.Desc, styles.MutedText))
	}
	line := bg.FillLine(strings.Join(parts, bg.Spaces(2)), m.width)
	return lipgloss.NewStyle().MaxHeight(1).Render(line)
}
