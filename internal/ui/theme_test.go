package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cinefind/internal/search"
)

func TestThemesHaveCompletePalettes(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		require.Equal(t, name, th.Name)

		colors := map[string]string{
			"Background":    th.Background,
			"Surface":       th.Surface,
			"SurfaceAlt":    th.SurfaceAlt,
			"FocusBg":       th.FocusBg,
			"SelectionBg":   th.SelectionBg,
			"SelectionText": th.SelectionText,
			"Text":          th.Text,
			"Muted":         th.Muted,
			"Faint":         th.Faint,
			"Accent":        th.Accent,
			"Warning":       th.Warning,
			"Danger":        th.Danger,
			"Info":          th.Info,
			"MovieColor":    th.MovieColor,
			"ShowColor":     th.ShowColor,
		}
		for field, value := range colors {
			assert.NotEmpty(t, value, "%s.%s", name, field)
		}
	}
}

func TestGetThemeFallsBackToDracula(t *testing.T) {
	assert.Equal(t, "Dracula", GetTheme("Unknown").Name)
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	name := names[0]
	for range names {
		name = NextTheme(name)
	}
	assert.Equal(t, names[0], name)
	assert.Equal(t, names[0], NextTheme("nope"))
}

func TestKindBadgeUsesKindColor(t *testing.T) {
	styles := GetTheme("Dracula").Styles()
	movie := styles.KindBadge(search.KindMovie).GetBackground()
	show := styles.KindBadge(search.KindShow).GetBackground()
	assert.NotEqual(t, movie, show)
}
