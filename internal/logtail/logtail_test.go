package logtail

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cinefind.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestRead_TailWindow(t *testing.T) {
	var all []string
	for i := 1; i <= 10; i++ {
		all = append(all, fmt.Sprintf("Line %d", i))
	}
	path := writeLog(t, all)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, all},
		{"read all (negative)", -1, all},
		{"read partial (5)", 5, all[5:]},
		{"read exactly all (10)", 10, all},
		{"read more than exists (20)", 20, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Read(path, tt.maxLines, Filter{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10, Filter{})
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestRead_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	lines, err := Read(path, 10, Filter{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

var records = []string{
	`time=2026-10-19T10:00:00.000Z level=INFO msg="request issued" view=main request_id=req-1 keyword="the batman"`,
	`time=2026-10-19T10:00:00.100Z level=DEBUG msg="catalog request" path=/3/search/tv`,
	`time=2026-10-19T10:00:01.000Z level=WARN msg="catalog request failed" request_id=req-1 error="api /3/search/tv returned status 503"`,
	`time=2026-10-19T10:00:02.000Z level=INFO msg="request issued" view=main request_id=req-2`,
	`time=2026-10-19T10:00:03.000Z level=ERROR msg="refusing request" error="unexpected state"`,
}

func TestRead_FiltersByLevel(t *testing.T) {
	path := writeLog(t, records)

	lines, err := Read(path, 0, Filter{MinLevel: slog.LevelWarn, HasLevel: true})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "catalog request failed")
	assert.Contains(t, lines[1], "refusing request")
}

func TestRead_FiltersByRequestAndKeepsTail(t *testing.T) {
	path := writeLog(t, records)

	lines, err := Read(path, 1, Filter{RequestID: "req-1"})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "level=WARN")
}

func TestField(t *testing.T) {
	line := records[0]
	assert.Equal(t, "INFO", field(line, "level"))
	assert.Equal(t, "req-1", field(line, "request_id"))
	assert.Equal(t, "the batman", field(line, "keyword"))
	assert.Equal(t, "request issued", field(line, "msg"))
	assert.Empty(t, field(line, "id"), "key must match a whole attribute name")
	assert.Empty(t, field(line, "missing"))
}

func TestFilter_LinesWithoutLevelPass(t *testing.T) {
	f := Filter{MinLevel: slog.LevelError, HasLevel: true}
	assert.True(t, f.Match("    continuation"))
	assert.False(t, f.Match("level=INFO msg=x"))
}
