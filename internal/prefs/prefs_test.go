package prefs

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "cinefind")
	require.NoError(t, os.MkdirAll(prefsDir, 0o755))
	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	require.NoError(t, os.WriteFile(prefsFile, []byte("theme = \"Slate\"\ndefault_kind = \"MOVIE\"\n"), 0o644))

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Prefs{Theme: "Slate", DefaultKind: "movie"}, p)
}

func TestLoad_UnknownKindFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(prefsFile, []byte("default_kind = \"person\"\n"), 0o644))

	p, err := Load(prefsFile)
	require.NoError(t, err)
	assert.Equal(t, defaultKind, p.DefaultKind)
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	require.NoError(t, Save(prefsFile, Prefs{Theme: "Slate", DefaultKind: "movie"}))

	loaded, err := Load(prefsFile)
	require.NoError(t, err)
	assert.Equal(t, "Slate", loaded.Theme)
	assert.Equal(t, "movie", loaded.DefaultKind)

	entries, err := os.ReadDir(filepath.Dir(prefsFile))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".prefs-", "temp file left behind")
	}
}

func TestSave_ConcurrentWritersLeaveValidFile(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	themes := []string{"Dracula", "Slate"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, Save(prefsFile, Prefs{Theme: themes[i%2], DefaultKind: "tv"}))
		}(i)
	}
	wg.Wait()

	loaded, err := Load(prefsFile)
	require.NoError(t, err)
	assert.Contains(t, themes, loaded.Theme)
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(prefsFile, []byte("theme = \"\"\n"), 0o644))

	p, err := Load(prefsFile)
	require.NoError(t, err)
	assert.Equal(t, defaultTheme, p.Theme)
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644))

	p, err := Load(prefsFile)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)
}
