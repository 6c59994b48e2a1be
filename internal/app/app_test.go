package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cinefind/internal/config"
	"github.com/five82/cinefind/internal/logtail"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/tmdb"
)

func fakeTMDB(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/3/search/tv", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if r.URL.Query().Get("query") == "nothing" {
			_, _ = w.Write([]byte(`{"page":1,"total_pages":0,"total_results":0,"results":[]}`))
			return
		}
		_, _ = fmt.Fprintf(w, `{"page":%s,"total_pages":4,"total_results":70,"results":[{"id":2098,"name":"Batman: The Animated Series","first_air_date":"1992-09-05","vote_average":8.5}]}`, page)
	})
	mux.HandleFunc("/3/movie/550/credits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":550,"cast":[{"name":"Edward Norton","character":"Narrator","popularity":12}],"crew":[{"name":"David Fincher","job":"Director","popularity":5}]}`))
	})
	mux.HandleFunc("/3/movie/404/credits", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testOptions(t *testing.T, baseURL string, extra ...string) (Options, string) {
	t.Helper()
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvAccessToken, "")

	dir := t.TempDir()
	logPath := filepath.Join(dir, "cinefind.log")
	body := fmt.Sprintf("api_key = \"k3y\"\napi_base_url = %q\nlog_file = %q\nlog_level = \"debug\"\n", baseURL, logPath)
	for _, line := range extra {
		body += line + "\n"
	}
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o644))
	return Options{ConfigPath: configPath, PrefsPath: filepath.Join(dir, "prefs.toml")}, logPath
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSearch_PrintsResultPage(t *testing.T) {
	server := fakeTMDB(t)
	opts, _ := testOptions(t, server.URL)

	var out bytes.Buffer
	err := Search(testContext(t), opts, PrintOptions{Out: &out}, search.KindShow, "batman", 2)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, `TV Shows matching "batman": 70 results, page 2 of 4`)
	assert.Contains(t, text, "Batman: The Animated Series (1992)  8.5 / 10")
	assert.Contains(t, text, "credits: credits.html#/tv/2098/batman/Batman:%20The%20Animated%20Series")
	assert.Contains(t, text, "« ‹ 1 [2] 3 4 › »")
}

func TestPrint_NoResults(t *testing.T) {
	server := fakeTMDB(t)
	opts, _ := testOptions(t, server.URL)

	var out bytes.Buffer
	require.NoError(t, Print(testContext(t), opts, PrintOptions{Out: &out}, "#/tv/nothing/1"))
	assert.Contains(t, out.String(), "nothing")
	assert.NotContains(t, out.String(), "«")
}

func TestPrint_EmptyLocationShowsWelcome(t *testing.T) {
	server := fakeTMDB(t)
	opts, _ := testOptions(t, server.URL)

	var out bytes.Buffer
	require.NoError(t, Print(testContext(t), opts, PrintOptions{Out: &out}, "index.html"))
	assert.Contains(t, out.String(), "Search for movies and TV shows")
}

func TestCredits_PrintsCastAndCrew(t *testing.T) {
	server := fakeTMDB(t)
	opts, _ := testOptions(t, server.URL)

	var out bytes.Buffer
	err := Credits(testContext(t), opts, PrintOptions{Out: &out}, search.KindMovie, "550", "Fight Club")
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Credits for Fight Club")
	assert.Contains(t, text, "Edward Norton - Narrator")
	assert.Contains(t, text, "David Fincher - Director")
}

func TestCredits_CollapseModeKeepsTitle(t *testing.T) {
	server := fakeTMDB(t)
	opts, _ := testOptions(t, server.URL, "collapse_empty_slots = true")

	var out bytes.Buffer
	err := Credits(testContext(t), opts, PrintOptions{Out: &out}, search.KindMovie, "550", "Fight Club")
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Credits for Fight Club")
	assert.Contains(t, text, "Edward Norton - Narrator")
}

func TestCredits_TransportErrorIsReturned(t *testing.T) {
	server := fakeTMDB(t)
	opts, _ := testOptions(t, server.URL)

	var out bytes.Buffer
	err := Credits(testContext(t), opts, PrintOptions{Out: &out}, search.KindMovie, "404", "")
	var te *tmdb.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusNotFound, te.StatusCode)
	assert.Contains(t, out.String(), "could not be found")
}

func TestPrint_UnknownPageFails(t *testing.T) {
	server := fakeTMDB(t)
	opts, _ := testOptions(t, server.URL)

	var out bytes.Buffer
	err := Print(testContext(t), opts, PrintOptions{Out: &out}, "about.html#/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "about.html")
}

func TestSetup_MissingCredentialsIsConfigError(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvAccessToken, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("language = \"de-DE\"\n"), 0o644))

	err := Print(context.Background(), Options{ConfigPath: path}, PrintOptions{Out: &bytes.Buffer{}}, "#/tv/x/1")
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.ErrorIs(t, err, config.ErrMissingCredentials)
}

func TestLogs_TracesRequest(t *testing.T) {
	server := fakeTMDB(t)
	opts, logPath := testOptions(t, server.URL)

	require.NoError(t, Search(testContext(t), opts, PrintOptions{Out: &bytes.Buffer{}}, search.KindShow, "batman", 1))
	_, err := os.Stat(logPath)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Logs(opts, &out, 0, logtail.Filter{MinLevel: slog.LevelInfo, HasLevel: true}))
	assert.Contains(t, out.String(), `msg="request issued"`)
	assert.NotContains(t, out.String(), "level=DEBUG")
}
