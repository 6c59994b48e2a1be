package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"

	"github.com/five82/cinefind/internal/search"
)

// Catalog is the subset of the TMDB API the navigation layer needs.
// It is implemented by *Client and can be faked in tests.
type Catalog interface {
	Search(ctx context.Context, kind search.Kind, query string, page int) (*SearchPage, error)
	Credits(ctx context.Context, kind search.Kind, id string) (*Credits, error)
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// ErrMissingCredentials is returned when neither an API key nor an access
// token is configured.
var ErrMissingCredentials = errors.New("tmdb api key or access token required")

// TransportError is a non-success HTTP response from the API.
type TransportError struct {
	StatusCode int
	Status     string
	Path       string
	Message    string
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Options configure a Client.
type Options struct {
	BaseURL     string
	APIKey      string
	AccessToken string
	Language    string
	Timeout     time.Duration
	// RateLimit is the sustained request rate per second. Zero disables throttling.
	RateLimit float64
	Burst     int
	// Attempts is the total number of tries per request. Only 429 and 5xx
	// responses are retried. Values below 1 mean a single attempt.
	Attempts   uint
	RetryDelay time.Duration
	UserAgent  string
	Logger     *slog.Logger
	HTTPClient *http.Client
}

// Client talks to the TMDB v3 HTTP API.
type Client struct {
	baseURL     *url.URL
	http        *http.Client
	apiKey      string
	accessToken string
	language    string
	userAgent   string
	limiter     *rate.Limiter
	attempts    uint
	retryDelay  time.Duration
	logger      *slog.Logger
}

const (
	DefaultBaseURL    = "https://api.themoviedb.org"
	defaultUserAgent  = "cinefind/0.1"
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
)

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	token := strings.TrimSpace(opts.AccessToken)
	if apiKey == "" && token == "" {
		return nil, ErrMissingCredentials
	}
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}
	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:     base,
		http:        httpClient,
		apiKey:      apiKey,
		accessToken: token,
		language:    strings.TrimSpace(opts.Language),
		userAgent:   userAgent,
		limiter:     limiter,
		attempts:    attempts,
		retryDelay:  retryDelay,
		logger:      logger,
	}, nil
}

// Search runs a keyword search against the movie or tv partition.
func (c *Client) Search(ctx context.Context, kind search.Kind, query string, page int) (*SearchPage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	segment, err := kindSegment(kind)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query required")
	}

	values := url.Values{}
	values.Set("query", query)
	values.Set("page", strconv.Itoa(search.ClampPage(page)))
	rel := &url.URL{Path: "/3/search/" + segment, RawQuery: values.Encode()}

	var payload SearchPage
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Credits fetches the cast and crew of a movie or show.
func (c *Client) Credits(ctx context.Context, kind search.Kind, id string) (*Credits, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	segment, err := kindSegment(kind)
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("title id required")
	}

	rel := &url.URL{Path: "/3/" + segment + "/" + url.PathEscape(id) + "/credits"}
	var payload Credits
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) doURL(ctx context.Context, rel *url.URL, dest any) error {
	return retry.Do(
		func() error { return c.once(ctx, rel, dest) },
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("retrying catalog request", "path", rel.Path, "attempt", n+1, "error", err)
		}),
	)
}

func (c *Client) once(ctx context.Context, rel *url.URL, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for rate limit: %w", err)
		}
	}

	reqURL := c.baseURL.ResolveReference(rel)
	query := reqURL.Query()
	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}
	if c.language != "" {
		query.Set("language", c.language)
	}
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("catalog response", "path", rel.Path, "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newTransportError(rel.Path, resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newTransportError(path string, resp *http.Response) *TransportError {
	status := http.StatusText(resp.StatusCode)
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		status = text
	}
	te := &TransportError{StatusCode: resp.StatusCode, Status: status, Path: path}

	var body struct {
		StatusMessage string `json:"status_message"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && json.Unmarshal(raw, &body) == nil {
		te.Message = strings.TrimSpace(body.StatusMessage)
	}
	return te
}

func isRetryable(err error) bool {
	var te *TransportError
	if !errors.As(err, &te) {
		return false
	}
	return te.StatusCode == http.StatusTooManyRequests || te.StatusCode >= 500
}

func kindSegment(kind search.Kind) (string, error) {
	switch kind {
	case search.KindMovie, search.KindShow:
		return kind.String(), nil
	default:
		return "", fmt.Errorf("unsupported catalog kind %d", kind)
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
