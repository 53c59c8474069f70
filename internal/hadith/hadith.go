// Package hadith fetches a hadith page from sunnah.com and extracts its
// English text and reference.
package hadith

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Tiliavir/hyprkit/internal/webclient"
)

const (
	DefaultBaseURL    = "https://sunnah.com"
	DefaultCollection = "bukhari"
	// DefaultMaxNumber is the last hadith number in Sahih al-Bukhari.
	DefaultMaxNumber = 7563
	defaultTimeout   = 30 * time.Second
)

// ErrNotFound is returned when the page has no English hadith block.
var ErrNotFound = errors.New("could not find hadith content")

// Hadith is one parsed hadith.
type Hadith struct {
	Collection string
	Number     int
	Narrator   string
	Text       string
	Reference  string
	URL        string
}

// String renders the hadith as plain text: narrator, body, then the
// reference separated by a blank line.
func (h Hadith) String() string {
	var b strings.Builder
	if h.Narrator != "" {
		b.WriteString(h.Narrator)
		b.WriteString("\n")
	}
	b.WriteString(h.Text)
	if h.Reference != "" {
		b.WriteString("\n\n")
		b.WriteString(h.Reference)
	}
	return b.String()
}

// Markdown renders the hadith for a markdown renderer.
func (h Hadith) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %d\n\n", title(h.Collection), h.Number)
	if h.Narrator != "" {
		fmt.Fprintf(&b, "**%s**\n\n", h.Narrator)
	}
	for _, para := range strings.Split(strings.TrimSpace(h.Text), "\n") {
		if para = strings.TrimSpace(para); para != "" {
			b.WriteString(para)
			b.WriteString("\n\n")
		}
	}
	if h.Reference != "" {
		fmt.Fprintf(&b, "*%s*\n", h.Reference)
	}
	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RandomNumber picks a hadith number in [1, limit].
func RandomNumber(r *rand.Rand, limit int) int {
	if limit < 1 {
		limit = DefaultMaxNumber
	}
	return r.IntN(limit) + 1
}

// Client fetches hadith pages.
type Client struct {
	baseURL    string
	collection string
	httpClient *http.Client
}

// Options configures NewClient.
type Options struct {
	BaseURL    string
	Collection string
	Timeout    time.Duration
}

// NewClient creates a Client.
func NewClient(ctx context.Context, opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	collection := opts.Collection
	if collection == "" {
		collection = DefaultCollection
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		collection: collection,
		httpClient: webclient.New(ctx, webclient.Options{Timeout: timeout}),
	}
}

// URL returns the page URL for hadith n.
func (c *Client) URL(n int) string {
	return c.baseURL + "/" + c.collection + ":" + strconv.Itoa(n)
}

// Fetch downloads and parses hadith n. One request, no retry.
func (c *Client) Fetch(ctx context.Context, n int) (Hadith, error) {
	u := c.URL(n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Hadith{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Hadith{}, &ConnectionError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Hadith{}, &ConnectionError{URL: u, Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	h, err := Parse(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return Hadith{}, err
	}
	h.Collection = c.collection
	h.Number = n
	h.URL = u
	return h, nil
}

// ConnectionError wraps transport failures and bad HTTP statuses, which the
// UI reports differently from parse failures.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
