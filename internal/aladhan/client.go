// Package aladhan fetches daily prayer timings from the Aladhan API.
package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Tiliavir/hyprkit/internal/model"
	"github.com/Tiliavir/hyprkit/internal/webclient"
)

const (
	// DefaultBaseURL is the public Aladhan endpoint.
	DefaultBaseURL = "http://api.aladhan.com"
	// DefaultTimeout bounds the single live fetch.
	DefaultTimeout = 5 * time.Second
)

// ErrBadPayload is returned when the response decodes but does not carry a
// usable schedule.
var ErrBadPayload = errors.New("unexpected aladhan payload")

// Query selects the location and calculation method.
type Query struct {
	City    string
	Country string
	// Method is the Aladhan calculation method id (3 = Muslim World League).
	Method int
	// School is 0 for Shafi'i, 1 for Hanafi.
	School int
}

// Client fetches timings for a fixed Query.
type Client struct {
	baseURL    string
	query      Query
	httpClient *http.Client
}

// Options configures NewClient.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Token   string
}

// NewClient creates a client for q.
func NewClient(ctx context.Context, q Query, opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		query:      q,
		httpClient: webclient.New(ctx, webclient.Options{Timeout: timeout, Token: opts.Token}),
	}
}

// Endpoint returns the timingsByCity URL for the client's query.
func (c *Client) Endpoint() string {
	v := url.Values{}
	v.Set("city", c.query.City)
	v.Set("country", c.query.Country)
	v.Set("method", strconv.Itoa(c.query.Method))
	v.Set("school", strconv.Itoa(c.query.School))
	return c.baseURL + "/v1/timingsByCity?" + v.Encode()
}

// Fetch performs one request and returns today's schedule. Any transport
// error, non-200 status, malformed body or payload code other than 200 is
// returned as an error; no retry is attempted.
func (c *Client) Fetch(ctx context.Context) (model.Schedule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(), nil)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("aladhan request failed: %w", err)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
	if err != nil {
		return model.Schedule{}, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return model.Schedule{}, fmt.Errorf("aladhan API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return Decode(body)
}

// Decode parses an Aladhan timings response.
func Decode(body []byte) (model.Schedule, error) {
	// Error payloads carry a string in "data", so check the code first.
	var head struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return model.Schedule{}, fmt.Errorf("decoding aladhan response: %w", err)
	}
	if head.Code != http.StatusOK {
		return model.Schedule{}, fmt.Errorf("%w: code %d (%s)", ErrBadPayload, head.Code, head.Status)
	}

	var env model.TimingsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return model.Schedule{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	s, err := model.ScheduleFromTimings(env.Data.Timings, env.Data.Date.Readable)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return s, nil
}
