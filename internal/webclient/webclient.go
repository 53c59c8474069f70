// Package webclient builds the HTTP clients used by the network-backed tools.
package webclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// DefaultUserAgent identifies hyprkit to upstream services.
const DefaultUserAgent = "hyprkit/1.0 (+https://github.com/Tiliavir/hyprkit)"

// Options configures New.
type Options struct {
	// Timeout bounds every request; zero means no timeout.
	Timeout time.Duration
	// Token, when set, is sent as a bearer token. Used for self-hosted API
	// mirrors that sit behind authentication.
	Token     string
	UserAgent string
}

// New returns an *http.Client with a fixed User-Agent and, if configured, a
// static bearer token.
func New(ctx context.Context, opts Options) *http.Client {
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	var base http.RoundTripper = http.DefaultTransport
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: "Bearer"})
		base = oauth2.NewClient(ctx, ts).Transport
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: &userAgentTransport{base: base, ua: ua},
	}
}

type userAgentTransport struct {
	base http.RoundTripper
	ua   string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.ua)
	}
	return t.base.RoundTrip(req)
}
