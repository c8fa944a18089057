package release

import (
	"net/http"
	"time"
)

// Release represents a published platform release.
type Release struct {
	Version   string    `json:"tag_name"`
	Assets    []Asset   `json:"assets"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Asset represents a downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Client resolves and downloads platform releases.
type Client struct {
	httpClient *http.Client
	mirror     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(rc *Client) {
		rc.httpClient = c
	}
}

// WithMirror sets a mirror URL; asset download URLs are rewritten to it.
func WithMirror(mirror string) Option {
	return func(rc *Client) {
		rc.mirror = mirror
	}
}

// NewClient creates a release client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
