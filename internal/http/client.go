package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP operations with tube-clipper specific configuration.
//
// Client provides:
//   - A proxy-aware transport shared with the YouTube client
//   - Configured User-Agent header for plain GET requests
//   - Per-request timeout for small downloads (thumbnails)
//
// Audio streams are long-lived, so the underlying http.Client has no
// overall timeout; cancellation comes from the request context.
//
// Example usage:
//
//	client, err := NewClient(Options{ProxyType: "system"})
//
//	// Fetch a thumbnail
//	data, err := client.Get(ctx, thumbnailURL)
//
//	// Hand the transport to another library
//	yt := &youtube.Client{HTTPClient: client.Standard()}
type Client struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

// Options configures a Client.
type Options struct {
	// ProxyType is one of "none", "system" or "manual".
	ProxyType string

	// ProxyURL is used when ProxyType is "manual", e.g. "http://127.0.0.1:8080".
	ProxyURL string

	// Timeout bounds Get requests. Zero means 60 seconds.
	Timeout time.Duration
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - Proxy selection from Options
//   - 30 second response header timeout
//   - "TubeClipper" User-Agent header for Get
func NewClient(opts Options) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = 30 * time.Second

	switch opts.ProxyType {
	case "none":
		transport.Proxy = nil
	case "manual":
		proxyURL, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url %q: %w", opts.ProxyURL, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	default:
		transport.Proxy = http.ProxyFromEnvironment
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Transport: transport},
		userAgent:  "TubeClipper",
		timeout:    timeout,
	}, nil
}

// Standard returns the underlying *http.Client for libraries that accept one.
func (c *Client) Standard() *http.Client {
	return c.httpClient
}

// ProgressWriter wraps a writer to track download progress.
//
// Use this to monitor large downloads by providing an OnUpdate callback
// that receives the current bytes written and total expected bytes.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    Total:  contentLength,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    },
//	}
//	io.Copy(pw, stream)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (non-positive when unknown).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	// Parameters are (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header and is bounded by
// the client timeout.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
