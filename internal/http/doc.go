// Package http provides the HTTP client shared by the YouTube fetcher and
// the download executor.
//
// The Client in this package handles:
//   - Proxy selection (none, system environment, manual address)
//   - User-Agent headers for plain GET requests
//   - Timeouts for small downloads
//
// # Basic Usage
//
//	client, err := http.NewClient(http.Options{ProxyType: "system"})
//
//	// Fetch a thumbnail
//	data, err := client.Get(ctx, "https://i.ytimg.com/vi/ID/maxresdefault.jpg")
//
//	// Share the transport
//	yt := &youtube.Client{HTTPClient: client.Standard()}
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
