package monitor

import (
	"fmt"
	"log/slog"

	"github.com/handiism/tube-clipper/internal/clipboard"
	"github.com/handiism/tube-clipper/internal/config"
	"github.com/handiism/tube-clipper/internal/download"
	"github.com/handiism/tube-clipper/internal/history"
	"github.com/handiism/tube-clipper/internal/http"
	"github.com/handiism/tube-clipper/internal/youtube"
)

// NewFromSettings wires a Loop with the YouTube fetcher, the disk executor
// and an empty history, all sharing one proxy-aware HTTP client.
func NewFromSettings(settings *config.Settings, source clipboard.Source, logger *slog.Logger) (*Loop, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	httpClient, err := http.NewClient(http.Options{
		ProxyType: settings.ProxyType,
		ProxyURL:  settings.ProxyURL(),
	})
	if err != nil {
		return nil, err
	}

	fetcher := youtube.NewFetcher(httpClient.Standard())
	executor := download.NewExecutor(settings, httpClient, logger)

	return New(settings, source, fetcher, executor, history.NewLedger(), logger), nil
}
