// Package app wires the webclient, document parser, analyzer catalog and
// score calculator into the single Analyze entry point the HTTP surface
// exposes.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/seolens/seolens/internal/analyzer"
	"github.com/seolens/seolens/internal/document"
	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/webclient"
)

// ErrInvalidURL marks client-side input errors: the URL is missing, not
// absolute, or not http(s). The HTTP layer maps it to a 400.
var ErrInvalidURL = errors.New("invalid url")

// ErrFetchFailed marks a page fetch that could not produce HTML to analyze:
// network failure or a non-2xx response. Terminal for the run.
var ErrFetchFailed = errors.New("fetch failed")

// Envelope is the top-level analysis response.
type Envelope struct {
	Status              string            `json:"status"`
	URL                 string            `json:"url"`
	AnalysisTimeSeconds float64           `json:"analysis_time_seconds"`
	Report              *analyzer.Report  `json:"seo_analysis_data"`
	Score               *analyzer.Summary `json:"seo_score"`
}

// App owns the analysis pipeline. One App serves all requests; per-request
// state lives in the document context.
type App struct {
	cfg      *Config
	wc       webclient.WebClient
	analyzer *analyzer.Analyzer
	logger   logging.Logger
}

func New(cfg *Config, logger logging.Logger) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	wc, err := webclient.New(cfg.WebClient, logger)
	if err != nil {
		return nil, fmt.Errorf("create web client: %w", err)
	}

	return &App{
		cfg:      cfg,
		wc:       wc,
		analyzer: analyzer.New(cfg.Analyzer, wc, logger),
		logger:   logger.With(logging.Field{Key: "component", Value: "app"}),
	}, nil
}

// Close releases the underlying web client.
func (a *App) Close() error { return a.wc.Close() }

// WebClient exposes the shared client for siblings (scraper) that reuse it.
func (a *App) WebClient() webclient.WebClient { return a.wc }

// ValidateURL rejects anything that is not an absolute http(s) URL with a
// host.
func ValidateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: url parameter is required", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

// Analyze fetches the page, runs the full check catalog and returns the
// response envelope. The optional progress callback receives each check
// result as it completes.
func (a *App) Analyze(ctx context.Context, rawURL string, progress analyzer.ProgressFunc) (*Envelope, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	start := time.Now()

	resp, err := a.wc.Get(ctx, rawURL)
	if err != nil {
		a.logger.Warn("page fetch failed",
			logging.Field{Key: "url", Value: rawURL},
			logging.Field{Key: "error", Value: err.Error()})
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: page returned status %d", ErrFetchFailed, resp.StatusCode)
	}

	doc, err := document.New(resp.Body, resp.FinalURL, resp.Headers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	report := a.analyzer.Analyze(ctx, doc, progress)
	summary := analyzer.Summarize(report)
	elapsed := time.Since(start).Seconds()

	a.logger.Info("analysis finished",
		logging.Field{Key: "url", Value: rawURL},
		logging.Field{Key: "final_url", Value: resp.FinalURL},
		logging.Field{Key: "score", Value: summary.Score},
		logging.Field{Key: "seconds", Value: elapsed})

	return &Envelope{
		Status:              "success",
		URL:                 rawURL,
		AnalysisTimeSeconds: elapsed,
		Report:              report,
		Score:               summary,
	}, nil
}
