// Package analyzer implements the rule-based page-analysis engine: a fixed
// catalog of independent heuristic checks that each consume the shared
// document context and return a uniform CheckResult, plus the aggregator and
// score calculator that reduce the catalog's output into a report.
package analyzer

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/seolens/seolens/internal/document"
	"github.com/seolens/seolens/internal/linkscan"
	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/webclient"
)

// CheckFunc produces one CheckResult from the shared document context.
// Implementations must not mutate the context. Checks that make auxiliary
// network requests handle their own failures and map them into the check's
// passed/warning/failed semantics.
type CheckFunc func(ctx context.Context, doc *document.Context) *CheckResult

// Check pairs a fixed report key with the function that computes it.
type Check struct {
	Name string
	Run  CheckFunc
}

// Analyzer owns the check catalog. Checks that need network access share the
// injected webclient; DOM-only checks are pure functions of the context.
type Analyzer struct {
	cfg     *Config
	wc      webclient.WebClient
	scanner *linkscan.Scanner
	logger  logging.Logger
}

func New(cfg *Config, wc webclient.WebClient, logger logging.Logger) *Analyzer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Analyzer{
		cfg:     cfg,
		wc:      wc,
		scanner: linkscan.NewScanner(linkscan.DefaultConfig(), wc, logger),
		logger:  logger.With(logging.Field{Key: "component", Value: "analyzer"}),
	}
}

// Checks returns the fixed, ordered check catalog. Report keys, not order,
// identify results; the order only determines progress-event sequence.
func (a *Analyzer) Checks() []Check {
	return []Check{
		{"title", a.checkTitle},
		{"meta_description", a.checkMetaDescription},
		{"h1_tags", a.checkH1s},
		{"heading_structure", a.checkHeadingStructure},
		{"images", a.checkImages},
		{"lazy_loading", a.checkLazyLoading},
		{"links", a.checkLinks},
		{"canonical_url", a.checkCanonical},
		{"noindex_meta", a.checkNoindex},
		{"opengraph", a.checkOpenGraph},
		{"robots_txt", a.checkRobotsTxt},
		{"schema_org", a.checkSchemaOrg},
		{"favicon_present", a.checkFavicon},
		{"amp_page", a.checkAMP},
		{"http_to_https_redirect", a.checkHTTPRedirect},
		{"custom_404_page", a.checkCustom404},
		{"text_compression", a.checkTextCompression},
		{"viewport_meta", a.checkViewportMeta},
		{"social_meta", a.checkSocialMeta},
		{"iframe_count", a.checkIframeUsage},
		{"html_size", a.checkHTMLSize},
		{"minified_css", a.checkMinifiedCSS},
		{"minified_js", a.checkMinifiedJS},
		{"secure_connection", a.checkSecureConnection},
		{"url_structure", a.checkURLStructure},
		{"page_speed", a.checkPageSpeed},
	}
}

// renderTag serializes a selection's first node back to markup. Evidence
// strings are collapsed to one line and truncated the same way everywhere.
func renderTag(sel *goquery.Selection) string {
	htm, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(htm)
}

// truncateRunes cuts s to at most limit characters, never splitting a rune,
// and appends a marker when anything was dropped.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// summarize truncates evidence to 100 characters with a trailing marker,
// newlines collapsed.
func summarize(s string) string {
	return truncateRunes(strings.ReplaceAll(s, "\n", ""), 100)
}

// capExamples keeps the first max entries and appends a truncation marker
// when more existed.
func capExamples(items []string, max int) []string {
	if len(items) <= max {
		return items
	}
	out := make([]string, max, max+1)
	copy(out, items[:max])
	return append(out, "...and more")
}
