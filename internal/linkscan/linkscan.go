// Package linkscan resolves and classifies anchor targets on a page and
// probes a capped subset for liveness. It is the only part of the analysis
// with nontrivial network fan-out, so probing runs through a bounded worker
// pool and every probe is final after one HEAD-then-GET attempt.
package linkscan

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/seolens/seolens/internal/document"
	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/urlutil"
	"github.com/seolens/seolens/internal/webclient"
)

// BrokenLink records a probe failure together with the anchor text it was
// found under, for report evidence.
type BrokenLink struct {
	URL        string `json:"url"`
	AnchorText string `json:"anchor_text"`
}

// Result is the scanner's aggregate view of a page's anchors.
type Result struct {
	Internal       int          `json:"internal"`
	External       int          `json:"external"`
	Broken         int          `json:"broken"`
	BrokenExamples []BrokenLink `json:"broken_examples,omitempty"`
	InternalPct    float64      `json:"internal_pct"`
	ExternalPct    float64      `json:"external_pct"`
	BrokenPct      float64      `json:"broken_pct"`
}

// Total is internal + external + broken.
func (r *Result) Total() int { return r.Internal + r.External + r.Broken }

// InternalRatio is internal / total, 0 when the page has no usable links.
func (r *Result) InternalRatio() float64 {
	if t := r.Total(); t > 0 {
		return float64(r.Internal) / float64(t)
	}
	return 0
}

type candidate struct {
	url        string
	anchorText string
	internal   bool
	broken     bool
}

// Scanner probes anchor targets through the shared webclient.
type Scanner struct {
	cfg    *Config
	wc     webclient.WebClient
	logger logging.Logger
}

func NewScanner(cfg *Config, wc webclient.WebClient, logger logging.Logger) *Scanner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Scanner{
		cfg:    cfg,
		wc:     wc,
		logger: logger.With(logging.Field{Key: "component", Value: "linkscan"}),
	}
}

// skippedPrefixes are href values that never resolve to a probeable page.
var skippedPrefixes = []string{"#", "mailto:", "tel:", "javascript:"}

func skippable(href string) bool {
	if href == "" {
		return true
	}
	lower := strings.ToLower(href)
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// Scan collects, resolves and classifies all anchors in doc, probes at most
// the first ProbeLimit of them for liveness, and returns aggregate counts.
// Targets beyond the cap are trusted as valid without probing.
func (s *Scanner) Scan(ctx context.Context, doc *document.Context) *Result {
	base := &urlutil.URLTools{URL: doc.FinalURL}

	var candidates []*candidate
	doc.Doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if skippable(href) {
			return
		}
		resolved, err := base.Resolve(href)
		if err != nil {
			return
		}
		target, err := urlutil.New(resolved)
		if err != nil {
			return
		}
		candidates = append(candidates, &candidate{
			url:        resolved,
			anchorText: strings.TrimSpace(sel.Text()),
			internal:   base.SameHost(target),
		})
	})

	s.probe(ctx, candidates)

	res := &Result{}
	for _, c := range candidates {
		switch {
		case c.broken:
			res.Broken++
			if len(res.BrokenExamples) < s.cfg.MaxBrokenExamples {
				res.BrokenExamples = append(res.BrokenExamples, BrokenLink{URL: c.url, AnchorText: c.anchorText})
			}
		case c.internal:
			res.Internal++
		default:
			res.External++
		}
	}
	if total := res.Total(); total > 0 {
		res.InternalPct = 100 * float64(res.Internal) / float64(total)
		res.ExternalPct = 100 * float64(res.External) / float64(total)
		res.BrokenPct = 100 * float64(res.Broken) / float64(total)
	}

	s.logger.Debug("link scan finished",
		logging.Field{Key: "internal", Value: res.Internal},
		logging.Field{Key: "external", Value: res.External},
		logging.Field{Key: "broken", Value: res.Broken})

	return res
}

// probe marks the first ProbeLimit candidates broken or alive via a bounded
// worker pool. One HEAD attempt with a GET fallback; no retries beyond that.
func (s *Scanner) probe(ctx context.Context, candidates []*candidate) {
	limit := min(len(candidates), s.cfg.ProbeLimit)
	if limit == 0 {
		return
	}

	jobs := make(chan *candidate, limit)
	var wg sync.WaitGroup

	workers := min(limit, s.cfg.Workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				c.broken = s.isBroken(ctx, c.url)
			}
		}()
	}

	for _, c := range candidates[:limit] {
		jobs <- c
	}
	close(jobs)
	wg.Wait()
}

// isBroken reports whether url fails both a HEAD probe and the GET fallback.
func (s *Scanner) isBroken(ctx context.Context, url string) bool {
	resp, err := s.wc.Do(ctx, &webclient.Request{Method: http.MethodHead, URL: url})
	if err == nil && resp.StatusCode < 400 {
		return false
	}

	resp, err = s.wc.Get(ctx, url)
	if err != nil {
		// Only count as broken when the failure wasn't our own cancellation.
		return ctx.Err() == nil
	}
	return resp.StatusCode >= 400
}
