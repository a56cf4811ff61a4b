package analyzer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/seolens/seolens/internal/document"
	"github.com/seolens/seolens/internal/urlutil"
)

func (a *Analyzer) checkHTMLSize(_ context.Context, doc *document.Context) *CheckResult {
	sizeKB := float64(len(doc.HTML)) / 1024
	snippet := []string{fmt.Sprintf("HTML Size: %.2f KB", sizeKB)}

	switch {
	case sizeKB < a.cfg.HTMLWarnKB:
		return passed(
			fmt.Sprintf("HTML document size is %.2f KB, well within the recommended limit.", sizeKB),
			snippet,
			"No action needed. Your HTML payload is lean.",
		)
	case sizeKB < a.cfg.HTMLFailKB:
		return warning(
			fmt.Sprintf("HTML document size is %.2f KB, above the recommended %.0f KB.", sizeKB, a.cfg.HTMLWarnKB),
			snippet,
			"Reduce markup bloat: remove inline SVGs and comments, paginate long lists, and move data to API calls.",
		)
	default:
		return failed(
			fmt.Sprintf("HTML document size is %.2f KB, which significantly slows down parsing and rendering.", sizeKB),
			snippet,
			fmt.Sprintf("Cut the document below %.0f KB. Audit for embedded data blobs, inline styles and repeated markup.", a.cfg.HTMLFailKB),
		)
	}
}

// minifiedPattern treats any run of 100+ non-whitespace characters in a URL's
// final path segment as a build-tool fingerprint.
var minifiedPattern = regexp.MustCompile(`\S{100,}`)

func looksMinified(assetURL, ext string) bool {
	return strings.Contains(assetURL, ".min."+ext) || minifiedPattern.MatchString(assetURL)
}

// auditAssets counts how many of the URLs look minified and returns the first
// unminified example.
func auditAssets(urls []string, ext string) (minified int, example string) {
	for _, u := range urls {
		if looksMinified(u, ext) {
			minified++
		} else if example == "" {
			example = u
		}
	}
	return minified, example
}

func (a *Analyzer) assetMinification(urls []string, ext, label string) *CheckResult {
	if len(urls) == 0 {
		return warning(
			fmt.Sprintf("No external %s files found to analyze.", label),
			nil,
			fmt.Sprintf("If your page uses %s, serve it from external files so it can be cached and minified.", label),
		)
	}

	minified, example := auditAssets(urls, ext)
	ratio := float64(minified) / float64(len(urls))
	snippet := []string{fmt.Sprintf("%d of %d %s files appear minified.", minified, len(urls), label)}
	if example != "" {
		snippet = append(snippet, fmt.Sprintf("Unminified example: %s", example))
	}

	switch {
	case ratio == 1:
		return passed(
			fmt.Sprintf("All %d external %s files appear to be minified.", len(urls), label),
			snippet,
			fmt.Sprintf("No action needed. Your %s delivery is optimized.", label),
		)
	case ratio >= a.cfg.MinifyWarnRatio:
		return warning(
			fmt.Sprintf("Some %s files are not minified (%d of %d).", label, len(urls)-minified, len(urls)),
			snippet,
			fmt.Sprintf("Minify the remaining %s files with your build tool to reduce transfer size.", label),
		)
	default:
		return failed(
			fmt.Sprintf("Most %s files are not minified (%d of %d).", label, len(urls)-minified, len(urls)),
			snippet,
			fmt.Sprintf("Add a minification step for %s to your build pipeline (e.g. esbuild, terser, cssnano).", label),
		)
	}
}

func (a *Analyzer) checkMinifiedCSS(_ context.Context, doc *document.Context) *CheckResult {
	var urls []string
	doc.Doc.Find(`link[rel="stylesheet"][href]`).Each(func(_ int, sel *goquery.Selection) {
		if href := strings.TrimSpace(sel.AttrOr("href", "")); href != "" {
			urls = append(urls, href)
		}
	})
	return a.assetMinification(urls, "css", "CSS")
}

func (a *Analyzer) checkMinifiedJS(_ context.Context, doc *document.Context) *CheckResult {
	var urls []string
	doc.Doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		if src := strings.TrimSpace(sel.AttrOr("src", "")); src != "" {
			urls = append(urls, src)
		}
	})
	return a.assetMinification(urls, "js", "JavaScript")
}

func (a *Analyzer) checkSecureConnection(_ context.Context, doc *document.Context) *CheckResult {
	if doc.FinalURL.Scheme == "https" {
		return passed(
			"The page is served over a secure HTTPS connection.",
			[]string{doc.FinalURL.String()},
			"No action needed. Your connection is encrypted.",
		)
	}
	return failed(
		"The page is served over plain HTTP. Browsers mark it as insecure and rankings suffer.",
		[]string{doc.FinalURL.String()},
		"Install a TLS certificate (e.g. via Let's Encrypt) and serve all pages over HTTPS.",
	)
}

var extensionSegment = regexp.MustCompile(`\.[a-z0-9]{2,5}$`)

var numericIDSegment = regexp.MustCompile(`^\d{4,}$`)

// checkURLStructure evaluates the final URL for crawl- and user-unfriendly
// patterns. Any flag demotes to a warning; the check never fails outright
// since URL shape alone does not block indexing.
func (a *Analyzer) checkURLStructure(_ context.Context, doc *document.Context) *CheckResult {
	u := doc.FinalURL
	var flags []string

	if tracking := urlutil.TrackingParams(u); len(tracking) > 0 {
		flags = append(flags, fmt.Sprintf("tracking/session parameters in the URL (%s)", strings.Join(tracking, ", ")))
	}
	if strings.ContainsFunc(u.Path, unicode.IsUpper) {
		flags = append(flags, "uppercase characters in the path")
	}
	if strings.Contains(u.Path, " ") || strings.Contains(u.Path, "%20") {
		flags = append(flags, "spaces in the path")
	}
	if strings.Contains(u.Path, "_") {
		flags = append(flags, "underscores instead of hyphens")
	}

	segments := urlutil.PathSegments(u)
	extCount := 0
	numericIDs := 0
	for _, seg := range segments {
		if extensionSegment.MatchString(strings.ToLower(seg)) {
			extCount++
		}
		if numericIDSegment.MatchString(seg) {
			numericIDs++
		}
	}
	if extCount > 1 {
		flags = append(flags, "multiple file-extension-like segments")
	}
	if numericIDs > 0 {
		flags = append(flags, "opaque numeric ID segments")
	}
	if len(segments) > a.cfg.MaxPathDepth {
		flags = append(flags, fmt.Sprintf("deep nesting (%d path levels, recommended at most %d)", len(segments), a.cfg.MaxPathDepth))
	}

	snippet := []string{u.String()}
	if len(flags) > 0 {
		return warning(
			fmt.Sprintf("URL structure could be improved: %s.", strings.Join(flags, "; ")),
			snippet,
			"Use short, lowercase, hyphen-separated URLs that describe the content. Keep nesting shallow and strip tracking parameters from canonical URLs.",
		)
	}
	return passed(
		"URL structure is clean, readable and crawl-friendly.",
		snippet,
		"No action needed. Your URL follows best practices.",
	)
}

// checkPageSpeed applies static heuristics over the markup only. It never
// fails: without real timing data the strongest verdict is a warning.
func (a *Analyzer) checkPageSpeed(_ context.Context, doc *document.Context) *CheckResult {
	var flags []string

	sizeKB := float64(len(doc.HTML)) / 1024
	if sizeKB > a.cfg.HTMLWarnKB {
		flags = append(flags, fmt.Sprintf("large HTML document (%.2f KB)", sizeKB))
	}

	inlineStyles := doc.Doc.Find("style").Length()
	if inlineStyles > a.cfg.MaxInlineStyleBlocks {
		flags = append(flags, fmt.Sprintf("%d inline <style> blocks", inlineStyles))
	}

	// Scripts in <head> without async/defer and head stylesheets both block
	// first render.
	renderBlocking := 0
	doc.Doc.Find("head script[src]").Each(func(_ int, sel *goquery.Selection) {
		if _, async := sel.Attr("async"); async {
			return
		}
		if _, deferred := sel.Attr("defer"); deferred {
			return
		}
		renderBlocking++
	})
	renderBlocking += doc.Doc.Find(`head link[rel="stylesheet"]`).Length()
	if renderBlocking > a.cfg.MaxRenderBlocking {
		flags = append(flags, fmt.Sprintf("%d render-blocking resources in <head>", renderBlocking))
	}

	scripts := doc.Doc.Find("script[src]")
	totalScripts := scripts.Length()
	if totalScripts > a.cfg.MaxExternalScripts {
		flags = append(flags, fmt.Sprintf("%d external scripts", totalScripts))
	}

	deferAsync := 0
	scripts.Each(func(_ int, sel *goquery.Selection) {
		_, async := sel.Attr("async")
		_, deferred := sel.Attr("defer")
		if async || deferred {
			deferAsync++
		}
	})
	if totalScripts > a.cfg.DeferAsyncMinScriptCount && deferAsync*2 < totalScripts {
		flags = append(flags, fmt.Sprintf("only %d of %d scripts use defer/async", deferAsync, totalScripts))
	}

	if len(flags) > 0 {
		return warning(
			fmt.Sprintf("Potential page speed issues detected: %s.", strings.Join(flags, "; ")),
			flags,
			"Defer non-critical scripts, inline only critical CSS, and reduce the number and size of render-blocking resources.",
		)
	}
	return passed(
		"No static page speed red flags detected in the markup.",
		nil,
		"No action needed. For deeper insight, run a field-data tool such as PageSpeed Insights.",
	)
}
