package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/seolens/seolens/internal/document"
	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/webclient"
)

// checkRobotsTxt fetches <origin>/robots.txt and inspects it for User-agent
// directives, a blanket `Disallow: /` under the wildcard agent, and a Sitemap
// line. The first lines of the file serve as evidence.
func (a *Analyzer) checkRobotsTxt(ctx context.Context, doc *document.Context) *CheckResult {
	robotsURL := doc.Origin() + "/robots.txt"

	resp, err := a.wc.Get(ctx, robotsURL)
	if err != nil {
		a.logger.Debug("robots.txt fetch failed",
			logging.Field{Key: "url", Value: robotsURL},
			logging.Field{Key: "error", Value: err.Error()})
		return failed(
			fmt.Sprintf("Could not fetch robots.txt: %v", err),
			nil,
			"Make sure your site serves a robots.txt file at the domain root and that it is reachable.",
		)
	}

	if resp.StatusCode == http.StatusNotFound {
		return failed(
			"No robots.txt file found (404). Crawlers receive no crawl directives for your site.",
			nil,
			"Create a robots.txt file at the root of your domain, e.g.:\nUser-agent: *\nDisallow:\nSitemap: https://example.com/sitemap.xml",
		)
	}
	if resp.StatusCode != http.StatusOK {
		return warning(
			fmt.Sprintf("robots.txt returned an unexpected status code: %d.", resp.StatusCode),
			nil,
			"Ensure robots.txt is served with a 200 status so crawlers can read it.",
		)
	}

	body := string(resp.Body)
	lines := strings.Split(body, "\n")
	snippet := []string{strings.Join(lines[:min(len(lines), 6)], "\n")}

	if !strings.Contains(body, "User-agent") {
		return warning(
			"robots.txt exists but contains no User-agent directives.",
			snippet,
			"Add at least one User-agent block so crawlers know which rules apply to them.",
		)
	}

	// Blanket disallow under the wildcard agent blocks the whole site.
	wildcardBlocked := false
	inWildcard := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "user-agent:") {
			agent := strings.TrimSpace(trimmed[len("user-agent:"):])
			inWildcard = agent == "*"
			continue
		}
		// Whitespace around the colon is legal: `Disallow:/` blocks the
		// site just like `Disallow: /`.
		if key, val, ok := strings.Cut(lower, ":"); inWildcard && ok &&
			strings.TrimSpace(key) == "disallow" && strings.TrimSpace(val) == "/" {
			wildcardBlocked = true
			break
		}
	}
	if wildcardBlocked {
		return warning(
			"robots.txt disallows all crawlers from the entire site (`User-agent: *` with `Disallow: /`).",
			snippet,
			"Remove or narrow the blanket `Disallow: /` rule unless you intend to keep the whole site out of search engines.",
		)
	}

	if !strings.Contains(body, "Sitemap:") {
		return warning(
			"robots.txt exists but does not reference a sitemap.",
			snippet,
			"Add a `Sitemap: https://example.com/sitemap.xml` line to help crawlers discover your pages.",
		)
	}

	return passed(
		"robots.txt is present, allows crawling, and references a sitemap.",
		snippet,
		"No action needed. Your robots.txt is well-configured.",
	)
}

// checkHTTPRedirect requests the page's plain-HTTP origin and verifies the
// redirect chain lands on HTTPS.
func (a *Analyzer) checkHTTPRedirect(ctx context.Context, doc *document.Context) *CheckResult {
	httpURL := "http://" + doc.FinalURL.Host + doc.FinalURL.Path

	resp, err := a.wc.Get(ctx, httpURL)
	if err != nil {
		return failed(
			fmt.Sprintf("Could not verify HTTP to HTTPS redirect: %v", err),
			nil,
			"Ensure your server is reachable over plain HTTP and redirects to the HTTPS version of the page.",
		)
	}

	if strings.HasPrefix(resp.FinalURL, "https://") {
		return passed(
			fmt.Sprintf("HTTP requests are redirected to HTTPS (%s).", resp.FinalURL),
			nil,
			"No action needed. Insecure traffic is correctly upgraded.",
		)
	}
	return failed(
		fmt.Sprintf("HTTP requests are not redirected to HTTPS. Final URL: %s (status %d).", resp.FinalURL, resp.StatusCode),
		nil,
		"Configure your server to issue a 301 redirect from http:// to https:// for all pages.",
	)
}

// checkCustom404 probes a random path that cannot exist and inspects both the
// status code and the error page body.
func (a *Analyzer) checkCustom404(ctx context.Context, doc *document.Context) *CheckResult {
	probeURL := doc.Origin() + "/seolens-missing-" + uuid.NewString()

	resp, err := a.wc.Get(ctx, probeURL)
	if err != nil {
		return failed(
			fmt.Sprintf("Could not check the 404 page: %v", err),
			nil,
			"Ensure your server responds to requests for nonexistent pages.",
		)
	}

	snippet := []string{summarizeBody(resp.Body, 200)}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		lower := strings.ToLower(string(resp.Body))
		if strings.Contains(lower, "404") ||
			strings.Contains(lower, "page not found") ||
			strings.Contains(lower, "not be found") {
			return passed(
				"A custom 404 page is served for missing URLs with a proper 404 status code.",
				snippet,
				"No action needed. Your 404 handling is user-friendly and correct.",
			)
		}
		return warning(
			"Missing URLs return a 404 status, but the error page does not look customized.",
			snippet,
			"Serve a helpful custom 404 page with navigation back to your content to reduce bounce rates.",
		)
	case resp.StatusCode == http.StatusOK:
		return failed(
			"Nonexistent URLs return a 200 status (soft 404). Search engines may index error pages as real content.",
			snippet,
			"Return a proper 404 status code for missing pages instead of rendering content with a 200.",
		)
	default:
		return warning(
			fmt.Sprintf("Nonexistent URLs return an unexpected status code: %d.", resp.StatusCode),
			snippet,
			"Return a 404 status code with a custom error page for missing content.",
		)
	}
}

// checkTextCompression re-requests the page advertising gzip and brotli and
// reads the negotiated Content-Encoding. Setting Accept-Encoding explicitly
// disables the transport's transparent decompression, so the response header
// survives for inspection.
func (a *Analyzer) checkTextCompression(ctx context.Context, doc *document.Context) *CheckResult {
	headers := make(http.Header)
	headers.Set("Accept-Encoding", "gzip, br")

	resp, err := a.wc.Do(ctx, &webclient.Request{
		Method:  http.MethodGet,
		URL:     doc.FinalURL.String(),
		Headers: headers,
	})
	if err != nil {
		return failed(
			fmt.Sprintf("Could not verify text compression: %v", err),
			nil,
			"Ensure the page is reachable, then enable gzip or Brotli compression on your server.",
		)
	}

	encoding := strings.ToLower(resp.Headers.Get("Content-Encoding"))
	snippet := []string{fmt.Sprintf("Content-Encoding: %s", encoding)}

	switch {
	case strings.Contains(encoding, "br"):
		return passed(
			"The server compresses responses with Brotli, the most efficient common algorithm.",
			snippet,
			"No action needed. Text compression is optimally configured.",
		)
	case strings.Contains(encoding, "gzip"):
		return passed(
			"The server compresses responses with Gzip.",
			snippet,
			"No action needed. Consider enabling Brotli for slightly better compression ratios.",
		)
	default:
		return failed(
			"The server does not compress text responses. Uncompressed HTML increases load time.",
			[]string{"Content-Encoding: (none)"},
			"Enable gzip or Brotli compression on your web server for HTML, CSS and JavaScript responses.",
		)
	}
}

// summarizeBody truncates a response body for evidence, newlines collapsed.
func summarizeBody(body []byte, limit int) string {
	return truncateRunes(strings.Join(strings.Fields(string(body)), " "), limit)
}
