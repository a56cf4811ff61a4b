package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/seolens/seolens/internal/document"
)

// inHead reports whether the selection's first node sits inside <head>.
func inHead(sel *goquery.Selection) bool {
	return sel.ParentsFiltered("head").Length() > 0
}

func (a *Analyzer) checkCanonical(_ context.Context, doc *document.Context) *CheckResult {
	canonical := doc.Doc.Find(`link[rel="canonical"]`).First()
	href := strings.TrimSpace(canonical.AttrOr("href", ""))

	if canonical.Length() == 0 || href == "" {
		return failed(
			"No canonical URL tag found. This may lead to duplicate content issues.",
			nil,
			"Add a canonical tag in the <head> section of your page to indicate the preferred version "+
				"of the URL, e.g. <link rel=\"canonical\" href=\"https://example.com/page\">.",
		)
	}

	snippet := []string{summarize(renderTag(canonical))}

	if !inHead(canonical) {
		return warning(
			"Canonical tag found, but not inside the <head> section.",
			snippet,
			"Move your canonical tag into the <head> section for proper SEO recognition.",
		)
	}

	if parsed, err := url.Parse(href); err != nil || parsed.Scheme == "" {
		return warning(
			fmt.Sprintf("Canonical tag uses a relative URL: %s", href),
			snippet,
			"Use an absolute URL in your canonical tag to ensure search engines interpret it correctly.",
		)
	}

	return passed(
		fmt.Sprintf("Canonical URL is set correctly: %s", href),
		snippet,
		"No action needed. Your canonical tag is correctly implemented.",
	)
}

func (a *Analyzer) checkNoindex(_ context.Context, doc *document.Context) *CheckResult {
	metaTags := doc.Doc.Find(`meta[name="robots"], meta[name="googlebot"]`)

	var noindexTags, allTags []string
	metaTags.Each(func(_ int, sel *goquery.Selection) {
		tag := renderTag(sel)
		allTags = append(allTags, tag)
		if strings.Contains(strings.ToLower(sel.AttrOr("content", "")), "noindex") {
			noindexTags = append(noindexTags, tag)
		}
	})

	if len(noindexTags) > 0 {
		return failed(
			fmt.Sprintf("The page contains %d meta tag(s) with a `noindex` directive, "+
				"preventing it from being indexed by search engines.", len(noindexTags)),
			noindexTags,
			"Remove the `noindex` directive(s) if you want this page to appear in search engine results.",
		)
	}
	if metaTags.Length() > 1 {
		return warning(
			fmt.Sprintf("Multiple meta robots or googlebot tags found (%d total). "+
				"This could lead to conflicting instructions for search engines.", metaTags.Length()),
			allTags,
			"Ensure you only include one meta tag for robot directives to avoid ambiguity.",
		)
	}

	return passed(
		"No 'noindex' directive found. Your page is indexable by search engines.",
		nil,
		"No action needed.",
	)
}

// requiredOGProperties must all be present and non-empty for a pass.
var requiredOGProperties = []string{"og:title", "og:description", "og:image", "og:url"}

func (a *Analyzer) checkOpenGraph(_ context.Context, doc *document.Context) *CheckResult {
	ogTags := make(map[string]string)
	var snippet []string
	doc.Doc.Find("meta[property]").Each(func(_ int, sel *goquery.Selection) {
		prop := sel.AttrOr("property", "")
		if !strings.HasPrefix(prop, "og:") {
			return
		}
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		ogTags[prop] = content
		snippet = append(snippet, fmt.Sprintf(`<meta property="%s" content="%s">`, prop, content))
	})

	if len(ogTags) == 0 {
		return failed(
			"No OpenGraph meta tags found. These tags help control how your pages appear when shared on social media.",
			nil,
			"Add OpenGraph tags in the <head> section of your HTML to improve social sharing appearance and CTR.",
		)
	}

	var missing, empty []string
	for _, prop := range requiredOGProperties {
		content, ok := ogTags[prop]
		switch {
		case !ok:
			missing = append(missing, prop)
		case content == "":
			empty = append(empty, prop)
		}
	}

	if len(missing) > 0 || len(empty) > 0 {
		var problems []string
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("Missing: %s", strings.Join(missing, ", ")))
		}
		if len(empty) > 0 {
			problems = append(problems, fmt.Sprintf("Empty: %s", strings.Join(empty, ", ")))
		}
		return warning(
			fmt.Sprintf("OpenGraph tags found, but some issues detected. %s.", strings.Join(problems, "; ")),
			snippet,
			"Ensure all required OpenGraph tags are present and contain meaningful values.",
		)
	}

	return passed(
		fmt.Sprintf("All required OpenGraph tags are present and populated. (%s)", strings.Join(requiredOGProperties, ", ")),
		snippet,
		"No action needed. Your OpenGraph setup looks great.",
	)
}

// checkSchemaOrg detects structured data as Microdata (itemscope+itemtype) or
// JSON-LD script blocks whose body parses as an object carrying @context or
// @type.
func (a *Analyzer) checkSchemaOrg(_ context.Context, doc *document.Context) *CheckResult {
	microdata := doc.Doc.Find("[itemscope][itemtype]")
	jsonLD := doc.Doc.Find(`script[type="application/ld+json"]`)

	var validJSONLD []string
	jsonLD.Each(func(_ int, sel *goquery.Selection) {
		body := strings.TrimSpace(sel.Text())
		var data map[string]any
		if err := json.Unmarshal([]byte(body), &data); err != nil {
			return
		}
		_, hasContext := data["@context"]
		_, hasType := data["@type"]
		if hasContext || hasType {
			validJSONLD = append(validJSONLD, body)
		}
	})

	truncate := func(s string) string {
		return truncateRunes(s, 500)
	}

	if len(validJSONLD) > 0 || microdata.Length() > 0 {
		var format string
		switch {
		case len(validJSONLD) > 0 && microdata.Length() > 0:
			format = "JSON-LD and Microdata"
		case len(validJSONLD) > 0:
			format = "JSON-LD"
		default:
			format = "Microdata"
		}

		sample := ""
		if len(validJSONLD) > 0 {
			sample = validJSONLD[0]
		} else {
			sample = renderTag(microdata.First())
		}

		return passed(
			fmt.Sprintf("Schema.org structured data found (%s).", format),
			[]string{truncate(sample)},
			"No action needed. Your page includes valid Schema.org metadata.",
		)
	}

	if jsonLD.Length() > 0 {
		return warning(
			"Found JSON-LD tags, but none appear to contain valid Schema.org metadata.",
			[]string{truncate(strings.TrimSpace(jsonLD.First().Text()))},
			"Ensure your JSON-LD contains Schema.org-compliant fields like `@context` and `@type`.",
		)
	}

	return failed(
		"No Schema.org metadata found. This may prevent rich snippets in search results.",
		nil,
		"Add Schema.org metadata using JSON-LD or Microdata format. Refer to https://schema.org.",
	)
}

// checkFavicon searches the Microsoft tile meta, any link whose rel mentions
// icon, and an explicit /favicon.ico href, preferring tags inside <head>.
func (a *Analyzer) checkFavicon(_ context.Context, doc *document.Context) *CheckResult {
	if doc.Doc.Find("head").Length() == 0 {
		return warning(
			"The page has no <head> section, so no favicon can be declared.",
			nil,
			"Add a <head> section with a `<link rel=\"icon\" href=\"/favicon.ico\">` tag.",
		)
	}

	tile := doc.Doc.Find(`meta[name="msapplication-TileImage"]`).First()
	if tile.Length() > 0 && strings.TrimSpace(tile.AttrOr("content", "")) != "" {
		return passed(
			"Favicon found via the Microsoft tile meta tag.",
			[]string{renderTag(tile)},
			"No action needed. A favicon is correctly set.",
		)
	}

	var found *goquery.Selection
	doc.Doc.Find("link[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel := strings.ToLower(sel.AttrOr("rel", ""))
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return true
		}
		if strings.Contains(rel, "icon") || strings.HasSuffix(href, "/favicon.ico") {
			found = sel
			return false
		}
		return true
	})

	if found == nil {
		return failed(
			"No favicon with a valid href found in the HTML. This may result in a generic or blank tab "+
				"icon, reducing brand visibility.",
			nil,
			"Add a `<link rel=\"icon\" href=\"/favicon.ico\">` tag in the <head> of your HTML. Make sure "+
				"the file is accessible and correctly formatted (.ico, .png, .svg, etc).",
		)
	}

	if !inHead(found) {
		return warning(
			"Favicon link found, but not inside the <head> section.",
			[]string{renderTag(found)},
			"Move the favicon link into the <head> so browsers and crawlers pick it up reliably.",
		)
	}

	return passed(
		"Favicon found in the HTML head. This helps with branding and browser recognition.",
		[]string{renderTag(found)},
		"No action needed. A favicon is correctly set.",
	)
}

func (a *Analyzer) checkAMP(_ context.Context, doc *document.Context) *CheckResult {
	amp := doc.Doc.Find(`link[rel="amphtml"]`).First()
	if amp.Length() > 0 && strings.TrimSpace(amp.AttrOr("href", "")) != "" {
		return passed(
			"AMP version of the page is linked using <link rel='amphtml'>.",
			[]string{renderTag(amp)},
			"No action needed. AMP page is present and referenced correctly.",
		)
	}
	return warning(
		"No AMP version found. While not mandatory, having an AMP version can improve mobile speed "+
			"and visibility in mobile search results.",
		nil,
		"Create a valid AMP version of your content and link it in the <head> with "+
			"<link rel='amphtml'> to benefit from faster load times and potential search enhancements.",
	)
}

// viewportFallback scans raw markup for a viewport meta the parser missed.
var viewportFallback = regexp.MustCompile(`(?i)<meta[^>]*name=["']?viewport["']?[^>]*>`)

// checkViewportMeta locates meta[name=viewport], trying an exact selector, a
// case-insensitive attribute walk, then a raw-markup regex scan.
func (a *Analyzer) checkViewportMeta(_ context.Context, doc *document.Context) *CheckResult {
	viewport := doc.Doc.Find(`meta[name="viewport"]`).First()

	if viewport.Length() == 0 {
		doc.Doc.Find("meta[name]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if strings.EqualFold(sel.AttrOr("name", ""), "viewport") {
				viewport = sel
				return false
			}
			return true
		})
	}

	var tag, content string
	if viewport.Length() > 0 {
		tag = renderTag(viewport)
		content = viewport.AttrOr("content", "")
	} else if m := viewportFallback.FindString(string(doc.HTML)); m != "" {
		tag = m
		if cm := regexp.MustCompile(`(?i)content=["']([^"']*)["']`).FindStringSubmatch(m); len(cm) == 2 {
			content = cm[1]
		}
	}

	if tag == "" {
		return failed(
			"No viewport meta tag found. This can negatively affect mobile usability and SEO.",
			nil,
			"Add the following tag inside the <head> section of your HTML:\n"+
				"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">",
		)
	}

	lower := strings.ToLower(strings.TrimSpace(content))
	if strings.Contains(lower, "width=device-width") && strings.Contains(lower, "initial-scale") {
		return passed(
			"The page contains a valid viewport meta tag optimized for responsive mobile viewing.",
			[]string{tag},
			"No action needed. The viewport tag is correctly implemented for mobile devices.",
		)
	}

	return warning(
		"Viewport meta tag is present but may be misconfigured or missing key attributes.",
		[]string{tag},
		"Ensure your tag looks like:\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">",
	)
}

func (a *Analyzer) checkSocialMeta(_ context.Context, doc *document.Context) *CheckResult {
	ogCount := 0
	doc.Doc.Find("meta[property]").Each(func(_ int, sel *goquery.Selection) {
		if strings.HasPrefix(sel.AttrOr("property", ""), "og:") {
			ogCount++
		}
	})
	twitterCount := 0
	doc.Doc.Find("meta[name]").Each(func(_ int, sel *goquery.Selection) {
		if strings.HasPrefix(sel.AttrOr("name", ""), "twitter:") {
			twitterCount++
		}
	})

	snippet := []string{fmt.Sprintf("Open Graph tags found: %d\nTwitter Card tags found: %d", ogCount, twitterCount)}

	switch {
	case ogCount > 0 && twitterCount > 0:
		return passed(
			"Both Open Graph and Twitter Card meta tags are present for rich social sharing previews.",
			snippet,
			"No action needed. Social meta tags are correctly implemented.",
		)
	case ogCount > 0 || twitterCount > 0:
		missing := "Twitter Card"
		if ogCount == 0 {
			missing = "Open Graph"
		}
		return warning(
			"Partial social meta tag support detected. Full coverage improves visibility on all platforms.",
			snippet,
			fmt.Sprintf("Add missing %s meta tags to your <head> section for complete support.", missing),
		)
	default:
		return failed(
			"No social media meta tags detected. Shared links may not display thumbnails or summaries on platforms "+
				"like Facebook and Twitter.",
			nil,
			"Add Open Graph and Twitter Card meta tags in the <head> section, such as:\n"+
				"<meta property=\"og:title\" content=\"Your Title\" />\n"+
				"<meta name=\"twitter:card\" content=\"summary_large_image\" />",
		)
	}
}

func (a *Analyzer) checkIframeUsage(_ context.Context, doc *document.Context) *CheckResult {
	iframes := doc.Doc.Find("iframe")
	count := iframes.Length()

	if count == 0 {
		return passed(
			"No iframes found on the page. This is optimal for SEO and performance.",
			nil,
			"No action needed. Avoiding iframes improves load speed and accessibility.",
		)
	}

	var tags []string
	iframes.Each(func(i int, sel *goquery.Selection) {
		if i < 3 {
			tags = append(tags, renderTag(sel))
		}
	})
	evidence := strings.Join(tags, "\n")
	if count > 3 {
		evidence += "\n..."
	}

	if count <= a.cfg.IframeThreshold {
		return warning(
			fmt.Sprintf("%d iframe(s) found. While acceptable, consider minimizing them for better performance.", count),
			[]string{evidence},
			"Use iframes only when necessary. Consider alternatives such as JavaScript embeds or server-side includes.",
		)
	}
	return failed(
		fmt.Sprintf("%d iframes detected, which can hurt SEO, slow down rendering, and reduce accessibility.", count),
		[]string{evidence},
		"Reduce iframe usage. Where possible, replace with native HTML, JavaScript widgets, or lazy-loaded embeds.",
	)
}
