package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/seolens/seolens/internal/document"
)

// checkTitle validates presence, length and separator usage of the <title>
// tag. The literal tag text is always included as evidence when present.
func (a *Analyzer) checkTitle(_ context.Context, doc *document.Context) *CheckResult {
	sel := doc.Doc.Find("title").First()
	title := strings.TrimSpace(sel.Text())

	if sel.Length() == 0 || title == "" {
		return failed(
			"No <title> tag found on the page.",
			nil,
			"Add a concise, descriptive <title> tag inside the <head> section. It is the strongest on-page relevance signal.",
		)
	}

	snippet := []string{fmt.Sprintf("<title>%s</title>", title)}
	length := utf8.RuneCountInString(title)

	switch {
	case length < a.cfg.TitleMinLen:
		return warning(
			fmt.Sprintf("Title is too short (%d characters). Recommended length is %d–%d characters.", length, a.cfg.TitleMinLen, a.cfg.TitleMaxLen),
			snippet,
			"Expand the title to describe the page topic and include its primary keyword.",
		)
	case length > a.cfg.TitleMaxLen:
		return warning(
			fmt.Sprintf("Title is too long (%d characters). It may be truncated in search results.", length),
			snippet,
			fmt.Sprintf("Shorten the title to at most %d characters, front-loading the most important words.", a.cfg.TitleMaxLen),
		)
	}

	if separators := strings.Count(title, " - ") + strings.Count(title, " | "); separators > 1 {
		return warning(
			fmt.Sprintf("Title contains %d separators. Multiple separators dilute the main topic.", separators),
			snippet,
			"Use at most one separator (\" - \" or \" | \") between the page topic and the site name.",
		)
	}

	return passed(
		fmt.Sprintf("Title length is optimal (%d characters).", length),
		snippet,
		"No changes needed. Your title is well-optimized.",
	)
}

// metaDescriptionSelectors is the search priority order: the first tag with
// non-empty content wins.
var metaDescriptionSelectors = []string{
	`meta[name="description"]`,
	`meta[property="og:description"]`,
	`meta[property="description"]`,
	`meta[name="twitter:description"]`,
}

func (a *Analyzer) checkMetaDescription(_ context.Context, doc *document.Context) *CheckResult {
	var matched *goquery.Selection
	var content string
	tagsSeen := 0

	for _, selector := range metaDescriptionSelectors {
		doc.Doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			tagsSeen++
			if matched != nil {
				return true
			}
			if c := strings.Join(strings.Fields(sel.AttrOr("content", "")), " "); c != "" {
				matched = sel
				content = c
			}
			return true
		})
		if matched != nil {
			break
		}
	}

	if matched == nil {
		if tagsSeen > 0 {
			return warning(
				"Description meta tags exist, but none have valid content.",
				nil,
				"Fill the content attribute of your description meta tag with a summary of the page.",
			)
		}
		return failed(
			"No meta description was found for your page.",
			nil,
			"Write a meta-description for your page.",
		)
	}

	snippet := []string{summarize(renderTag(matched))}
	length := utf8.RuneCountInString(content)

	switch {
	case length < a.cfg.MetaMinLen:
		return warning(
			fmt.Sprintf("Meta description is too short (%d characters). Recommended length is %d–%d characters.", length, a.cfg.MetaMinLen, a.cfg.MetaMaxLen),
			snippet,
			"Expand your meta description to better summarize the page content and include relevant keywords.",
		)
	case length > a.cfg.MetaMaxLen:
		return warning(
			fmt.Sprintf("Meta description is too long (%d characters). It may be truncated in search results.", length),
			snippet,
			fmt.Sprintf("Shorten your meta description to keep it within %d characters.", a.cfg.MetaMaxLen),
		)
	}

	return passed(
		fmt.Sprintf("Meta description length is optimal (%d characters).", length),
		snippet,
		"No changes needed. Your meta description is well-optimized.",
	)
}

func (a *Analyzer) checkH1s(_ context.Context, doc *document.Context) *CheckResult {
	headings := doc.Doc.Find("h1")
	count := headings.Length()

	var snippet []string
	headings.Each(func(_ int, sel *goquery.Selection) {
		snippet = append(snippet, renderTag(sel))
	})

	switch count {
	case 0:
		return failed(
			"No <h1> tag found on the page.",
			nil,
			"Include one clear and relevant <h1> tag to define the main topic of your page.",
		)
	case 1:
		return passed(
			"One <h1> tag found. Ideal for SEO.",
			snippet,
			"No changes needed. Your <h1> structure is well-optimized.",
		)
	default:
		return warning(
			fmt.Sprintf("%d <h1> tags found. It's recommended to use only one <h1> tag per page for clear hierarchy.", count),
			snippet,
			"Consolidate multiple <h1> tags into a single, primary heading to help search engines understand your page's topic.",
		)
	}
}

// checkHeadingStructure walks h1–h6 in document order, flagging skipped
// levels and out-of-order jumps. The ordered level sequence, missing levels
// and out-of-order flag are attached to the result regardless of status.
func (a *Analyzer) checkHeadingStructure(_ context.Context, doc *document.Context) *CheckResult {
	var (
		headingOrder []string
		levels       []int
		snippet      []string
	)
	doc.Doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		name := goquery.NodeName(sel)
		headingOrder = append(headingOrder, name)
		levels = append(levels, int(name[1]-'0'))
		snippet = append(snippet, renderTag(sel))
	})

	if len(levels) == 0 {
		res := failed(
			"No heading tags (h1–h6) found on the page.",
			nil,
			"Use structured headings to define content hierarchy (starting from <h1>).",
		)
		res.Extra = map[string]any{
			"heading_order":  []string{},
			"missing_levels": []string{"h1", "h2", "h3", "h4", "h5", "h6"},
			"out_of_order":   false,
		}
		return res
	}

	maxLevel := 0
	used := make(map[int]bool, 6)
	for _, lvl := range levels {
		used[lvl] = true
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}
	var missing []string
	for lvl := 1; lvl <= maxLevel; lvl++ {
		if !used[lvl] {
			missing = append(missing, fmt.Sprintf("h%d", lvl))
		}
	}

	outOfOrder := false
	last := 0
	for _, lvl := range levels {
		if last != 0 && lvl-last > 1 {
			outOfOrder = true
			break
		}
		last = lvl
	}

	if missing == nil {
		missing = []string{}
	}
	extra := map[string]any{
		"heading_order":  headingOrder,
		"missing_levels": missing,
		"out_of_order":   outOfOrder,
	}

	if outOfOrder || len(missing) > 0 {
		res := warning(
			"Heading tags are either out of order or have skipped levels.",
			snippet,
			"Ensure headings follow a logical structure (e.g., h1 → h2 → h3). Avoid skipping levels or jumping back.",
		)
		res.Extra = extra
		return res
	}

	res := passed(
		"Heading tags are well-structured and follow a logical hierarchy.",
		snippet,
		"No changes needed. Your heading structure is optimal.",
	)
	res.Extra = extra
	return res
}

// Weak alt texts: exact matches flagged as redundant, and the short set of
// placeholder values that never describe anything.
var (
	redundantAltWords = map[string]bool{"image": true, "photo": true, "pic": true, "picture": true, "img": true}
	nonDescriptiveAlt = map[string]bool{"a": true, "-": true, "x": true}
)

// checkImages buckets every <img> alt attribute as missing, redundant, short
// or duplicate. The status precedence reproduces the original tool: any
// missing/redundant/short issue warns; duplicates alone fail.
func (a *Analyzer) checkImages(_ context.Context, doc *document.Context) *CheckResult {
	images := doc.Doc.Find("img")
	total := images.Length()

	if total == 0 {
		return warning(
			"No <img> tags found on the page.",
			nil,
			"If your page uses images, be sure to include descriptive alt attributes for accessibility and SEO.",
		)
	}

	var (
		missingAlt   []string
		redundantAlt []string
		shortAlt     []string
		allTags      []string
	)
	altFreq := make(map[string]int)

	images.Each(func(_ int, sel *goquery.Selection) {
		tag := renderTag(sel)
		allTags = append(allTags, tag)

		alt, ok := sel.Attr("alt")
		altClean := strings.ToLower(strings.TrimSpace(alt))
		if !ok || altClean == "" {
			missingAlt = append(missingAlt, tag)
			return
		}
		altFreq[altClean]++

		if redundantAltWords[altClean] {
			redundantAlt = append(redundantAlt, tag)
		} else if utf8.RuneCountInString(altClean) < 3 || nonDescriptiveAlt[altClean] {
			shortAlt = append(shortAlt, tag)
		}
	})

	var duplicateAlt []string
	for value, n := range altFreq {
		if n > 1 {
			duplicateAlt = append(duplicateAlt, value)
		}
	}
	sort.Strings(duplicateAlt)

	var issues []string
	if len(missingAlt) > 0 {
		issues = append(issues, fmt.Sprintf("%d missing alt", len(missingAlt)))
	}
	if len(redundantAlt) > 0 {
		issues = append(issues, fmt.Sprintf("%d redundant alt", len(redundantAlt)))
	}
	if len(shortAlt) > 0 {
		issues = append(issues, fmt.Sprintf("%d very short/non-descriptive alt", len(shortAlt)))
	}
	if len(duplicateAlt) > 0 {
		issues = append(issues, fmt.Sprintf("%d duplicate alt text values", len(duplicateAlt)))
	}

	if len(issues) == 0 {
		return passed(
			fmt.Sprintf("All %d images have clear, descriptive 'alt' attributes.", total),
			capExamples(allTags, 3),
			"No changes needed. Your images are well-optimized.",
		)
	}

	status := StatusFailed
	if len(missingAlt) > 0 || len(redundantAlt) > 0 || len(shortAlt) > 0 {
		status = StatusWarning
	}

	return &CheckResult{
		Status:      status,
		Description: fmt.Sprintf("Issues detected with image alt attributes: %s.", strings.Join(issues, ", ")),
		HowToFix: "Ensure all images have descriptive, unique 'alt' text. Avoid generic words like 'image', " +
			"'pic', or 'photo'. Don't use extremely short or duplicate alt texts.",
		Extra: map[string]any{
			"missing_alt":   capExamples(missingAlt, 3),
			"redundant_alt": capExamples(redundantAlt, 3),
			"short_alt":     capExamples(shortAlt, 3),
			"duplicate_alt": capExamples(duplicateAlt, 3),
		},
	}
}

func (a *Analyzer) checkLazyLoading(_ context.Context, doc *document.Context) *CheckResult {
	elements := doc.Doc.Find("img, iframe")
	total := elements.Length()

	if total == 0 {
		return warning(
			"No <img> or <iframe> elements found for lazy loading analysis.",
			nil,
			"If your page includes images or iframes, use lazy loading to improve performance.",
		)
	}

	var missing []string
	elements.Each(func(_ int, sel *goquery.Selection) {
		loading := strings.ToLower(strings.TrimSpace(sel.AttrOr("loading", "")))
		if loading != "lazy" {
			missing = append(missing, summarize(renderTag(sel)))
		}
	})

	switch {
	case len(missing) == total:
		return failed(
			"None of the <img> or <iframe> elements use lazy loading.",
			missing,
			"Add `loading=\"lazy\"` to your <img> and <iframe> tags to defer offscreen content.",
		)
	case len(missing) > 0:
		return warning(
			fmt.Sprintf("%d of %d image/iframe elements are missing `loading=\"lazy\"`.", len(missing), total),
			missing,
			"Add `loading=\"lazy\"` to these elements to improve performance and reduce initial load.",
		)
	default:
		return passed(
			fmt.Sprintf("All %d <img> and <iframe> elements use lazy loading.", total),
			nil,
			"No changes needed. Lazy loading is properly implemented.",
		)
	}
}
