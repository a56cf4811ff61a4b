package analyzer

import (
	"context"
	"fmt"

	"github.com/seolens/seolens/internal/document"
)

// checkLinks delegates anchor collection and probing to the link scanner and
// maps its aggregate result into the report contract. The scanner's counts
// ride along as extra fields.
func (a *Analyzer) checkLinks(ctx context.Context, doc *document.Context) *CheckResult {
	scan := a.scanner.Scan(ctx, doc)

	extra := map[string]any{
		"internal_links": scan.Internal,
		"external_links": scan.External,
		"broken_links":   scan.Broken,
		"internal_pct":   scan.InternalPct,
		"external_pct":   scan.ExternalPct,
		"broken_pct":     scan.BrokenPct,
	}

	if scan.Total() == 0 {
		res := failed(
			"No usable links found on the page. Pages without links are dead ends for crawlers and users.",
			nil,
			"Add internal links to related content and external links to authoritative sources.",
		)
		res.Extra = extra
		return res
	}

	if scan.Broken > 0 {
		var examples []string
		for _, b := range scan.BrokenExamples {
			examples = append(examples, fmt.Sprintf("%s (\"%s\")", b.URL, b.AnchorText))
		}
		res := warning(
			fmt.Sprintf("%d broken link(s) detected out of %d total links checked.", scan.Broken, scan.Total()),
			examples,
			"Fix or remove broken links. They waste crawl budget and frustrate visitors.",
		)
		res.Extra = extra
		return res
	}

	if scan.InternalRatio() < a.cfg.MinInternalLinkRatio {
		res := warning(
			fmt.Sprintf("Only %.0f%% of links are internal (%d internal, %d external). A stronger internal link profile helps distribute authority across your site.",
				scan.InternalPct, scan.Internal, scan.External),
			nil,
			"Add more internal links to related pages on your own site.",
		)
		res.Extra = extra
		return res
	}

	res := passed(
		fmt.Sprintf("Link profile is healthy: %d internal and %d external links, no broken targets detected.",
			scan.Internal, scan.External),
		nil,
		"No action needed. Your linking structure supports both users and crawlers.",
	)
	res.Extra = extra
	return res
}
