package analyzer

import (
	"context"
	"strings"
	"testing"
)

func TestCheckCanonical(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		res := a.checkCanonical(ctx, mustDoc(t, `<html><head></head></html>`, base))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})

	t.Run("absolute in head", func(t *testing.T) {
		t.Parallel()
		res := a.checkCanonical(ctx, mustDoc(t,
			`<html><head><link rel="canonical" href="https://example.com/page"></head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})

	t.Run("relative href warns", func(t *testing.T) {
		t.Parallel()
		res := a.checkCanonical(ctx, mustDoc(t,
			`<html><head><link rel="canonical" href="/page"></head></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
		if !strings.Contains(res.Description, "relative") {
			t.Errorf("description = %q", res.Description)
		}
	})

	t.Run("outside head warns", func(t *testing.T) {
		t.Parallel()
		res := a.checkCanonical(ctx, mustDoc(t,
			`<html><head></head><body><link rel="canonical" href="https://example.com/page"></body></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
	})
}

func TestCheckNoindex(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	t.Run("noindex fails", func(t *testing.T) {
		t.Parallel()
		res := a.checkNoindex(ctx, mustDoc(t,
			`<html><head><meta name="robots" content="noindex, nofollow"></head></html>`, base))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})

	t.Run("multiple robots tags warn", func(t *testing.T) {
		t.Parallel()
		res := a.checkNoindex(ctx, mustDoc(t,
			`<html><head><meta name="robots" content="index"><meta name="googlebot" content="index"></head></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
	})

	t.Run("clean passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkNoindex(ctx, mustDoc(t, `<html><head></head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})
}

func TestCheckOpenGraph(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	t.Run("none fails", func(t *testing.T) {
		t.Parallel()
		res := a.checkOpenGraph(ctx, mustDoc(t, `<html><head></head></html>`, base))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})

	t.Run("missing required warns", func(t *testing.T) {
		t.Parallel()
		res := a.checkOpenGraph(ctx, mustDoc(t,
			`<html><head><meta property="og:title" content="T"></head></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
		if !strings.Contains(res.Description, "og:description") {
			t.Errorf("description should name missing tags: %q", res.Description)
		}
	})

	t.Run("empty required warns", func(t *testing.T) {
		t.Parallel()
		res := a.checkOpenGraph(ctx, mustDoc(t, `<html><head>
			<meta property="og:title" content="T">
			<meta property="og:description" content="">
			<meta property="og:image" content="https://example.com/i.png">
			<meta property="og:url" content="https://example.com/page">
		</head></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
		if !strings.Contains(res.Description, "Empty: og:description") {
			t.Errorf("description = %q", res.Description)
		}
	})

	t.Run("complete passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkOpenGraph(ctx, mustDoc(t, `<html><head>
			<meta property="og:title" content="T">
			<meta property="og:description" content="D">
			<meta property="og:image" content="https://example.com/i.png">
			<meta property="og:url" content="https://example.com/page">
		</head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})
}

func TestCheckSchemaOrg(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	t.Run("valid json-ld passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkSchemaOrg(ctx, mustDoc(t, `<html><head>
			<script type="application/ld+json">{"@context":"https://schema.org","@type":"Article"}</script>
		</head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
		if !strings.Contains(res.Description, "JSON-LD") {
			t.Errorf("description = %q", res.Description)
		}
	})

	t.Run("microdata passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkSchemaOrg(ctx, mustDoc(t,
			`<html><body><div itemscope itemtype="https://schema.org/Person"><span>Bob</span></div></body></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
		if !strings.Contains(res.Description, "Microdata") {
			t.Errorf("description = %q", res.Description)
		}
	})

	t.Run("invalid json-ld warns", func(t *testing.T) {
		t.Parallel()
		res := a.checkSchemaOrg(ctx, mustDoc(t, `<html><head>
			<script type="application/ld+json">{not valid json</script>
		</head></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
	})

	t.Run("nothing fails", func(t *testing.T) {
		t.Parallel()
		res := a.checkSchemaOrg(ctx, mustDoc(t, `<html><body></body></html>`, base))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})
}

func TestCheckFavicon(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	t.Run("icon link in head passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkFavicon(ctx, mustDoc(t,
			`<html><head><link rel="shortcut icon" href="/favicon.png"></head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})

	t.Run("tile meta passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkFavicon(ctx, mustDoc(t,
			`<html><head><meta name="msapplication-TileImage" content="/tile.png"></head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})

	t.Run("favicon.ico href passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkFavicon(ctx, mustDoc(t,
			`<html><head><link rel="preload" href="https://cdn.example.com/favicon.ico"></head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})

	t.Run("none fails", func(t *testing.T) {
		t.Parallel()
		res := a.checkFavicon(ctx, mustDoc(t, `<html><head><title>x</title></head></html>`, base))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})
}

func TestCheckAMP(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	res := a.checkAMP(ctx, mustDoc(t,
		`<html><head><link rel="amphtml" href="https://example.com/amp/page"></head></html>`, base))
	if res.Status != StatusPassed {
		t.Errorf("status = %q, want passed", res.Status)
	}

	res = a.checkAMP(ctx, mustDoc(t, `<html><head></head></html>`, base))
	if res.Status != StatusWarning {
		t.Errorf("status = %q, want warning", res.Status)
	}
}

func TestCheckViewportMeta(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	t.Run("complete passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkViewportMeta(ctx, mustDoc(t,
			`<html><head><meta name="viewport" content="width=device-width, initial-scale=1.0"></head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})

	t.Run("partial warns", func(t *testing.T) {
		t.Parallel()
		res := a.checkViewportMeta(ctx, mustDoc(t,
			`<html><head><meta name="viewport" content="width=device-width"></head></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
	})

	t.Run("case-insensitive name", func(t *testing.T) {
		t.Parallel()
		res := a.checkViewportMeta(ctx, mustDoc(t,
			`<html><head><meta name="VIEWPORT" content="width=device-width, initial-scale=1"></head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})

	t.Run("missing fails", func(t *testing.T) {
		t.Parallel()
		res := a.checkViewportMeta(ctx, mustDoc(t, `<html><head></head></html>`, base))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})
}

func TestCheckSocialMeta(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	t.Run("both families pass", func(t *testing.T) {
		t.Parallel()
		res := a.checkSocialMeta(ctx, mustDoc(t, `<html><head>
			<meta property="og:title" content="T">
			<meta name="twitter:card" content="summary">
		</head></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})

	t.Run("one family warns and names the other", func(t *testing.T) {
		t.Parallel()
		res := a.checkSocialMeta(ctx, mustDoc(t,
			`<html><head><meta property="og:title" content="T"></head></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
		if !strings.Contains(res.HowToFix, "Twitter Card") {
			t.Errorf("how_to_fix = %q", res.HowToFix)
		}
	})

	t.Run("neither fails", func(t *testing.T) {
		t.Parallel()
		res := a.checkSocialMeta(ctx, mustDoc(t, `<html><head></head></html>`, base))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})
}

func TestCheckIframeUsage(t *testing.T) {
	t.Parallel()

	a := domAnalyzer()
	ctx := context.Background()

	t.Run("none passes", func(t *testing.T) {
		t.Parallel()
		res := a.checkIframeUsage(ctx, mustDoc(t, `<html><body></body></html>`, base))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
	})

	t.Run("a few warn", func(t *testing.T) {
		t.Parallel()
		res := a.checkIframeUsage(ctx, mustDoc(t,
			`<html><body><iframe src="a"></iframe><iframe src="b"></iframe></body></html>`, base))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
	})

	t.Run("many fail", func(t *testing.T) {
		t.Parallel()
		html := `<html><body>` + strings.Repeat(`<iframe src="x"></iframe>`, 5) + `</body></html>`
		res := a.checkIframeUsage(ctx, mustDoc(t, html, base))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})
}
