package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestCheckRobotsTxt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing fails", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		res := a.checkRobotsTxt(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})

	t.Run("no user-agent warns", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, robotsHandler("# just a comment\n"))
		res := a.checkRobotsTxt(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
	})

	t.Run("blanket disallow warns", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, robotsHandler("User-agent: *\nDisallow: /\nSitemap: https://example.com/s.xml\n"))
		res := a.checkRobotsTxt(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
		if !strings.Contains(res.Description, "disallows all crawlers") {
			t.Errorf("description = %q", res.Description)
		}
	})

	t.Run("blanket disallow without space warns", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, robotsHandler("User-agent: *\nDisallow:/\nSitemap: https://example.com/s.xml\n"))
		res := a.checkRobotsTxt(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
		if !strings.Contains(res.Description, "disallows all crawlers") {
			t.Errorf("description = %q", res.Description)
		}
	})

	t.Run("scoped disallow with sitemap passes", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, robotsHandler("User-agent: *\nDisallow: /admin\nSitemap: https://example.com/s.xml\n"))
		res := a.checkRobotsTxt(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed: %s", res.Status, res.Description)
		}
	})

	t.Run("no sitemap warns", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, robotsHandler("User-agent: *\nDisallow:\n"))
		res := a.checkRobotsTxt(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
		if !strings.Contains(res.Description, "sitemap") {
			t.Errorf("description = %q", res.Description)
		}
	})
}

func robotsHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			fmt.Fprint(w, body)
			return
		}
		http.NotFound(w, r)
	})
}

func TestCheckCustom404(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("proper 404 passes", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r) // body contains "404 page not found"
		}))
		res := a.checkCustom404(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed: %s", res.Status, res.Description)
		}
	})

	t.Run("404 without error wording warns", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "nothing here")
		}))
		res := a.checkCustom404(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusWarning {
			t.Errorf("status = %q, want warning", res.Status)
		}
	})

	t.Run("soft 404 fails", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html><body>welcome</body></html>")
		}))
		res := a.checkCustom404(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})
}

func TestCheckTextCompression(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("gzip passes", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Encoding", "gzip")
			w.Write([]byte("compressed-ish"))
		}))
		res := a.checkTextCompression(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed: %s", res.Status, res.Description)
		}
		if !strings.Contains(res.Description, "Gzip") {
			t.Errorf("description = %q", res.Description)
		}
	})

	t.Run("brotli passes", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Encoding", "br")
			w.Write([]byte("compressed-ish"))
		}))
		res := a.checkTextCompression(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusPassed {
			t.Errorf("status = %q, want passed", res.Status)
		}
		if !strings.Contains(res.Description, "Brotli") {
			t.Errorf("description = %q", res.Description)
		}
	})

	t.Run("uncompressed fails", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("plain"))
		}))
		res := a.checkTextCompression(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})
}

func TestCheckHTTPRedirect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no upgrade fails", func(t *testing.T) {
		t.Parallel()
		// The test server serves plain http and never redirects, so the
		// final URL stays http.
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))
		res := a.checkHTTPRedirect(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})

	t.Run("unreachable host fails", func(t *testing.T) {
		t.Parallel()
		a, srv := netAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // force connection errors
		res := a.checkHTTPRedirect(ctx, mustDoc(t, "<html></html>", srv.URL+"/page"))
		if res.Status != StatusFailed {
			t.Errorf("status = %q, want failed", res.Status)
		}
	})
}
