package document

import (
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	html := []byte(`<html><head><title>Hi</title></head><body></body></html>`)
	headers := http.Header{}
	headers.Set("Content-Type", "text/html")

	doc, err := New(html, "https://example.com/page", headers)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Doc.Find("title").Text(); got != "Hi" {
		t.Errorf("title = %q, want Hi", got)
	}
	if got := doc.Header("content-type"); got != "text/html" {
		t.Errorf("Header lookup = %q, want text/html", got)
	}
	if got := doc.Origin(); got != "https://example.com" {
		t.Errorf("Origin = %q", got)
	}
}

func TestNewRejectsRelativeURL(t *testing.T) {
	t.Parallel()

	if _, err := New([]byte("<html></html>"), "/relative/only", nil); err == nil {
		t.Error("expected error for URL without scheme and host")
	}
}

func TestNewNilHeaders(t *testing.T) {
	t.Parallel()

	doc, err := New([]byte("<html></html>"), "https://example.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Header("anything") != "" {
		t.Error("expected empty header lookup on nil headers")
	}
}
