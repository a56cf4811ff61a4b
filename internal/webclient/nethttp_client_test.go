package webclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDoSetsUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	wc, err := NewNetHTTPClient(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer wc.Close()

	if _, err := wc.Get(context.Background(), srv.URL); err != nil {
		t.Fatal(err)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
}

func TestDoCapturesFinalURLAfterRedirect(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("landed"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	wc, err := NewNetHTTPClient(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer wc.Close()

	resp, err := wc.Get(context.Background(), srv.URL+"/start")
	if err != nil {
		t.Fatal(err)
	}
	if resp.FinalURL != srv.URL+"/final" {
		t.Errorf("FinalURL = %q, want %q", resp.FinalURL, srv.URL+"/final")
	}
	if string(resp.Body) != "landed" {
		t.Errorf("body = %q, want landed", resp.Body)
	}
}

func TestDoLimitsBodySize(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 1024)))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.MaxBodyBytes = 100
	wc, err := NewNetHTTPClient(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer wc.Close()

	resp, err := wc.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Body) != 100 {
		t.Errorf("body length = %d, want 100", len(resp.Body))
	}
}

func TestDoExtraHeaders(t *testing.T) {
	t.Parallel()

	var gotEncoding string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEncoding = r.Header.Get("Accept-Encoding")
	}))
	defer srv.Close()

	wc, err := NewNetHTTPClient(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer wc.Close()

	headers := make(http.Header)
	headers.Set("Accept-Encoding", "gzip, br")
	if _, err := wc.Do(context.Background(), &Request{URL: srv.URL, Headers: headers}); err != nil {
		t.Fatal(err)
	}
	if gotEncoding != "gzip, br" {
		t.Errorf("Accept-Encoding = %q, want explicit value", gotEncoding)
	}
}

func TestDoNilRequest(t *testing.T) {
	t.Parallel()

	wc, err := NewNetHTTPClient(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer wc.Close()

	if _, err := wc.Do(context.Background(), nil); err == nil {
		t.Error("expected error for nil request")
	}
}

func TestFactoryRegistry(t *testing.T) {
	t.Parallel()

	backends := ListBackends()
	found := false
	for _, b := range backends {
		if b == "nethttp" {
			found = true
		}
	}
	if !found {
		t.Fatalf("nethttp backend not registered: %v", backends)
	}

	wc, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer wc.Close()

	if _, err := New(&Config{Backend: "nope"}, nil); err == nil {
		t.Error("expected error for unknown backend")
	}
}
