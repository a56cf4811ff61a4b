// Package document holds the parsed-page context shared read-only by every
// analyzer during one analysis run.
package document

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Context is the input contract for analyzers: raw markup, the navigable
// parsed tree, the final (post-redirect) URL used to anchor all relative
// resolution, and the raw response headers.
//
// Exactly one Context exists per analysis run. It is never mutated after
// construction.
type Context struct {
	HTML     []byte
	Doc      *goquery.Document
	FinalURL *url.URL
	Headers  http.Header
}

// New parses html and builds a Context anchored at finalURL.
func New(html []byte, finalURL string, headers http.Header) (*Context, error) {
	u, err := url.Parse(finalURL)
	if err != nil {
		return nil, fmt.Errorf("parse final url %q: %w", finalURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("final url %q missing scheme or host", finalURL)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	if headers == nil {
		headers = http.Header{}
	}

	return &Context{
		HTML:     html,
		Doc:      doc,
		FinalURL: u,
		Headers:  headers,
	}, nil
}

// Header returns the named response header (case-insensitive).
func (c *Context) Header(name string) string {
	return c.Headers.Get(name)
}

// Origin returns scheme://host of the final URL.
func (c *Context) Origin() string {
	return c.FinalURL.Scheme + "://" + c.FinalURL.Host
}
