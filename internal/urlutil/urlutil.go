// Package urlutil holds the URL parsing and normalization helpers shared by
// the analyzers and the link scanner.
package urlutil

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"

	"golang.org/x/net/idna"
)

// URLTools wraps a parsed URL with normalization applied at construction.
type URLTools struct {
	URL *url.URL
}

func New(raw string) (*URLTools, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse url %s: %w", raw, err)
	}

	ut := &URLTools{URL: u}
	ut.normalize()

	return ut, nil
}

func (u *URLTools) normalize() {
	u.URL.Fragment = ""
	u.URL.Scheme = strings.ToLower(u.URL.Scheme)

	host := strings.ToLower(u.URL.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil && puny != "" {
		host = puny
	}

	port := u.URL.Port()
	if (u.URL.Scheme == "http" && port == "80") || (u.URL.Scheme == "https" && port == "443") {
		u.URL.Host = host
	} else if port != "" {
		u.URL.Host = net.JoinHostPort(host, port)
	} else {
		u.URL.Host = host
	}
}

// SameHost reports whether target resolves to the same hostname.
func (u *URLTools) SameHost(target *URLTools) bool {
	return u.URL.Hostname() == target.URL.Hostname()
}

// SameHostString parses targetURL and compares hostnames.
func (u *URLTools) SameHostString(targetURL string) (bool, error) {
	parsed, err := New(targetURL)
	if err != nil {
		return false, err
	}
	return u.SameHost(parsed), nil
}

// Resolve resolves ref against u and returns an absolute URL string.
func (u *URLTools) Resolve(ref string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("couldn't parse href %q: %w", ref, err)
	}
	return u.URL.ResolveReference(parsed).String(), nil
}

// Origin returns scheme://host for u.
func (u *URLTools) Origin() string {
	return u.URL.Scheme + "://" + u.URL.Host
}

// trackingParamPrefixes are query parameter prefixes that indicate session or
// campaign tracking. Matching is prefix-based so utm_source, utm_medium etc.
// all collapse onto "utm_".
var trackingParamPrefixes = []string{"sid", "sessionid", "utm_", "fbclid", "gclid"}

// TrackingParams returns the query parameter names of u that look like
// session or campaign tracking parameters, sorted so repeated analysis of
// the same URL reports them identically.
func TrackingParams(u *url.URL) []string {
	var out []string
	for key := range u.Query() {
		lower := strings.ToLower(key)
		for _, prefix := range trackingParamPrefixes {
			if strings.HasPrefix(lower, prefix) {
				out = append(out, key)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// PathSegments splits the URL path into its non-empty segments.
func PathSegments(u *url.URL) []string {
	clean := path.Clean(u.Path)
	if clean == "/" || clean == "." {
		return nil
	}
	var segs []string
	for _, s := range strings.Split(clean, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
