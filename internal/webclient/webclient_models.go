package webclient

import (
	"net/http"
	"time"
)

type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

type Response struct {
	Request    *Request
	Headers    http.Header
	Body       []byte
	StatusCode int
	// FinalURL is the URL after following redirects. Falls back to the
	// request URL when the transport doesn't track redirects.
	FinalURL  string
	FetchedAt time.Time
}
