package webclient

import "context"

// WebClient is the outbound HTTP contract. Every network request the
// analyzers make (page fetch, robots.txt, probes, link checks) goes through
// an implementation of this interface so tests can substitute transports.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	// Get is a convenience method for simple GET requests
	Get(ctx context.Context, url string) (*Response, error)

	Close() error
}
