package webclient

import "time"

const (
	// DefaultUserAgent identifies the service on every outbound request.
	DefaultUserAgent = "SeolensBot/1.0"

	// DefaultTimeout bounds every outbound request. Timeouts are the only
	// cancellation mechanism besides the caller's context.
	DefaultTimeout = 10 * time.Second
)

// Config is the minimal configuration required for constructing a WebClient.
type Config struct {
	// Backend names the registered backend constructor ("nethttp" default).
	Backend string

	// Timeout for each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// UserAgent sent with each request. Empty means DefaultUserAgent.
	UserAgent string

	// MaxBodyBytes limits how much of a response body is read.
	// Zero means 10 MiB.
	MaxBodyBytes int64

	// FollowRedirects controls whether the client follows 3xx responses.
	// The page fetch and most probes follow them; link HEAD probes do too.
	FollowRedirects bool
}

func DefaultConfig() *Config {
	return &Config{
		Backend:         "nethttp",
		Timeout:         DefaultTimeout,
		UserAgent:       DefaultUserAgent,
		MaxBodyBytes:    10 << 20,
		FollowRedirects: true,
	}
}
