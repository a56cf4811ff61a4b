package scraper

// Config holds the Apify credentials and scrape bounds. An empty APIToken
// switches every platform to deterministic mock comments, which keeps the
// sentiment endpoint usable in development.
type Config struct {
	// APIToken authenticates against the Apify API.
	APIToken string

	// MaxComments caps how many comments a single scrape requests.
	MaxComments int
}

func DefaultConfig() *Config {
	return &Config{
		MaxComments: 10,
	}
}
