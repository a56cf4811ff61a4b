package linkscan

// Config bounds the scanner's network fan-out.
type Config struct {
	// ProbeLimit caps how many resolved URLs are probed for liveness.
	// Targets past the cap are classified by host only and trusted alive.
	ProbeLimit int

	// Workers sizes the probe worker pool.
	Workers int

	// MaxBrokenExamples caps the broken-link evidence carried in a Result.
	MaxBrokenExamples int
}

func DefaultConfig() *Config {
	return &Config{
		ProbeLimit:        20,
		Workers:           5,
		MaxBrokenExamples: 10,
	}
}
