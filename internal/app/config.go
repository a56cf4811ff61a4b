package app

import (
	"github.com/seolens/seolens/internal/analyzer"
	"github.com/seolens/seolens/internal/webclient"
)

// Config aggregates the per-component configuration the orchestrator wires
// together.
type Config struct {
	WebClient *webclient.Config
	Analyzer  *analyzer.Config
}

func DefaultConfig() *Config {
	return &Config{
		WebClient: webclient.DefaultConfig(),
		Analyzer:  analyzer.DefaultConfig(),
	}
}
