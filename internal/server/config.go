package server

import (
	"github.com/seolens/seolens/internal/app"
	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/scraper"
)

// Config configures the HTTP surface and the components it owns.
type Config struct {
	// ListenAddr is the host:port to bind.
	ListenAddr string

	// DBPath locates the analysis-history SQLite database.
	DBPath string

	AppConfig     *app.Config
	ScraperConfig *scraper.Config

	Logger logging.Logger
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:    ":8000",
		DBPath:        "seolens.db",
		AppConfig:     app.DefaultConfig(),
		ScraperConfig: scraper.DefaultConfig(),
	}
}
