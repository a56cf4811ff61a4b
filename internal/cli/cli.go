package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// CLIArgs are the command-line arguments for the server binary.
type CLIArgs struct {
	// ListenAddr is the host:port the HTTP server binds.
	ListenAddr string

	// DBPath locates the analysis-history SQLite database.
	DBPath string

	// ApifyToken authenticates the comment scraper; empty enables mock mode.
	ApifyToken string

	// FetchTimeout bounds each outbound page fetch.
	FetchTimeout time.Duration

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by
// passing arbitrary slices. The function is deterministic and does not read
// os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("seolens", flag.ContinueOnError)
	var (
		listen  = fs.String("listen", ":8000", "Address to bind the HTTP server")
		dbPath  = fs.String("db", "seolens.db", "Path to the analysis-history SQLite database")
		token   = fs.String("apify-token", "", "Apify API token for the comment scraper (empty = mock comments)")
		timeout = fs.Duration("fetch-timeout", 10*time.Second, "Timeout for each outbound page fetch")
	)

	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if strings.TrimSpace(*listen) == "" {
		return nil, fmt.Errorf("missing required -listen address")
	}
	if *timeout <= 0 {
		return nil, fmt.Errorf("-fetch-timeout must be positive")
	}

	return &CLIArgs{
		ListenAddr:   *listen,
		DBPath:       *dbPath,
		ApifyToken:   *token,
		FetchTimeout: *timeout,
		RawArgs:      args,
	}, nil
}
