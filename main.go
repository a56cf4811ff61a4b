// Command seolens starts the page-analysis and comment-sentiment API server.
package main

import (
	"log"
	"os"

	"github.com/seolens/seolens/internal/cli"
	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/server"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}

	logger := logging.NewStdoutLogger("seolens")

	cfg := server.DefaultConfig()
	cfg.ListenAddr = args.ListenAddr
	cfg.DBPath = args.DBPath
	cfg.AppConfig.WebClient.Timeout = args.FetchTimeout
	cfg.ScraperConfig.APIToken = args.ApifyToken
	cfg.Logger = logger

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("create server: %v", err)
	}
	defer srv.Close()

	logger.Info("listening", logging.Field{Key: "addr", Value: cfg.ListenAddr})
	if err := srv.HTTPServer().ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
