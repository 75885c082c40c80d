package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/PrateekLewis/blog-application/internal/api"
	"github.com/PrateekLewis/blog-application/internal/config"
	"github.com/PrateekLewis/blog-application/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	backend, err := session.NewSQLiteBackend(cfg.SessionFile)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer backend.Close()

	store := session.NewStore(backend, logger)

	client := api.NewClient(cfg.APIURL, store)
	client.SetHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout})

	a := &app{
		logger: logger,
		store:  store,
		client: client,
	}

	return newRootCommand(a).Execute()
}
