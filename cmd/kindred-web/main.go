// Command kindred-web serves the kinship query API over HTTP.
// It loads the family graph snapshot from the configured source (file,
// sqlite, or postgres) and answers relationship and path queries against it;
// POST /api/reload swaps in a fresh snapshot.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kindredhq/kindred/internal/config"
	"github.com/kindredhq/kindred/internal/server"
	"github.com/kindredhq/kindred/internal/storage"
	"github.com/kindredhq/kindred/internal/storage/file"
	"github.com/kindredhq/kindred/internal/storage/postgres"
	"github.com/kindredhq/kindred/internal/storage/sqlite"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	source, err := openSource(cfg)
	if err != nil {
		log.Fatalf("Failed to open snapshot source: %v", err)
	}
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := server.NewApp(ctx, source)
	if err != nil {
		log.Fatalf("Failed to load initial snapshot: %v", err)
	}

	addr, _ := server.Start(ctx, cfg, app)
	log.Printf("Kindred query API running at http://%s", addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")
	cancel()
	time.Sleep(1 * time.Second) // Give time for connections to close
}

// openSource builds the snapshot source selected by configuration.
func openSource(cfg *config.Config) (storage.SnapshotSource, error) {
	switch cfg.Storage.SourceEngine {
	case "file":
		return file.NewSource(cfg.Storage.GraphPath), nil
	case "sqlite":
		return sqlite.NewSource(cfg.Storage.SQLitePath)
	case "postgres":
		if cfg.Storage.PostgresDSN == "" {
			return nil, fmt.Errorf("KINDRED_POSTGRES_DSN is required for the postgres source")
		}
		return postgres.NewSource(cfg.Storage.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown source engine %q", cfg.Storage.SourceEngine)
	}
}
