// Package server provides HTTP server initialization and lifecycle
// management for the Kindred query API, and the App that owns the current
// graph snapshot.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/kindredhq/kindred/internal/config"
	"github.com/kindredhq/kindred/internal/graph"
	"github.com/kindredhq/kindred/internal/kinship"
	"github.com/kindredhq/kindred/internal/storage"
	"github.com/kindredhq/kindred/web/handlers"
)

// App owns the current snapshot and its calculator. The calculator pointer
// is swapped atomically on reload, so in-flight queries keep the snapshot
// they started with while new requests see the fresh one. That gives each
// query the snapshot isolation the engine's contract requires.
type App struct {
	source storage.SnapshotSource
	calc   atomic.Pointer[kinship.Calculator]
}

// NewApp loads the initial snapshot from the source and builds the app.
func NewApp(ctx context.Context, source storage.SnapshotSource) (*App, error) {
	app := &App{source: source}
	if _, err := app.Reload(ctx); err != nil {
		return nil, fmt.Errorf("server: initial snapshot load failed: %w", err)
	}
	return app, nil
}

// NewAppWithSnapshot builds an app over a fixed snapshot, with no source.
// Used by tests and embedding callers that manage snapshots themselves.
func NewAppWithSnapshot(snap *graph.Snapshot) *App {
	app := &App{}
	app.calc.Store(kinship.NewCalculator(snap))
	return app
}

// Calculator returns the calculator bound to the current snapshot.
func (a *App) Calculator() *kinship.Calculator {
	return a.calc.Load()
}

// Reload re-reads the snapshot source and swaps in the new snapshot.
func (a *App) Reload(ctx context.Context) (*handlers.ReloadStats, error) {
	if a.source == nil {
		snap := a.Calculator().Accessor().Snapshot()
		return &handlers.ReloadStats{
			Individuals: snap.IndividualCount(),
			FamilyUnits: snap.FamilyUnitCount(),
		}, nil
	}

	snap, err := a.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	a.calc.Store(kinship.NewCalculator(snap))

	return &handlers.ReloadStats{
		Individuals: snap.IndividualCount(),
		FamilyUnits: snap.FamilyUnitCount(),
	}, nil
}

// securityHeadersMiddleware adds security headers to all HTTP responses.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// Start initializes and starts the HTTP server.
// Returns the actual address being listened on (useful for testing with
// port 0) and the WatchHub for wiring external snapshot-change broadcasts.
// The server shuts down when ctx is cancelled.
func Start(ctx context.Context, cfg *config.Config, app *App) (string, *handlers.WatchHub) {
	mux := http.NewServeMux()

	var hub *handlers.WatchHub
	if cfg.Features.EnableWatch {
		hub = handlers.NewWatchHub()
		go hub.Run()
		mux.Handle("/api/watch", hub)
	}

	api := handlers.NewAPIHandlers(app, hub)
	mux.HandleFunc("/api/relationship", api.GetRelationship)
	mux.HandleFunc("/api/path", api.GetPath)
	mux.HandleFunc("/api/health", api.GetHealth)
	mux.HandleFunc("/api/reload", api.Reload)

	rateLimiter := handlers.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateBurst)
	handler := securityHeadersMiddleware(handlers.RateLimitMiddleware(mux, rateLimiter))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	// No read/write timeouts: /api/watch holds long-lived websocket
	// connections and manages its own per-write deadlines.
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	actualAddr := listener.Addr().String()

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		if hub != nil {
			hub.Stop()
		}
	}()

	return actualAddr, hub
}
