package handlers

import (
	"context"

	"github.com/kindredhq/kindred/internal/kinship"
	"github.com/kindredhq/kindred/pkg/types"
)

// SnapshotService is what the handlers need from the application: the
// calculator for the current snapshot, and a way to reload the snapshot
// from the configured source.
type SnapshotService interface {
	// Calculator returns the calculator bound to the current snapshot.
	// Handlers capture it once per request so every query runs against one
	// consistent snapshot even while a reload swaps the pointer.
	Calculator() *kinship.Calculator

	// Reload re-reads the snapshot source and swaps in the new snapshot.
	Reload(ctx context.Context) (*ReloadStats, error)
}

// ReloadStats summarizes a snapshot reload.
type ReloadStats struct {
	Individuals int `json:"individuals"`
	FamilyUnits int `json:"family_units"`
}

// ErrorResponse is the standard error response format for the API.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RelationshipResponse is the response format for GET /api/relationship.
type RelationshipResponse struct {
	From         string              `json:"from"`
	To           string              `json:"to"`
	Relationship *types.Relationship `json:"relationship"`
}

// PathResponse is the response format for GET /api/path.
// An empty path means the two individuals are disconnected.
type PathResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Path  []string `json:"path"`
	Chain string   `json:"chain,omitempty"`
}

// HealthResponse is the response format for GET /api/health.
type HealthResponse struct {
	Status      string `json:"status"`
	Individuals int    `json:"individuals"`
	FamilyUnits int    `json:"family_units"`
}

// WatchEvent is broadcast to /api/watch clients when the snapshot changes,
// so they know to re-run their queries.
type WatchEvent struct {
	Type        string `json:"type"` // "snapshot_reloaded"
	Individuals int    `json:"individuals"`
	FamilyUnits int    `json:"family_units"`
}
