// Package handlers provides the HTTP surface for kinship queries: JSON
// endpoints for relationship and path lookups, rate limiting middleware,
// and a websocket that notifies clients of snapshot reloads.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// APIHandlers contains the HTTP handlers for the kinship query API.
type APIHandlers struct {
	service SnapshotService
	hub     *WatchHub // optional; nil when the watch feature is disabled
}

// NewAPIHandlers creates handlers over the given service. hub may be nil.
func NewAPIHandlers(service SnapshotService, hub *WatchHub) *APIHandlers {
	return &APIHandlers{service: service, hub: hub}
}

// GetRelationship handles GET /api/relationship?from=ID&to=ID.
// The engine is total: unknown or garbage ids yield an unknown-kind result,
// never an error status.
func (h *APIHandlers) GetRelationship(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		respondError(w, http.StatusBadRequest, "missing required parameters: from, to", nil)
		return
	}

	calc := h.service.Calculator()
	respondJSON(w, http.StatusOK, RelationshipResponse{
		From:         from,
		To:           to,
		Relationship: calc.FindRelationship(from, to),
	})
}

// GetPath handles GET /api/path?from=ID&to=ID, returning the shortest
// connecting path and its possessive chain label. An empty path means no
// connection was found.
func (h *APIHandlers) GetPath(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		respondError(w, http.StatusBadRequest, "missing required parameters: from, to", nil)
		return
	}

	calc := h.service.Calculator()
	path, chain := calc.FindChain(from, to)
	if path == nil {
		path = []string{}
	}
	respondJSON(w, http.StatusOK, PathResponse{
		From:  from,
		To:    to,
		Path:  path,
		Chain: chain,
	})
}

// GetHealth handles GET /api/health.
func (h *APIHandlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Calculator().Accessor().Snapshot()
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Individuals: snap.IndividualCount(),
		FamilyUnits: snap.FamilyUnitCount(),
	})
}

// Reload handles POST /api/reload: re-read the snapshot source, swap the
// snapshot, and notify watch clients.
func (h *APIHandlers) Reload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	stats, err := h.service.Reload(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "snapshot reload failed", err)
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(WatchEvent{
			Type:        "snapshot_reloaded",
			Individuals: stats.Individuals,
			FamilyUnits: stats.FamilyUnits,
		})
	}

	respondJSON(w, http.StatusOK, stats)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers already sent; log instead of writing a second response.
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// respondError writes an error response with the given status code.
func respondError(w http.ResponseWriter, statusCode int, message string, err error) {
	errResp := ErrorResponse{
		Error: message,
		Code:  http.StatusText(statusCode),
	}
	if err != nil {
		errResp.Details = map[string]interface{}{
			"error": err.Error(),
		}
	}
	respondJSON(w, statusCode, errResp)
}
