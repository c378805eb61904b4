// Package storage defines the snapshot source interface for the Kindred
// system.
//
// The kinship engine itself never touches persistence: it consumes an
// immutable in-memory graph snapshot. A SnapshotSource is the read-only
// collaborator that populates that snapshot, whether from a local file,
// a SQLite database, or a remote relational backend. Sources load the two
// record collections (individuals, family units) and nothing else.
package storage

import (
	"context"
	"errors"

	"github.com/kindredhq/kindred/internal/graph"
)

var (
	// ErrInvalidInput indicates malformed source data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates the backing store could not be reached.
	ErrSourceUnavailable = errors.New("snapshot source unavailable")
)

// SnapshotSource loads consistent family graph snapshots.
// Each Load returns a fresh snapshot; callers swap it in atomically so
// in-flight queries keep the snapshot they started with.
type SnapshotSource interface {
	// Load reads the full graph and builds a snapshot.
	Load(ctx context.Context) (*graph.Snapshot, error)

	// Close releases any resources held by the source.
	Close() error
}
