// Package file provides a snapshot source that reads a YAML or JSON
// document mirroring the in-memory graph shape exactly: one list of
// individuals and one list of family units. YAML is a superset of JSON, so
// a single decoder covers both.
package file

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kindredhq/kindred/internal/graph"
	"github.com/kindredhq/kindred/internal/storage"
	"github.com/kindredhq/kindred/pkg/types"
)

// Document is the on-disk shape: the two record collections and nothing
// else.
type Document struct {
	Individuals []*types.Individual `json:"individuals" yaml:"individuals"`
	Families    []*types.FamilyUnit `json:"families" yaml:"families"`
}

// Source implements storage.SnapshotSource over a graph document on disk.
type Source struct {
	path string
}

// NewSource creates a source for the given document path. The file is read
// on every Load, so edits are picked up by the next reload.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and decodes the document and builds a snapshot.
func (s *Source) Load(ctx context.Context) (*graph.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("file: failed to read %s: %w", s.path, err)
	}

	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("file: %s: %w", s.path, err)
	}
	return snap, nil
}

// Close is a no-op; the source holds no resources between loads.
func (s *Source) Close() error {
	return nil
}

// Decode parses a graph document and builds a snapshot.
func Decode(data []byte) (*graph.Snapshot, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrInvalidInput, err)
	}

	builder := graph.NewBuilder()
	for _, ind := range doc.Individuals {
		if ind == nil || ind.ID == "" {
			return nil, fmt.Errorf("%w: individual without id", storage.ErrInvalidInput)
		}
		if ind.Sex != types.SexMale && ind.Sex != types.SexFemale {
			ind.Sex = types.SexUnknown
		}
		builder.AddIndividual(ind)
	}
	for _, fam := range doc.Families {
		if fam == nil || fam.ID == "" {
			return nil, fmt.Errorf("%w: family unit without id", storage.ErrInvalidInput)
		}
		builder.AddFamilyUnit(fam)
	}

	return builder.Build(), nil
}
