// Package graph holds the in-memory family graph: an arena-style snapshot
// owning all Individual and FamilyUnit records, and a read-only accessor
// that derives adjacency (parents, spouses, children, siblings) on demand.
//
// A snapshot is immutable once built. Mutation is the concern of external
// collaborators and always produces a new snapshot, so any single kinship
// query runs against a consistent view.
package graph

import "github.com/kindredhq/kindred/pkg/types"

// Snapshot is the arena for one consistent state of the family graph.
// All cross-references between records are plain ids resolved through the
// snapshot's maps; records never embed pointers to each other.
type Snapshot struct {
	individuals map[string]*types.Individual
	families    map[string]*types.FamilyUnit
}

// Individual resolves an individual id. The second return is false for
// missing or dangling ids.
func (s *Snapshot) Individual(id string) (*types.Individual, bool) {
	ind, ok := s.individuals[id]
	return ind, ok
}

// FamilyUnit resolves a family unit id. The second return is false for
// missing or dangling ids.
func (s *Snapshot) FamilyUnit(id string) (*types.FamilyUnit, bool) {
	fam, ok := s.families[id]
	return fam, ok
}

// IndividualCount returns the number of individuals in the snapshot.
func (s *Snapshot) IndividualCount() int {
	return len(s.individuals)
}

// FamilyUnitCount returns the number of family units in the snapshot.
func (s *Snapshot) FamilyUnitCount() int {
	return len(s.families)
}

// SexOf returns the recorded sex for id, or SexUnknown when the id does not
// resolve. Used for label gendering only.
func (s *Snapshot) SexOf(id string) types.Sex {
	if ind, ok := s.individuals[id]; ok {
		return ind.Sex
	}
	return types.SexUnknown
}
