package graph

import "github.com/kindredhq/kindred/pkg/types"

// Builder assembles a Snapshot. Snapshot sources and tests add records and
// link them, then call Build; the builder copies nothing on add, so records
// must not be mutated after Build.
type Builder struct {
	individuals map[string]*types.Individual
	families    map[string]*types.FamilyUnit
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		individuals: make(map[string]*types.Individual),
		families:    make(map[string]*types.FamilyUnit),
	}
}

// AddIndividual registers an individual record, replacing any record with
// the same id.
func (b *Builder) AddIndividual(ind *types.Individual) *Builder {
	b.individuals[ind.ID] = ind
	return b
}

// AddFamilyUnit registers a family unit record, replacing any record with
// the same id, and appends the unit id to the FamilyAsSpouse list of each
// resolvable parent.
func (b *Builder) AddFamilyUnit(fam *types.FamilyUnit) *Builder {
	b.families[fam.ID] = fam
	for _, parent := range []string{fam.Husband, fam.Wife} {
		if ind, ok := b.individuals[parent]; ok {
			ind.FamilyAsSpouse = appendUnique(ind.FamilyAsSpouse, fam.ID)
		}
	}
	return b
}

// AddChild appends childID to the unit's child list and sets the child's
// FamilyAsChild reference. Unknown unit ids are ignored; the child record
// need not exist yet (the reference stays weak either way).
func (b *Builder) AddChild(unitID, childID string) *Builder {
	fam, ok := b.families[unitID]
	if !ok {
		return b
	}
	fam.Children = appendUnique(fam.Children, childID)
	if ind, ok := b.individuals[childID]; ok {
		ind.FamilyAsChild = unitID
	}
	return b
}

// NewPerson creates, registers, and returns a fresh individual.
func (b *Builder) NewPerson(name string, sex types.Sex) *types.Individual {
	ind := types.NewIndividual(name, sex)
	b.AddIndividual(ind)
	return ind
}

// Union creates and registers a family unit for the given parents and
// returns it. Either parent id may be empty.
func (b *Builder) Union(husbandID, wifeID string) *types.FamilyUnit {
	fam := types.NewFamilyUnit(husbandID, wifeID)
	b.AddFamilyUnit(fam)
	return fam
}

// Build finalizes the snapshot. The builder remains usable; later additions
// do not affect snapshots already built from the shared record maps only
// when callers stop mutating records, which is the documented contract.
func (b *Builder) Build() *Snapshot {
	individuals := make(map[string]*types.Individual, len(b.individuals))
	for id, ind := range b.individuals {
		individuals[id] = ind
	}
	families := make(map[string]*types.FamilyUnit, len(b.families))
	for id, fam := range b.families {
		families[id] = fam
	}
	return &Snapshot{individuals: individuals, families: families}
}

// appendUnique appends v to list unless already present, preserving order.
func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
