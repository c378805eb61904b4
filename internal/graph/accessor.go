package graph

// Accessor answers structural questions about a snapshot so the kinship
// calculator never re-derives adjacency logic. Every operation is pure and
// total: missing or dangling ids yield empty results, never errors, and
// callers cannot distinguish "never existed" from "exists but childless".
type Accessor struct {
	snap *Snapshot
}

// NewAccessor creates an accessor over the given snapshot.
func NewAccessor(snap *Snapshot) *Accessor {
	return &Accessor{snap: snap}
}

// Snapshot returns the underlying snapshot.
func (a *Accessor) Snapshot() *Snapshot {
	return a.snap
}

// ParentsOf resolves id's FamilyAsChild unit and returns its parent slots.
// Either return may be empty.
func (a *Accessor) ParentsOf(id string) (father, mother string) {
	ind, ok := a.snap.Individual(id)
	if !ok || ind.FamilyAsChild == "" {
		return "", ""
	}
	fam, ok := a.snap.FamilyUnit(ind.FamilyAsChild)
	if !ok {
		return "", ""
	}
	return fam.Husband, fam.Wife
}

// SpousesOf returns, for each of id's FamilyAsSpouse units, the occupant of
// the opposing spouse slot. Units with an empty opposing slot contribute
// nothing.
func (a *Accessor) SpousesOf(id string) []string {
	ind, ok := a.snap.Individual(id)
	if !ok {
		return nil
	}
	var spouses []string
	for _, unitID := range ind.FamilyAsSpouse {
		fam, ok := a.snap.FamilyUnit(unitID)
		if !ok {
			continue
		}
		if other := fam.OtherSpouse(id); other != "" {
			spouses = appendUnique(spouses, other)
		}
	}
	return spouses
}

// ChildrenOf returns the id-deduplicated union of children across all of
// id's FamilyAsSpouse units, preserving first-seen order.
func (a *Accessor) ChildrenOf(id string) []string {
	ind, ok := a.snap.Individual(id)
	if !ok {
		return nil
	}
	var children []string
	for _, unitID := range ind.FamilyAsSpouse {
		fam, ok := a.snap.FamilyUnit(unitID)
		if !ok {
			continue
		}
		for _, child := range fam.Children {
			children = appendUnique(children, child)
		}
	}
	return children
}

// SiblingsOf returns the other children of id's FamilyAsChild unit, in unit
// order. Empty when FamilyAsChild is absent or dangling.
func (a *Accessor) SiblingsOf(id string) []string {
	ind, ok := a.snap.Individual(id)
	if !ok || ind.FamilyAsChild == "" {
		return nil
	}
	fam, ok := a.snap.FamilyUnit(ind.FamilyAsChild)
	if !ok {
		return nil
	}
	var siblings []string
	for _, child := range fam.Children {
		if child != id {
			siblings = append(siblings, child)
		}
	}
	return siblings
}

// ChildUnitOf returns the FamilyUnit id is a child of, or nil when the
// reference is absent or dangling. The calculator uses it for half-sibling
// derivation.
func (a *Accessor) ChildUnitOf(id string) (*FamilyUnitRef, bool) {
	ind, ok := a.snap.Individual(id)
	if !ok || ind.FamilyAsChild == "" {
		return nil, false
	}
	fam, ok := a.snap.FamilyUnit(ind.FamilyAsChild)
	if !ok {
		return nil, false
	}
	return &FamilyUnitRef{ID: fam.ID, Husband: fam.Husband, Wife: fam.Wife}, true
}

// FamilyUnitRef is the parent-slot view of a family unit handed out by
// ChildUnitOf, so the calculator reads parent structure without reaching
// into the snapshot's records.
type FamilyUnitRef struct {
	ID      string
	Husband string
	Wife    string
}

// HasBothParents reports whether both parent slots are filled.
func (r *FamilyUnitRef) HasBothParents() bool {
	return r.Husband != "" && r.Wife != ""
}
