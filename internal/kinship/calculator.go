// Package kinship implements the genealogical relationship inference engine.
// Given a family graph snapshot, it classifies the relationship between any
// ordered pair of individuals (ancestor, cousin, in-law, ...) and, when no
// named relation exists, synthesizes a human-readable relationship chain
// along the shortest connecting path.
package kinship

import (
	"sort"

	"github.com/kindredhq/kindred/internal/graph"
	"github.com/kindredhq/kindred/pkg/types"
)

// Calculator answers kinship queries over one immutable graph snapshot.
// It holds no mutable state across queries; the spouse-fallback recursion
// guard is threaded through calls as an explicit parameter, so a single
// Calculator is safe for concurrent use.
type Calculator struct {
	acc *graph.Accessor
}

// NewCalculator builds a calculator over the given snapshot.
func NewCalculator(snap *graph.Snapshot) *Calculator {
	return &Calculator{acc: graph.NewAccessor(snap)}
}

// Accessor exposes the underlying graph accessor.
func (c *Calculator) Accessor() *graph.Accessor {
	return c.acc
}

// FindRelationship classifies the relationship from fromID to toID.
// It is total over any pair of id strings: garbage ids, dangling references,
// and cyclic ancestor data all degrade to a result rather than failing.
//
// Precedence, first match wins: identity, direct spouse, blood relation via
// nearest common ancestor, in-law checks, spouse's-blood-relative fallback,
// unknown.
func (c *Calculator) FindRelationship(fromID, toID string) *types.Relationship {
	return c.classify(fromID, toID, false)
}

// classify runs the precedence pipeline. skipSpouseFallback is the
// single-level recursion guard: the spouse-relative fallback classifies the
// spouse's relation with the guard engaged, so a fallback can never recurse
// into another fallback (spouse<->spouse bouncing).
func (c *Calculator) classify(fromID, toID string, skipSpouseFallback bool) *types.Relationship {
	if fromID == toID {
		return &types.Relationship{Kind: types.KindSelf, Label: labelSelf}
	}

	if c.isSpouse(fromID, toID) {
		return &types.Relationship{
			Kind:  types.KindSpouse,
			Label: spouseLabel(c.acc.Snapshot().SexOf(toID)),
		}
	}

	if rel := c.bloodRelationship(fromID, toID); rel != nil {
		return rel
	}

	if rel := c.inLawRelationship(fromID, toID); rel != nil {
		return rel
	}

	if !skipSpouseFallback {
		if rel := c.spouseRelative(fromID, toID); rel != nil {
			return rel
		}
	}

	return &types.Relationship{Kind: types.KindUnknown, Label: labelUnknown}
}

// isSpouse reports whether toID occupies the opposing spouse slot of one of
// fromID's family units.
func (c *Calculator) isSpouse(fromID, toID string) bool {
	for _, spouse := range c.acc.SpousesOf(fromID) {
		if spouse == toID {
			return true
		}
	}
	return false
}

// ancestorDepths walks upward from id through ParentsOf, recording each
// visited ancestor's minimum generation depth (0 = self, 1 = parent, ...).
// Already-visited ids are skipped, which both keeps depths minimal under
// pedigree collapse and bounds the walk on malformed cyclic data.
//
// Each visited person's FamilyAsChild unit is also recorded, at the same
// depth as the parents it stands for. The unit entry is what lets two
// children of a parentless unit still resolve a common ancestor (and thus
// classify as siblings or cousins) when the parent individuals themselves
// are unrecorded. Unit entries are markers only; the walk continues
// through parent persons.
func (c *Calculator) ancestorDepths(id string) map[string]int {
	depths := map[string]int{id: 0}
	queue := []string{id}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		depth := depths[current]

		if unit, ok := c.acc.ChildUnitOf(current); ok {
			if _, seen := depths[unit.ID]; !seen {
				depths[unit.ID] = depth + 1
			}
		}

		father, mother := c.acc.ParentsOf(current)
		for _, parent := range []string{father, mother} {
			if parent == "" {
				continue
			}
			if _, seen := depths[parent]; seen {
				continue
			}
			depths[parent] = depth + 1
			queue = append(queue, parent)
		}
	}

	return depths
}

// bloodRelationship classifies fromID and toID by their nearest common
// ancestor, or returns nil when they share none.
//
// Both endpoints must resolve to recorded individuals. Without this check a
// family unit id handed in as an endpoint would match the unit markers the
// ancestor walk records and classify as a parent or child of its own
// members instead of degrading to unknown.
func (c *Calculator) bloodRelationship(fromID, toID string) *types.Relationship {
	snap := c.acc.Snapshot()
	if _, ok := snap.Individual(fromID); !ok {
		return nil
	}
	if _, ok := snap.Individual(toID); !ok {
		return nil
	}

	fromDepths := c.ancestorDepths(fromID)
	toDepths := c.ancestorDepths(toID)

	ancestor, ok := nearestCommonAncestor(fromDepths, toDepths)
	if !ok {
		return nil
	}

	fromDepth := fromDepths[ancestor]
	toDepth := toDepths[ancestor]

	switch {
	case toDepth == 0 && fromDepth > 0:
		return &types.Relationship{
			Kind:        types.KindAncestor,
			Generations: fromDepth,
			Label:       ancestorLabel(fromDepth, snap.SexOf(toID)),
		}

	case fromDepth == 0 && toDepth > 0:
		return &types.Relationship{
			Kind:        types.KindDescendant,
			Generations: toDepth,
			Label:       descendantLabel(toDepth, snap.SexOf(toID)),
		}

	case fromDepth == 1 && toDepth == 1:
		half := c.isHalfSibling(fromID, toID)
		return &types.Relationship{
			Kind:  types.KindSibling,
			Half:  half,
			Label: siblingLabel(half, snap.SexOf(toID)),
		}

	case fromDepth >= 2 && toDepth == 1:
		great := fromDepth - 2
		return &types.Relationship{
			Kind:  types.KindUncleAunt,
			Great: great,
			Label: uncleAuntLabel(great, snap.SexOf(toID)),
		}

	case fromDepth == 1 && toDepth >= 2:
		great := toDepth - 2
		return &types.Relationship{
			Kind:  types.KindNephewNiece,
			Great: great,
			Label: nephewNieceLabel(great, snap.SexOf(toID)),
		}

	case fromDepth >= 2 && toDepth >= 2:
		degree := minInt(fromDepth, toDepth) - 1
		removed := absInt(fromDepth - toDepth)
		return &types.Relationship{
			Kind:    types.KindCousin,
			Degree:  degree,
			Removed: removed,
			Label:   cousinLabel(degree, removed),
		}

	default:
		// Unreachable for non-negative depth pairs with a common ancestor,
		// kept as an explicit sentinel rather than a panic.
		return &types.Relationship{Kind: types.KindUnknown, Label: labelDistant}
	}
}

// nearestCommonAncestor selects, among ids present in both depth maps, the
// one minimizing the total path length fromDepth+toDepth. Ties break to the
// smallest id: deterministic and stable, and the choice never affects
// generation counts, only which equally-near ancestor is reported nearest.
func nearestCommonAncestor(fromDepths, toDepths map[string]int) (string, bool) {
	var candidates []string
	for id := range fromDepths {
		if _, ok := toDepths[id]; ok {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Strings(candidates)

	best := candidates[0]
	bestTotal := fromDepths[best] + toDepths[best]
	for _, id := range candidates[1:] {
		if total := fromDepths[id] + toDepths[id]; total < bestTotal {
			best = id
			bestTotal = total
		}
	}
	return best, true
}

// isHalfSibling derives half-sibling status for two individuals already
// classified as siblings. Full siblings are exactly the children of one
// shared unit that has both parent slots filled; children of different
// units reaching sibling classification share only one parent and are half,
// as are children of a shared single-parent unit.
func (c *Calculator) isHalfSibling(fromID, toID string) bool {
	fromUnit, fromOK := c.acc.ChildUnitOf(fromID)
	toUnit, toOK := c.acc.ChildUnitOf(toID)
	if !fromOK || !toOK {
		return true
	}
	if fromUnit.ID == toUnit.ID {
		return !fromUnit.HasBothParents()
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
