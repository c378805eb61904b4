package kinship

import "github.com/kindredhq/kindred/pkg/types"

// inLawRelationship runs the direct in-law checks in fixed order, first
// match wins: spouse's parent, spouse's sibling, sibling's spouse, child's
// spouse. Returns nil when none applies.
func (c *Calculator) inLawRelationship(fromID, toID string) *types.Relationship {
	snap := c.acc.Snapshot()
	spouses := c.acc.SpousesOf(fromID)

	// a. Current spouse's parent.
	for _, spouse := range spouses {
		father, mother := c.acc.ParentsOf(spouse)
		if toID == father || toID == mother {
			return &types.Relationship{
				Kind:  types.KindInLaw,
				Base:  types.BaseParent,
				Label: parentInLawLabel(snap.SexOf(toID)),
			}
		}
	}

	// b. Current spouse's sibling (the spouse itself matched earlier as a
	// direct spouse, never here).
	for _, spouse := range spouses {
		for _, sibling := range c.acc.SiblingsOf(spouse) {
			if sibling == toID {
				return &types.Relationship{
					Kind:  types.KindInLaw,
					Base:  types.BaseSibling,
					Label: siblingInLawLabel(snap.SexOf(toID)),
				}
			}
		}
	}

	// c. Sibling's spouse.
	for _, sibling := range c.acc.SiblingsOf(fromID) {
		for _, spouse := range c.acc.SpousesOf(sibling) {
			if spouse == toID {
				return &types.Relationship{
					Kind:  types.KindInLaw,
					Base:  types.BaseSibling,
					Label: siblingInLawLabel(snap.SexOf(toID)),
				}
			}
		}
	}

	// d. Child's spouse.
	for _, child := range c.acc.ChildrenOf(fromID) {
		for _, spouse := range c.acc.SpousesOf(child) {
			if spouse == toID {
				return &types.Relationship{
					Kind:  types.KindInLaw,
					Base:  types.BaseChild,
					Label: childInLawLabel(snap.SexOf(toID)),
				}
			}
		}
	}

	return nil
}

// spouseRelative is the spouse's-blood-relative fallback: for each current
// spouse of fromID, classify that spouse's relation to toID with the
// recursion guard engaged. The first spouse with a named relation wins and
// the result wraps it ("Spouse's Brother", "Spouse's 1st Cousin", ...).
//
// Only the top-level entry point reaches this; the guard makes the extra
// work O(spouses) rather than letting fallbacks chain through remarriages.
func (c *Calculator) spouseRelative(fromID, toID string) *types.Relationship {
	for _, spouse := range c.acc.SpousesOf(fromID) {
		rel := c.classify(spouse, toID, true)
		if rel.Named() {
			return &types.Relationship{
				Kind:  types.KindInLaw,
				Base:  types.BaseSpouseRelative,
				Via:   rel,
				Label: "Spouse's " + rel.Label,
			}
		}
	}
	return nil
}
