package types

// FamilyUnit represents a parental/marital union. It is the sole structural
// link between generations: parenthood and siblinghood are derived from
// units, never stored directly on Individual.
type FamilyUnit struct {
	// Core identification fields
	ID string `json:"id" yaml:"id"` // Unique identifier (format: fam:uuid)

	// Husband and Wife are the parent slots. Either or both may be empty:
	// single-parent and partner-unknown families are valid.
	Husband string `json:"husband,omitempty" yaml:"husband,omitempty"`
	Wife    string `json:"wife,omitempty" yaml:"wife,omitempty"`

	// Children is the ordered child id list. Order carries birth-order
	// semantics but is not enforced.
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewFamilyUnit creates a family unit with a freshly minted id.
// Empty parent ids leave the corresponding slot unset.
func NewFamilyUnit(husband, wife string) *FamilyUnit {
	return &FamilyUnit{
		ID:      NewFamilyUnitID(),
		Husband: husband,
		Wife:    wife,
	}
}

// HasBothParents reports whether both parent slots are filled. Children of
// the same unit are full siblings only when this holds.
func (f *FamilyUnit) HasBothParents() bool {
	return f.Husband != "" && f.Wife != ""
}

// OtherSpouse returns the spouse slot that is not id, or "" when id fills
// neither slot or the other slot is empty.
func (f *FamilyUnit) OtherSpouse(id string) string {
	switch id {
	case f.Husband:
		return f.Wife
	case f.Wife:
		return f.Husband
	default:
		return ""
	}
}
