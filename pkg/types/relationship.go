package types

// Kind is the closed set of relationship classifications the engine can
// produce. Exactly one kind applies to any ordered pair of individuals;
// parameter fields on Relationship qualify the kind (generation counts,
// cousin degree, and so on).
type Kind int

const (
	// KindUnknown is the sentinel for pairs with no named relation.
	KindUnknown Kind = iota

	// KindSelf: the two ids are identical.
	KindSelf

	// KindSpouse: the target occupies the opposing spouse slot of one of the
	// subject's family units.
	KindSpouse

	// KindAncestor: the target is a direct ancestor (Generations >= 1).
	KindAncestor

	// KindDescendant: the target is a direct descendant (Generations >= 1).
	KindDescendant

	// KindSibling: shared parent generation (Half qualifies).
	KindSibling

	// KindUncleAunt: parent's sibling, possibly Great-removed.
	KindUncleAunt

	// KindNephewNiece: sibling's descendant, possibly Great-removed.
	KindNephewNiece

	// KindCousin: collateral blood relation (Degree, Removed qualify).
	KindCousin

	// KindInLaw: a relation mediated through a spouse link. Base names the
	// direct relation it derives from; Via carries the spouse's own relation
	// when the classification came from the spouse-relative fallback.
	KindInLaw
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindSelf:
		return "self"
	case KindSpouse:
		return "spouse"
	case KindAncestor:
		return "ancestor"
	case KindDescendant:
		return "descendant"
	case KindSibling:
		return "sibling"
	case KindUncleAunt:
		return "uncle_aunt"
	case KindNephewNiece:
		return "nephew_niece"
	case KindCousin:
		return "cousin"
	case KindInLaw:
		return "in_law"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so Kind serializes as its
// wire name in JSON responses.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText, so API clients can decode responses into the declared types.
// Unrecognized names decode as KindUnknown.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "self":
		*k = KindSelf
	case "spouse":
		*k = KindSpouse
	case "ancestor":
		*k = KindAncestor
	case "descendant":
		*k = KindDescendant
	case "sibling":
		*k = KindSibling
	case "uncle_aunt":
		*k = KindUncleAunt
	case "nephew_niece":
		*k = KindNephewNiece
	case "cousin":
		*k = KindCousin
	case "in_law":
		*k = KindInLaw
	default:
		*k = KindUnknown
	}
	return nil
}

// BaseRelation names the direct relation an in-law result derives from,
// for structured consumers that need more than the label.
type BaseRelation string

const (
	// BaseParent: spouse's parent (Father-in-law/Mother-in-law).
	BaseParent BaseRelation = "parent"

	// BaseSibling: spouse's sibling or sibling's spouse.
	BaseSibling BaseRelation = "sibling"

	// BaseChild: child's spouse (Son-in-law/Daughter-in-law).
	BaseChild BaseRelation = "child"

	// BaseSpouseRelative: the spouse's own blood relation, wrapped by the
	// spouse-relative fallback ("Spouse's ...").
	BaseSpouseRelative BaseRelation = "spouse_relative"
)

// Relationship is the structured result of a kinship query.
// Kind discriminates; the remaining fields are meaningful only for the kinds
// documented on each.
type Relationship struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label"` // Display label, always populated

	// Generations is the generation distance for ancestor/descendant
	// (1 = parent/child, 2 = grandparent/grandchild, ...).
	Generations int `json:"generations,omitempty"`

	// Half marks a half-sibling (sibling kind only).
	Half bool `json:"half,omitempty"`

	// Great counts the Great- prefixes for uncle/aunt and nephew/niece.
	Great int `json:"great,omitempty"`

	// Degree and Removed qualify cousin relations.
	Degree  int `json:"degree,omitempty"`
	Removed int `json:"removed,omitempty"`

	// Base is set for in-law results.
	Base BaseRelation `json:"base,omitempty"`

	// Via is the spouse's own relation when Base is BaseSpouseRelative.
	Via *Relationship `json:"via,omitempty"`
}

// Named reports whether the relationship is a usable named relation: neither
// the unknown sentinel nor self. The spouse-relative fallback wraps only
// named relations.
func (r *Relationship) Named() bool {
	return r.Kind != KindUnknown && r.Kind != KindSelf
}
