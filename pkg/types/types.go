// Package types defines the core data structures for the Kindred kinship
// system: individuals, family units, and the relationship results produced
// by the inference engine.
package types

import "github.com/google/uuid"

// Sex is the recorded biological sex of an individual. It is used only for
// gendering relationship labels, never for graph topology.
type Sex string

const (
	// SexMale selects masculine labels (Father, Brother, Husband, ...).
	SexMale Sex = "M"

	// SexFemale selects feminine labels (Mother, Sister, Wife, ...).
	SexFemale Sex = "F"

	// SexUnknown selects neutral labels (Parent, Sibling, Spouse, ...).
	SexUnknown Sex = "U"
)

// NewIndividualID mints a new individual id (format: ind:uuid).
func NewIndividualID() string {
	return "ind:" + uuid.NewString()
}

// NewFamilyUnitID mints a new family unit id (format: fam:uuid).
func NewFamilyUnitID() string {
	return "fam:" + uuid.NewString()
}
