package types

// Individual represents a person node in the family graph.
// Individuals never own family units; they hold weak id references resolved
// through the graph snapshot, so a dangling reference degrades to "no such
// family" rather than an error.
type Individual struct {
	// Core identification fields
	ID   string `json:"id" yaml:"id"`                       // Unique identifier (format: ind:uuid)
	Name string `json:"name,omitempty" yaml:"name,omitempty"` // Display name
	Sex  Sex    `json:"sex" yaml:"sex"`                     // M, F, or U; label gendering only

	// FamilyAsChild is the id of the family unit this person is a child of.
	// At most one: the model assumes single-parent-family lineage.
	FamilyAsChild string `json:"family_as_child,omitempty" yaml:"family_as_child,omitempty"`

	// FamilyAsSpouse lists the family units this person is a spouse/parent in.
	// Zero or more, supporting remarriage.
	FamilyAsSpouse []string `json:"family_as_spouse,omitempty" yaml:"family_as_spouse,omitempty"`
}

// NewIndividual creates an individual with a freshly minted id.
func NewIndividual(name string, sex Sex) *Individual {
	if sex != SexMale && sex != SexFemale {
		sex = SexUnknown
	}
	return &Individual{
		ID:   NewIndividualID(),
		Name: name,
		Sex:  sex,
	}
}
