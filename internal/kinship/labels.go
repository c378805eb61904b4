package kinship

import (
	"fmt"
	"strings"

	"github.com/kindredhq/kindred/pkg/types"
)

// Display label sentinels.
const (
	labelSelf    = "Self"
	labelUnknown = "Unknown Relation"
	labelDistant = "Distant Relative"
)

// gendered picks the label variant for the target's recorded sex.
func gendered(sex types.Sex, male, female, neutral string) string {
	switch sex {
	case types.SexMale:
		return male
	case types.SexFemale:
		return female
	default:
		return neutral
	}
}

func spouseLabel(sex types.Sex) string {
	return gendered(sex, "Husband", "Wife", "Spouse")
}

// ancestorLabel renders a direct-ancestor label for the given generation
// distance: 1 Father, 2 Grandfather, 3 Great-Grandfather, and so on with
// one Great- per generation past the second.
func ancestorLabel(generations int, sex types.Sex) string {
	if generations == 1 {
		return gendered(sex, "Father", "Mother", "Parent")
	}
	base := gendered(sex, "Grandfather", "Grandmother", "Grandparent")
	return strings.Repeat("Great-", generations-2) + base
}

// descendantLabel is the symmetric counterpart of ancestorLabel.
func descendantLabel(generations int, sex types.Sex) string {
	if generations == 1 {
		return gendered(sex, "Son", "Daughter", "Child")
	}
	base := gendered(sex, "Grandson", "Granddaughter", "Grandchild")
	return strings.Repeat("Great-", generations-2) + base
}

func siblingLabel(half bool, sex types.Sex) string {
	label := gendered(sex, "Brother", "Sister", "Sibling")
	if half {
		return "Half-" + label
	}
	return label
}

func uncleAuntLabel(great int, sex types.Sex) string {
	base := gendered(sex, "Uncle", "Aunt", "Uncle/Aunt")
	return strings.Repeat("Great-", great) + base
}

func nephewNieceLabel(great int, sex types.Sex) string {
	base := gendered(sex, "Nephew", "Niece", "Nephew/Niece")
	return strings.Repeat("Great-", great) + base
}

// cousinLabel renders "1st Cousin", "2nd Cousin 1x Removed", ...
func cousinLabel(degree, removed int) string {
	label := ordinal(degree) + " Cousin"
	if removed > 0 {
		label += fmt.Sprintf(" %dx Removed", removed)
	}
	return label
}

func parentInLawLabel(sex types.Sex) string {
	return gendered(sex, "Father-in-law", "Mother-in-law", "Parent-in-law")
}

func siblingInLawLabel(sex types.Sex) string {
	return gendered(sex, "Brother-in-law", "Sister-in-law", "Sibling-in-law")
}

func childInLawLabel(sex types.Sex) string {
	return gendered(sex, "Son-in-law", "Daughter-in-law", "Child-in-law")
}

// ordinals covers the common cousin degrees; larger degrees fall back to
// the bare {n}th form.
var ordinals = [...]string{
	1:  "1st",
	2:  "2nd",
	3:  "3rd",
	4:  "4th",
	5:  "5th",
	6:  "6th",
	7:  "7th",
	8:  "8th",
	9:  "9th",
	10: "10th",
}

func ordinal(n int) string {
	if n >= 1 && n < len(ordinals) {
		return ordinals[n]
	}
	return fmt.Sprintf("%dth", n)
}
