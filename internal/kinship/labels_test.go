package kinship

import (
	"testing"

	"github.com/kindredhq/kindred/pkg/types"
)

func TestAncestorLabel(t *testing.T) {
	cases := []struct {
		generations int
		sex         types.Sex
		want        string
	}{
		{1, types.SexMale, "Father"},
		{1, types.SexFemale, "Mother"},
		{1, types.SexUnknown, "Parent"},
		{2, types.SexMale, "Grandfather"},
		{2, types.SexFemale, "Grandmother"},
		{3, types.SexMale, "Great-Grandfather"},
		{4, types.SexFemale, "Great-Great-Grandmother"},
		{5, types.SexUnknown, "Great-Great-Great-Grandparent"},
	}
	for _, tc := range cases {
		if got := ancestorLabel(tc.generations, tc.sex); got != tc.want {
			t.Errorf("ancestorLabel(%d, %s) = %q, want %q", tc.generations, tc.sex, got, tc.want)
		}
	}
}

func TestDescendantLabel(t *testing.T) {
	cases := []struct {
		generations int
		sex         types.Sex
		want        string
	}{
		{1, types.SexFemale, "Daughter"},
		{2, types.SexMale, "Grandson"},
		{3, types.SexFemale, "Great-Granddaughter"},
		{4, types.SexUnknown, "Great-Great-Grandchild"},
	}
	for _, tc := range cases {
		if got := descendantLabel(tc.generations, tc.sex); got != tc.want {
			t.Errorf("descendantLabel(%d, %s) = %q, want %q", tc.generations, tc.sex, got, tc.want)
		}
	}
}

func TestSiblingLabel(t *testing.T) {
	if got := siblingLabel(false, types.SexMale); got != "Brother" {
		t.Errorf("siblingLabel full male = %q", got)
	}
	if got := siblingLabel(true, types.SexFemale); got != "Half-Sister" {
		t.Errorf("siblingLabel half female = %q", got)
	}
	if got := siblingLabel(true, types.SexUnknown); got != "Half-Sibling" {
		t.Errorf("siblingLabel half unknown = %q", got)
	}
}

func TestUncleAuntAndNephewNieceLabels(t *testing.T) {
	if got := uncleAuntLabel(0, types.SexMale); got != "Uncle" {
		t.Errorf("uncleAuntLabel(0) = %q", got)
	}
	if got := uncleAuntLabel(1, types.SexFemale); got != "Great-Aunt" {
		t.Errorf("uncleAuntLabel(1) = %q", got)
	}
	if got := uncleAuntLabel(2, types.SexMale); got != "Great-Great-Uncle" {
		t.Errorf("uncleAuntLabel(2) = %q", got)
	}
	if got := nephewNieceLabel(0, types.SexFemale); got != "Niece" {
		t.Errorf("nephewNieceLabel(0) = %q", got)
	}
	if got := nephewNieceLabel(1, types.SexMale); got != "Great-Nephew" {
		t.Errorf("nephewNieceLabel(1) = %q", got)
	}
}

func TestCousinLabel(t *testing.T) {
	cases := []struct {
		degree, removed int
		want            string
	}{
		{1, 0, "1st Cousin"},
		{2, 0, "2nd Cousin"},
		{3, 0, "3rd Cousin"},
		{1, 1, "1st Cousin 1x Removed"},
		{2, 3, "2nd Cousin 3x Removed"},
		{11, 0, "11th Cousin"},
		{23, 2, "23th Cousin 2x Removed"},
	}
	for _, tc := range cases {
		if got := cousinLabel(tc.degree, tc.removed); got != tc.want {
			t.Errorf("cousinLabel(%d, %d) = %q, want %q", tc.degree, tc.removed, got, tc.want)
		}
	}
}

func TestOrdinalFallback(t *testing.T) {
	if got := ordinal(10); got != "10th" {
		t.Errorf("ordinal(10) = %q", got)
	}
	// Past the table, the plain {n}th form applies regardless of English
	// suffix rules.
	if got := ordinal(21); got != "21th" {
		t.Errorf("ordinal(21) = %q", got)
	}
}
