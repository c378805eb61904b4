package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewIndividual(t *testing.T) {
	ind := NewIndividual("Ada", SexFemale)
	if !strings.HasPrefix(ind.ID, "ind:") {
		t.Errorf("ID = %q, want ind: prefix", ind.ID)
	}
	if ind.Name != "Ada" || ind.Sex != SexFemale {
		t.Errorf("got %+v", ind)
	}

	// Anything outside M/F normalizes to unknown.
	if got := NewIndividual("X", Sex("banana")).Sex; got != SexUnknown {
		t.Errorf("Sex = %v, want unknown", got)
	}
	if got := NewIndividual("X", "").Sex; got != SexUnknown {
		t.Errorf("Sex = %v, want unknown", got)
	}
}

func TestNewFamilyUnit(t *testing.T) {
	fam := NewFamilyUnit("ind:h", "ind:w")
	if !strings.HasPrefix(fam.ID, "fam:") {
		t.Errorf("ID = %q, want fam: prefix", fam.ID)
	}
	if !fam.HasBothParents() {
		t.Errorf("HasBothParents() = false, want true")
	}

	single := NewFamilyUnit("ind:h", "")
	if single.HasBothParents() {
		t.Errorf("single-parent HasBothParents() = true, want false")
	}
}

func TestOtherSpouse(t *testing.T) {
	fam := &FamilyUnit{ID: "f", Husband: "h", Wife: "w"}

	if got := fam.OtherSpouse("h"); got != "w" {
		t.Errorf("OtherSpouse(h) = %q, want w", got)
	}
	if got := fam.OtherSpouse("w"); got != "h" {
		t.Errorf("OtherSpouse(w) = %q, want h", got)
	}
	if got := fam.OtherSpouse("stranger"); got != "" {
		t.Errorf("OtherSpouse(stranger) = %q, want empty", got)
	}

	single := &FamilyUnit{ID: "f", Husband: "h"}
	if got := single.OtherSpouse("h"); got != "" {
		t.Errorf("OtherSpouse on single-parent unit = %q, want empty", got)
	}
}

func TestKindWireNames(t *testing.T) {
	cases := map[Kind]string{
		KindUnknown:     "unknown",
		KindSelf:        "self",
		KindSpouse:      "spouse",
		KindAncestor:    "ancestor",
		KindDescendant:  "descendant",
		KindSibling:     "sibling",
		KindUncleAunt:   "uncle_aunt",
		KindNephewNiece: "nephew_niece",
		KindCousin:      "cousin",
		KindInLaw:       "in_law",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
	if got := Kind(99).String(); got != "unknown" {
		t.Errorf("out-of-range kind = %q, want unknown", got)
	}
}

// TestKindTextRoundTrip: every kind must decode back from its own wire
// name, so API clients can unmarshal responses into these types.
func TestKindTextRoundTrip(t *testing.T) {
	kinds := []Kind{
		KindUnknown, KindSelf, KindSpouse, KindAncestor, KindDescendant,
		KindSibling, KindUncleAunt, KindNephewNiece, KindCousin, KindInLaw,
	}
	for _, kind := range kinds {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", kind, err)
		}
		var back Kind = -1
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != kind {
			t.Errorf("round trip %q = %v, want %v", text, back, kind)
		}
	}

	var garbage Kind = -1
	if err := garbage.UnmarshalText([]byte("step_parent")); err != nil {
		t.Fatalf("UnmarshalText on unrecognized name: %v", err)
	}
	if garbage != KindUnknown {
		t.Errorf("unrecognized name decoded as %v, want unknown", garbage)
	}
}

// TestRelationshipDecode: a serialized relationship must decode back,
// including the nested Via of a wrapped spouse-relative result.
func TestRelationshipDecode(t *testing.T) {
	rel := &Relationship{
		Kind:  KindInLaw,
		Base:  BaseSpouseRelative,
		Label: "Spouse's Uncle",
		Via:   &Relationship{Kind: KindUncleAunt, Label: "Uncle"},
	}
	data, err := json.Marshal(rel)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Relationship
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Kind != KindInLaw || back.Base != BaseSpouseRelative {
		t.Errorf("decoded = %+v, want inLaw(spouse_relative)", back)
	}
	if back.Via == nil || back.Via.Kind != KindUncleAunt {
		t.Errorf("decoded Via = %+v, want uncleAunt", back.Via)
	}
}

func TestRelationshipJSON(t *testing.T) {
	rel := &Relationship{
		Kind:    KindCousin,
		Label:   "2nd Cousin 1x Removed",
		Degree:  2,
		Removed: 1,
	}
	data, err := json.Marshal(rel)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"kind":"cousin"`) {
		t.Errorf("kind not serialized as wire name: %s", s)
	}
	// Zero-valued qualifiers stay off the wire.
	if strings.Contains(s, "generations") || strings.Contains(s, "via") {
		t.Errorf("unexpected zero fields on the wire: %s", s)
	}
}

func TestRelationshipNamed(t *testing.T) {
	if (&Relationship{Kind: KindUnknown}).Named() {
		t.Error("unknown.Named() = true")
	}
	if (&Relationship{Kind: KindSelf}).Named() {
		t.Error("self.Named() = true")
	}
	if !(&Relationship{Kind: KindSibling}).Named() {
		t.Error("sibling.Named() = false")
	}
}
