package matching

import (
	"reflect"
	"testing"
)

func perfectProfile() Profile {
	return Profile{
		Profession:             "Kinésithérapeute",
		PreferredCity:          "Paris",
		MaxBudget:              1600,
		MinSize:                40,
		PreferredStructureType: "Cabinet",
	}
}

func parisListing() Listing {
	return Listing{
		City:             "Paris",
		StructureType:    "Cabinet",
		Size:             50,
		MonthlyRent:      1500,
		ProfilesSearched: []string{"Kinésithérapeute"},
	}
}

func TestScore_FullMatch(t *testing.T) {
	res := Score(perfectProfile(), parisListing())

	if res.Score != 100 {
		t.Fatalf("expected score 100, got %d", res.Score)
	}

	want := []string{
		"Localisation : Paris",
		"Budget adapté : 1500€/mois",
		"Profil recherché : Kinésithérapeute",
		"Type de structure : Cabinet",
		"Surface suffisante : 50m²",
	}
	if !reflect.DeepEqual(res.Reasons, want) {
		t.Fatalf("unexpected reasons: %v", res.Reasons)
	}
}

func TestScore_Bounds(t *testing.T) {
	listings := []Listing{
		{},
		parisListing(),
		{City: "Lyon", MonthlyRent: 99999, Size: 1},
	}
	profiles := []Profile{
		{},
		perfectProfile(),
		{Profession: "Dentiste", MaxBudget: 1, MinSize: 9999, PreferredStructureType: "MSP"},
	}

	for _, p := range profiles {
		for _, l := range listings {
			res := Score(p, l)
			if res.Score < 0 || res.Score > 100 {
				t.Fatalf("score out of bounds: %d", res.Score)
			}
		}
	}
}

func TestScore_BudgetRulesMutuallyExclusive(t *testing.T) {
	p := Profile{MaxBudget: 1000, PreferredStructureType: "MSP"}

	cases := []struct {
		rent int
		want int
	}{
		{900, 25},  // 10% under budget
		{800, 25},  // boundary: exactly 20%
		{700, 15},  // 30% under budget
		{500, 15},  // boundary: exactly 50%
		{400, 0},   // too far under budget
		{1100, 0},  // over budget
	}
	for _, tc := range cases {
		res := Score(p, Listing{MonthlyRent: tc.rent})
		if res.Score != tc.want {
			t.Fatalf("rent=%d: expected %d points, got %d", tc.rent, tc.want, res.Score)
		}
	}
}

func TestScore_StructureRulesMutuallyExclusive(t *testing.T) {
	l := Listing{StructureType: "Cabinet"}

	res := Score(Profile{PreferredStructureType: "Cabinet"}, l)
	if res.Score != 15 {
		t.Fatalf("expected 15 for exact structure match, got %d", res.Score)
	}

	res = Score(Profile{}, l)
	if res.Score != 10 {
		t.Fatalf("expected 10 for no structure preference, got %d", res.Score)
	}
	if len(res.Reasons) != 0 {
		t.Fatalf("no-preference rule must not emit a reason, got %v", res.Reasons)
	}

	res = Score(Profile{PreferredStructureType: "MSP"}, l)
	if res.Score != 0 {
		t.Fatalf("expected 0 for structure mismatch, got %d", res.Score)
	}
}

func TestScore_EmptyPreferredCityNeverMatches(t *testing.T) {
	res := Score(Profile{PreferredStructureType: "MSP"}, Listing{City: ""})
	if res.Score != 0 {
		t.Fatalf("expected no location points for empty preference, got %d", res.Score)
	}
}

func TestScore_ProfessionSubstring(t *testing.T) {
	l := Listing{ProfilesSearched: []string{"Kinésithérapeute du sport"}, StructureType: "MSP"}

	res := Score(Profile{Profession: "kinésithérapeute", PreferredStructureType: "Cabinet"}, l)
	if res.Score != 20 {
		t.Fatalf("expected 20 for profession substring, got %d", res.Score)
	}
}

func TestScore_Idempotent(t *testing.T) {
	p := perfectProfile()
	l := parisListing()

	first := Score(p, l)
	second := Score(p, l)
	if first.Score != second.Score || !reflect.DeepEqual(first.Reasons, second.Reasons) {
		t.Fatalf("expected identical results for identical inputs")
	}
}

func TestRank_DropsZeroAndSortsStable(t *testing.T) {
	p := Profile{PreferredCity: "Paris", PreferredStructureType: "MSP"}

	candidates := []Listing{
		{City: "Lyon", StructureType: "Cabinet"},  // zero score, dropped
		{City: "Paris", StructureType: "Cabinet"}, // 30
		{City: "Paris", StructureType: "MSP"},     // 45
		{City: "paris", StructureType: "Cabinet"}, // 30, ties with index 1
	}

	ranked := Rank(p, candidates)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked candidates, got %d", len(ranked))
	}
	if ranked[0].Index != 2 {
		t.Fatalf("expected highest score first, got index %d", ranked[0].Index)
	}
	if ranked[1].Index != 1 || ranked[2].Index != 3 {
		t.Fatalf("expected ties in input order, got %d then %d", ranked[1].Index, ranked[2].Index)
	}
}

func TestRank_AllZeroReturnsEmpty(t *testing.T) {
	p := Profile{PreferredCity: "Nice", PreferredStructureType: "MSP"}
	candidates := []Listing{
		{City: "Lyon", StructureType: "Cabinet"},
		{City: "Paris", StructureType: "Cabinet"},
	}

	if ranked := Rank(p, candidates); len(ranked) != 0 {
		t.Fatalf("expected empty ranking, got %d entries", len(ranked))
	}
}
