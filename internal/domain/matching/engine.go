package matching

import (
	"fmt"
	"sort"
	"strings"
)

// Profile is the subset of a practitioner's stored preferences the
// scorer reads. Zero values mean "no preference": a zero MaxBudget or
// MinSize disables the corresponding rule.
type Profile struct {
	Profession             string
	PreferredCity          string
	MaxBudget              int
	MinSize                int
	PreferredStructureType string
}

// Listing is the subset of a listing the scorer reads.
type Listing struct {
	City             string
	StructureType    string
	Size             int
	MonthlyRent      int
	ProfilesSearched []string
}

type Result struct {
	Score   int
	Reasons []string
}

// Scored ties a score back to the candidate's position in the input
// slice, so callers can recover the full record.
type Scored struct {
	Index   int
	Score   int
	Reasons []string
}

// Score evaluates the weighted compatibility rules in fixed order and
// returns the summed score with one reason per rule that fired. The
// rules total 100; the two budget rules are mutually exclusive, as are
// the two structure-type rules.
func Score(p Profile, l Listing) Result {
	score := 0
	reasons := make([]string, 0, 5)

	// Geographic match (30 points). An empty preference never matches.
	if p.PreferredCity != "" && strings.EqualFold(l.City, p.PreferredCity) {
		score += 30
		reasons = append(reasons, fmt.Sprintf("Localisation : %s", l.City))
	}

	// Budget match (25 within 20%, 15 within 50%) when the rent fits.
	if p.MaxBudget > 0 && l.MonthlyRent > 0 && l.MonthlyRent <= p.MaxBudget {
		gap := float64(p.MaxBudget-l.MonthlyRent) / float64(p.MaxBudget)
		if gap <= 0.2 {
			score += 25
			reasons = append(reasons, fmt.Sprintf("Budget adapté : %d€/mois", l.MonthlyRent))
		} else if gap <= 0.5 {
			score += 15
			reasons = append(reasons, fmt.Sprintf("Budget acceptable : %d€/mois", l.MonthlyRent))
		}
	}

	// Profession match (20 points): substring either way against the
	// searched profiles.
	profession := strings.ToLower(p.Profession)
	if profession != "" {
		for _, searched := range l.ProfilesSearched {
			s := strings.ToLower(searched)
			if strings.Contains(s, profession) || strings.Contains(profession, s) {
				score += 20
				reasons = append(reasons, fmt.Sprintf("Profil recherché : %s", p.Profession))
				break
			}
		}
	}

	// Structure type (15 points exact, 10 when no preference).
	if p.PreferredStructureType != "" {
		if p.PreferredStructureType == l.StructureType {
			score += 15
			reasons = append(reasons, fmt.Sprintf("Type de structure : %s", l.StructureType))
		}
	} else {
		score += 10
	}

	// Size sufficiency (10 points).
	if p.MinSize > 0 && l.Size >= p.MinSize {
		score += 10
		reasons = append(reasons, fmt.Sprintf("Surface suffisante : %dm²", l.Size))
	}

	return Result{Score: score, Reasons: reasons}
}

// Rank scores every candidate against the profile, drops zero scores
// and orders the rest by score descending. Ties keep the input order.
func Rank(p Profile, candidates []Listing) []Scored {
	out := make([]Scored, 0, len(candidates))
	for i, l := range candidates {
		res := Score(p, l)
		if res.Score <= 0 {
			continue
		}
		out = append(out, Scored{Index: i, Score: res.Score, Reasons: res.Reasons})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
