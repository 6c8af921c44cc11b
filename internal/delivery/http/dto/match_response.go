package dto

import "cablib/internal/usecase"

type MatchResponse struct {
	Listing ListingResponse `json:"listing"`
	Score   int             `json:"score"`
	Reasons []string        `json:"reasons"`
}

func FromMatches(ms []usecase.MatchResult) []MatchResponse {
	out := make([]MatchResponse, 0, len(ms))
	for _, m := range ms {
		reasons := m.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		out = append(out, MatchResponse{
			Listing: FromListing(m.Listing),
			Score:   m.Score,
			Reasons: reasons,
		})
	}
	return out
}
