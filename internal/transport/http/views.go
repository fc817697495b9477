package http

import "blended-advisor/internal/domain"

type recommendationEntry struct {
	Model   domain.Model `json:"model"`
	Votes   int          `json:"votes"`
	Percent float64      `json:"percent"`
	Label   string       `json:"label"`
}

type recommendationView struct {
	Recommendations []recommendationEntry `json:"recommendations"`
}

func newRecommendationView(rec domain.Recommendation) recommendationView {
	entries := make([]recommendationEntry, 0, len(rec.Entries))
	for _, e := range rec.Entries {
		entries = append(entries, recommendationEntry{
			Model:   e.Model,
			Votes:   e.Votes,
			Percent: e.Percent,
			Label:   e.String(),
		})
	}
	return recommendationView{Recommendations: entries}
}

type errorPayload struct {
	Message string `json:"message"`
}
