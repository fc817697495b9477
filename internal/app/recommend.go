package app

import (
	"sort"
	"strconv"

	"blended-advisor/internal/domain"
)

// TopModels is how many models a recommendation reports at most.
const TopModels = 3

// Recommend tallies the models endorsed by each response and returns the
// top three with their share of the selected votes. responses[i] answers
// question i+1. Letters a question does not offer add no votes.
func Recommend(responses []string) (domain.Recommendation, error) {
	if len(responses) != domain.QuestionCount {
		return domain.Recommendation{}, domain.ErrInvalidResponseCount
	}

	t := newTally()
	for i, letter := range responses {
		models, ok := domain.Endorsements(i+1, letter)
		if !ok {
			continue
		}
		for _, m := range models {
			t.add(m)
		}
	}

	ranked := t.ranked()
	if len(ranked) > TopModels {
		ranked = ranked[:TopModels]
	}

	total := 0
	for _, m := range ranked {
		total += t.counts[m]
	}
	if total == 0 {
		return domain.Recommendation{Entries: []domain.RecommendationEntry{}}, nil
	}

	entries := make([]domain.RecommendationEntry, 0, len(ranked))
	for _, m := range ranked {
		votes := t.counts[m]
		entries = append(entries, domain.RecommendationEntry{
			Model:   m,
			Votes:   votes,
			Percent: roundTenth(float64(votes) / float64(total) * 100),
		})
	}
	return domain.Recommendation{Entries: entries}, nil
}

// tally counts votes and remembers the order models were first seen.
type tally struct {
	order  []domain.Model
	counts map[domain.Model]int
}

func newTally() *tally {
	return &tally{counts: make(map[domain.Model]int)}
}

func (t *tally) add(m domain.Model) {
	if _, seen := t.counts[m]; !seen {
		t.order = append(t.order, m)
	}
	t.counts[m]++
}

// ranked orders models by votes, descending; equal counts keep first-seen order.
func (t *tally) ranked() []domain.Model {
	out := append([]domain.Model(nil), t.order...)
	sort.SliceStable(out, func(i, j int) bool {
		return t.counts[out[i]] > t.counts[out[j]]
	})
	return out
}

// roundTenth rounds to one decimal the same way "%.1f" prints it.
func roundTenth(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
