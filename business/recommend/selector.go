package recommend

import (
	"sort"

	"glowAdvisor/domain"
)

// SelectionThresholds is the cascading score-threshold pair used by tiered
// selection.
type SelectionThresholds struct {
	High     float64
	Fallback float64
}

var (
	// DefaultThresholds apply to the full and preference-relaxed passes.
	DefaultThresholds = SelectionThresholds{High: 50, Fallback: 30}
	// RelaxedThresholds apply to the secondary-concern and critical
	// fallback passes.
	RelaxedThresholds = SelectionThresholds{High: 40, Fallback: 20}
)

// DefaultMaxPerCategory is the selection cap per category.
const DefaultMaxPerCategory = 3

// SelectTop picks up to max items for one category via cascading
// thresholds: first items scoring >= High, then items in [Fallback, High),
// then any remaining items with score > 0, each flagged best-available.
// Disqualified and non-positive scores never appear. Ordering is
// deterministic: score descending, then SKU ascending on exact ties (price
// intentionally plays no part in ordering).
func SelectTop(scored []domain.ScoredItem, max int, th SelectionThresholds) []domain.ScoredItem {
	if max <= 0 {
		max = DefaultMaxPerCategory
	}

	eligible := make([]domain.ScoredItem, 0, len(scored))
	for _, s := range scored {
		if s.Score > 0 {
			eligible = append(eligible, s)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Score != eligible[j].Score {
			return eligible[i].Score > eligible[j].Score
		}
		return eligible[i].Item.SKU < eligible[j].Item.SKU
	})

	selected := make([]domain.ScoredItem, 0, max)

	for _, s := range eligible {
		if len(selected) == max {
			return selected
		}
		if s.Score >= th.High {
			selected = append(selected, s)
		}
	}
	for _, s := range eligible {
		if len(selected) == max {
			return selected
		}
		if s.Score >= th.Fallback && s.Score < th.High {
			selected = append(selected, s)
		}
	}
	for _, s := range eligible {
		if len(selected) == max {
			return selected
		}
		if s.Score < th.Fallback {
			s.BestAvailable = true
			selected = append(selected, s)
		}
	}

	return selected
}
