package coverage

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"glowAdvisor/business/recommend"
	"glowAdvisor/domain"
)

// Report aggregates engine output over a batch of synthetic profiles.
type Report struct {
	Profiles int `json:"profiles"`

	// FilledByCategory counts how many profiles received at least one
	// recommendation for each category.
	FilledByCategory map[domain.Category]int `json:"filled_by_category"`

	// CriticalMisses counts profiles left without a cleanser, moisturizer
	// or sunscreen.
	CriticalMisses int `json:"critical_misses"`

	// RelaxedProfiles counts profiles whose result carried notices, i.e.
	// the resolver had to loosen constraints.
	RelaxedProfiles int `json:"relaxed_profiles"`

	// BestAvailableProfiles counts profiles where at least one pick was
	// flagged as a weak best-available match.
	BestAvailableProfiles int `json:"best_available_profiles"`

	// BySkinType counts profiles per requested skin type.
	BySkinType map[string]int `json:"by_skin_type"`

	// ByConcern counts profiles per selected concern.
	ByConcern map[string]int `json:"by_concern"`

	// PriceTiers counts recommended picks per budget tier.
	PriceTiers map[domain.BudgetTier]int `json:"price_tiers"`

	// CriticalMissesBySkinType locates catalog gaps per skin type.
	CriticalMissesBySkinType map[string]int `json:"critical_misses_by_skin_type"`

	// AvgMorningSteps and AvgEveningSteps describe routine depth.
	AvgMorningSteps float64 `json:"avg_morning_steps"`
	AvgEveningSteps float64 `json:"avg_evening_steps"`
}

// Runner replays synthetic questionnaires against a fixed catalog and
// measures how well the catalog covers the profile space.
type Runner struct {
	catalog []domain.RawItem
	factory *ProfileFactory
}

func NewRunner(catalog []domain.RawItem, seed int64) *Runner {
	return &Runner{
		catalog: catalog,
		factory: NewProfileFactory(seed),
	}
}

// Run generates and scores the given number of profiles. The progress
// callback, when non-nil, is invoked after each profile.
func (r *Runner) Run(ctx context.Context, profiles int, progress func()) (Report, error) {
	report := Report{
		Profiles:                 profiles,
		FilledByCategory:         make(map[domain.Category]int),
		BySkinType:               make(map[string]int),
		ByConcern:                make(map[string]int),
		PriceTiers:               make(map[domain.BudgetTier]int),
		CriticalMissesBySkinType: make(map[string]int),
	}

	var morningSteps, eveningSteps int

	for i := 0; i < profiles; i++ {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("coverage run cancelled: %w", err)
		}

		responses := r.factory.Generate()
		result := recommend.BuildRecommendations(responses, r.catalog)

		skinType, _ := responses["skin_type"].(string)
		report.BySkinType[skinType]++

		if concerns, ok := responses["concerns"].([]string); ok {
			for _, concern := range concerns {
				report.ByConcern[concern]++
			}
		}

		for cat, picks := range result.Recommendations {
			if len(picks) > 0 {
				report.FilledByCategory[cat]++
			}
			for _, pick := range picks {
				report.PriceTiers[recommend.PriceTier(pick.Item.Price)]++
			}
		}

		if missesCritical(result.Recommendations) {
			report.CriticalMisses++
			report.CriticalMissesBySkinType[skinType]++
		}

		if len(result.Notices) > 0 {
			report.RelaxedProfiles++
		}

		if hasBestAvailable(result.Recommendations) {
			report.BestAvailableProfiles++
		}

		morningSteps += len(result.MorningRoutine)
		eveningSteps += len(result.EveningRoutine)

		if progress != nil {
			progress()
		}
	}

	if profiles > 0 {
		report.AvgMorningSteps = float64(morningSteps) / float64(profiles)
		report.AvgEveningSteps = float64(eveningSteps) / float64(profiles)
	}

	return report, nil
}

func missesCritical(recs domain.RecommendationSet) bool {
	for _, cat := range recommend.CriticalCategories {
		if len(recs[cat]) == 0 {
			return true
		}
	}
	return false
}

func hasBestAvailable(recs domain.RecommendationSet) bool {
	for _, picks := range recs {
		for _, pick := range picks {
			if pick.BestAvailable {
				return true
			}
		}
	}
	return false
}

// Summary renders the report as a human-readable block for CLI output.
func (r Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "profiles run:            %d\n", r.Profiles)
	fmt.Fprintf(&b, "critical misses:         %d (%.1f%%)\n", r.CriticalMisses, percent(r.CriticalMisses, r.Profiles))
	fmt.Fprintf(&b, "relaxed profiles:        %d (%.1f%%)\n", r.RelaxedProfiles, percent(r.RelaxedProfiles, r.Profiles))
	fmt.Fprintf(&b, "best-available profiles: %d (%.1f%%)\n", r.BestAvailableProfiles, percent(r.BestAvailableProfiles, r.Profiles))
	fmt.Fprintf(&b, "avg routine steps:       %.1f morning / %.1f evening\n", r.AvgMorningSteps, r.AvgEveningSteps)

	b.WriteString("category fill rates:\n")
	for _, cat := range domain.AllCategories {
		fmt.Fprintf(&b, "  %-12s %.1f%%\n", cat, percent(r.FilledByCategory[cat], r.Profiles))
	}

	if len(r.PriceTiers) > 0 {
		totalPicks := 0
		for _, n := range r.PriceTiers {
			totalPicks += n
		}
		b.WriteString("recommended picks by price tier:\n")
		for _, tier := range []domain.BudgetTier{domain.BudgetLow, domain.BudgetMid, domain.BudgetPremium} {
			fmt.Fprintf(&b, "  %-12s %.1f%%\n", tier, percent(r.PriceTiers[tier], totalPicks))
		}
	}

	if len(r.ByConcern) > 0 {
		b.WriteString("profiles by concern:\n")
		concerns := make([]string, 0, len(r.ByConcern))
		for c := range r.ByConcern {
			concerns = append(concerns, c)
		}
		sort.Strings(concerns)
		for _, c := range concerns {
			fmt.Fprintf(&b, "  %-12s %d\n", c, r.ByConcern[c])
		}
	}

	if len(r.CriticalMissesBySkinType) > 0 {
		b.WriteString("critical misses by skin type:\n")
		types := make([]string, 0, len(r.CriticalMissesBySkinType))
		for st := range r.CriticalMissesBySkinType {
			types = append(types, st)
		}
		sort.Strings(types)
		for _, st := range types {
			fmt.Fprintf(&b, "  %-12s %d\n", st, r.CriticalMissesBySkinType[st])
		}
	}

	return b.String()
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
