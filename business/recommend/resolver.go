package recommend

import (
	"fmt"
	"sort"
	"strings"

	"glowAdvisor/domain"
)

// Per-pass minimum top score a category must reach to count as satisfied.
const (
	passFullMinScore     = 20
	passNoPrefMinScore   = 20
	passNoSecondMinScore = 15
)

// CriticalCategories are the categories the critical fallback pass may fill
// with minimal scoring rather than leave empty.
var CriticalCategories = []domain.Category{
	domain.CategoryCleanser,
	domain.CategoryMoisturizer,
	domain.CategorySunscreen,
}

// OptionalCategories are scored only by the enrichment pass, and only when a
// profile or concern trigger is met.
var OptionalCategories = []domain.Category{
	domain.CategoryEyeCare,
	domain.CategoryMask,
	domain.CategoryTreatment,
}

// Options tune resolution. The zero value keeps every default.
type Options struct {
	// MaxPerCategory caps the picks returned per category; values below 1
	// fall back to DefaultMaxPerCategory.
	MaxPerCategory int
}

// RequiredCategories is the union of the concerns' required categories plus
// the always-required sun protection category, in stable catalog order.
func RequiredCategories(concerns []domain.Concern) []domain.Category {
	required := map[domain.Category]bool{domain.CategorySunscreen: true}
	for _, c := range concerns {
		for _, cat := range c.RequiredCategories {
			required[cat] = true
		}
	}

	out := make([]domain.Category, 0, len(required))
	for _, cat := range domain.AllCategories {
		if required[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// Resolve runs the multi-pass resolution state machine: a full scoring pass,
// then up to three constraint-relaxation passes for categories still
// missing, then an independent optional-category enrichment pass. Passes
// never remove a category satisfied earlier, and every relaxation that fills
// something is described in the returned notices.
func Resolve(profile domain.Profile, concerns []domain.Concern, items []domain.Item, opts Options) (domain.RecommendationSet, []string) {
	byCategory := groupByCategory(items)
	required := RequiredCategories(concerns)
	max := opts.MaxPerCategory

	recs := make(domain.RecommendationSet)
	var notices []string

	// pass 1: full scoring
	ResolverPassesTotal.WithLabelValues("full").Inc()
	for _, cat := range required {
		sel := scoreAndSelect(byCategory[cat], profile, concerns, ScoreOptions{}, DefaultThresholds, max)
		if topScoreAtLeast(sel, passFullMinScore) {
			recs[cat] = sel
		}
	}

	// pass 2: relax soft preferences
	if missing := missingCategories(required, recs); len(missing) > 0 {
		ResolverPassesTotal.WithLabelValues("relax_preferences").Inc()
		filled := resolvePass(recs, missing, byCategory, profile, concerns,
			ScoreOptions{IgnorePreferences: true}, DefaultThresholds, passNoPrefMinScore, max)
		if len(filled) > 0 {
			RelaxationsTotal.WithLabelValues("preferences").Inc()
			notices = append(notices, preferenceNotice(profile, filled))
		}
	}

	// pass 3: additionally defer the lowest-priority concern
	if missing := missingCategories(required, recs); len(missing) > 0 && len(concerns) > 1 {
		ResolverPassesTotal.WithLabelValues("relax_secondary").Inc()
		filled := resolvePass(recs, missing, byCategory, profile, concerns,
			ScoreOptions{IgnorePreferences: true, IgnoreSecondaryConcerns: true},
			RelaxedThresholds, passNoSecondMinScore, max)
		if len(filled) > 0 {
			RelaxationsTotal.WithLabelValues("secondary_concern").Inc()
			deferred := concerns[len(concerns)-1]
			notices = append(notices, fmt.Sprintf(
				"We set aside your %q concern to find options for %s; revisit it once your core routine is settled.",
				deferred.DisplayName, joinCategories(filled)))
		}
	}

	// pass 4: critical fallback with minimal scoring
	if missing := missingCriticalCategories(required, recs); len(missing) > 0 {
		ResolverPassesTotal.WithLabelValues("critical_fallback").Inc()
		filled := resolvePass(recs, missing, byCategory, profile, concerns,
			ScoreOptions{MinimalScoring: true}, RelaxedThresholds, 1, max)
		if len(filled) > 0 {
			RelaxationsTotal.WithLabelValues("critical_fallback").Inc()
			notices = append(notices, fmt.Sprintf(
				"Only basic matches were available for %s; these are the closest options in stock.",
				joinCategories(filled)))
		}
	}

	// pass 5: optional enrichment, independent of the relaxation cascade
	ResolverPassesTotal.WithLabelValues("optional").Inc()
	for _, cat := range OptionalCategories {
		if _, exists := recs[cat]; exists {
			continue
		}
		if !optionalCategoryTriggered(cat, profile, concerns) {
			continue
		}
		sel := scoreAndSelect(byCategory[cat], profile, concerns, ScoreOptions{}, DefaultThresholds, max)
		if len(sel) > 0 {
			recs[cat] = sel
		}
	}

	return recs, notices
}

func groupByCategory(items []domain.Item) map[domain.Category][]domain.Item {
	grouped := make(map[domain.Category][]domain.Item)
	for _, it := range items {
		if !it.InStock {
			continue
		}
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	return grouped
}

func scoreAndSelect(items []domain.Item, profile domain.Profile, concerns []domain.Concern, opts ScoreOptions, th SelectionThresholds, max int) []domain.ScoredItem {
	scored := make([]domain.ScoredItem, 0, len(items))
	for _, it := range items {
		result := ScoreItem(it, profile, concerns, opts)
		if result.Disqualified() {
			ItemsDisqualifiedTotal.Inc()
			continue
		}
		scored = append(scored, domain.ScoredItem{
			Item:    it,
			Score:   result.Score,
			Reasons: result.Reasons,
		})
	}
	return SelectTop(scored, max, th)
}

// resolvePass re-scores each missing category with relaxed options and
// accepts it when the top score reaches minScore. It returns the categories
// filled by this pass.
func resolvePass(
	recs domain.RecommendationSet,
	missing []domain.Category,
	byCategory map[domain.Category][]domain.Item,
	profile domain.Profile,
	concerns []domain.Concern,
	opts ScoreOptions,
	th SelectionThresholds,
	minScore float64,
	max int,
) []domain.Category {
	var filled []domain.Category
	for _, cat := range missing {
		sel := scoreAndSelect(byCategory[cat], profile, concerns, opts, th, max)
		if topScoreAtLeast(sel, minScore) {
			recs[cat] = sel
			filled = append(filled, cat)
		}
	}
	return filled
}

func topScoreAtLeast(sel []domain.ScoredItem, min float64) bool {
	return len(sel) > 0 && sel[0].Score >= min
}

func missingCategories(required []domain.Category, recs domain.RecommendationSet) []domain.Category {
	var missing []domain.Category
	for _, cat := range required {
		if _, ok := recs[cat]; !ok {
			missing = append(missing, cat)
		}
	}
	return missing
}

func missingCriticalCategories(required []domain.Category, recs domain.RecommendationSet) []domain.Category {
	critical := make(map[domain.Category]bool, len(CriticalCategories))
	for _, cat := range CriticalCategories {
		critical[cat] = true
	}
	var missing []domain.Category
	for _, cat := range missingCategories(required, recs) {
		if critical[cat] {
			missing = append(missing, cat)
		}
	}
	return missing
}

func optionalCategoryTriggered(cat domain.Category, profile domain.Profile, concerns []domain.Concern) bool {
	switch cat {
	case domain.CategoryEyeCare:
		if profile.AgeBracket.Mature() {
			return true
		}
		for _, c := range concerns {
			if c.ID.EyeRelated() {
				return true
			}
		}
		return false
	case domain.CategoryMask:
		for _, c := range concerns {
			if c.ID == domain.ConcernDullness || c.ID == domain.ConcernOiliness {
				return true
			}
		}
		return false
	case domain.CategoryTreatment:
		for _, c := range concerns {
			if c.ID == domain.ConcernAcne || c.ID == domain.ConcernPigmentation || c.ID == domain.ConcernAging {
				return true
			}
		}
		return false
	}
	return false
}

func preferenceNotice(profile domain.Profile, filled []domain.Category) string {
	prefs := append([]string{}, profile.Preferences...)
	sort.Strings(prefs)
	named := "your preferences"
	if len(prefs) > 0 {
		named = fmt.Sprintf("your preferences (%s)", strings.Join(prefs, ", "))
	}
	return fmt.Sprintf("We relaxed %s to find options for %s.", named, joinCategories(filled))
}

func joinCategories(cats []domain.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
