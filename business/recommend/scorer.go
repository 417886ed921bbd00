package recommend

import (
	"fmt"
	"strings"

	"glowAdvisor/domain"
)

// Scoring weights. Every term is independently bounded; the full-mode sum is
// clamped to [0, 100].
const (
	maxScore = 100

	scoreSkinTypeMatch        = 25
	scoreSkinTypeOilyConflict = 8  // oily-type top concern, item targets dry skin only
	scoreSkinTypeDryConflict  = 10 // dry-type top concern, item targets oily skin only

	maxConcernCoverage = 35
	maxIngredientMatch = 20

	scoreSensitivitySafe    = 10
	scoreSensitivityUnsafe  = -15
	scoreSensitivityNeutral = 5

	maxScentMatch = 3.0

	scoreTextureMatch       = 18
	scoreTextureUnknown     = 2
	penaltyTextureHeavyOily = -15
	penaltyTextureLightDry  = -8
	penaltyTextureMismatch  = -5

	penaltySkinTypeOilyTop = -15
	penaltySkinTypeDryTop  = -10

	scoreClimateMatch = 5
	maxRatingBonus    = 10

	prefMatchBonus  = 5
	prefMatchCap    = 15
	prefMissPenalty = -10
	prefMissCap     = -30

	penaltyAvoidIngredient = -20

	scoreBudgetMatch       = 5
	penaltyBudgetNear      = -5
	penaltyBudgetFar       = -10
	budgetLowCeiling       = 15.0
	budgetMidCeiling       = 45.0

	minimalSkinMatch        = 25
	minimalSensitivityBonus = 10
)

// ScoreOptions control constraint relaxation during multi-pass resolution.
type ScoreOptions struct {
	// IgnorePreferences skips the soft preference bonus/penalty term.
	IgnorePreferences bool
	// IgnoreSecondaryConcerns drops the lowest-priority concern from the
	// coverage and ingredient terms.
	IgnoreSecondaryConcerns bool
	// MinimalScoring restricts scoring to skin type and sensitivity; used
	// only by the critical-category fallback pass.
	MinimalScoring bool
}

type scoreAccumulator struct {
	score   float64
	reasons []string
}

func (a *scoreAccumulator) add(points float64, format string, args ...any) {
	a.score += points
	a.reasons = append(a.reasons, fmt.Sprintf(format, args...))
}

// ScoreItem computes the bounded fitness score and reasoning trail for one
// normalized item against a profile and its analyzed concerns.
func ScoreItem(item domain.Item, profile domain.Profile, concerns []domain.Concern, opts ScoreOptions) domain.ScoreResult {
	// Hard allergy gate before everything else. The full ingredient list is
	// authoritative; the marketing key-ingredient list is never consulted
	// for safety.
	if len(profile.Allergies) > 0 {
		if len(item.Ingredients) == 0 {
			return domain.ScoreResult{
				Score:   domain.DisqualifiedScore,
				Reasons: []string{"excluded: ingredient list unavailable, allergen safety cannot be verified"},
			}
		}
		for _, allergen := range profile.Allergies {
			for _, ing := range item.Ingredients {
				if ingredientMatches(ing, allergen) {
					return domain.ScoreResult{
						Score:   domain.DisqualifiedScore,
						Reasons: []string{fmt.Sprintf("excluded: contains allergen %q", allergen)},
					}
				}
			}
		}
	}

	if opts.MinimalScoring {
		return minimalScore(item, profile)
	}

	acc := &scoreAccumulator{}
	top := topConcern(concerns)
	inPlay := concernsInPlay(concerns, opts)

	scoreSkinType(acc, item, profile, top)
	scoreConcernCoverage(acc, item, inPlay)
	scoreIngredients(acc, item, inPlay)
	scoreSensitivity(acc, item, profile)
	scoreLifestyle(acc, item, profile)
	scoreScent(acc, item, profile)
	scoreTexture(acc, item, profile, top)
	scoreSkinTypeTopConcern(acc, item, profile, top)
	scoreSubcategory(acc, item, profile)
	scoreClimate(acc, item, profile)
	scoreRating(acc, item)
	if !opts.IgnorePreferences {
		scorePreferences(acc, item, profile)
	}
	scoreAvoidIngredients(acc, item, inPlay)
	scoreBudget(acc, item, profile)

	if acc.score < 0 {
		acc.score = 0
	}
	if acc.score > maxScore {
		acc.score = maxScore
	}
	if len(acc.reasons) == 0 {
		acc.reasons = append(acc.reasons, "general match for your routine")
	}

	return domain.ScoreResult{Score: acc.score, Reasons: acc.reasons}
}

// minimalScore is the reduced fallback used when the critical categories
// cannot be filled any other way. Result is always within [0, 35].
func minimalScore(item domain.Item, profile domain.Profile) domain.ScoreResult {
	acc := &scoreAccumulator{}
	if item.SuitsSkinType(profile.SkinType) {
		acc.add(minimalSkinMatch, "suits %s skin", profile.SkinType)
	}
	if profile.Sensitivity.Elevated() && item.SensitivitySafe {
		acc.add(minimalSensitivityBonus, "formulated for sensitive skin")
	}
	if len(acc.reasons) == 0 {
		acc.reasons = append(acc.reasons, "closest available option in an essential category")
	}
	return domain.ScoreResult{Score: acc.score, Reasons: acc.reasons}
}

// concernsInPlay returns the concerns that participate in scoring: all of
// them normally, all but the lowest-priority one when secondary concerns are
// relaxed.
func concernsInPlay(concerns []domain.Concern, opts ScoreOptions) []domain.Concern {
	if opts.IgnoreSecondaryConcerns && len(concerns) > 1 {
		return concerns[:len(concerns)-1]
	}
	return concerns
}

// ingredientMatches is substring-tolerant in both directions, so
// "salicylic-acid" matches "salicylic-acid-2%" and vice versa.
func ingredientMatches(ingredient, target string) bool {
	if ingredient == "" || target == "" {
		return false
	}
	return strings.Contains(ingredient, target) || strings.Contains(target, ingredient)
}

func itemHasAnyIngredient(item domain.Item, candidates []string) bool {
	for _, c := range candidates {
		for _, ing := range item.KeyIngredients {
			if ingredientMatches(ing, c) {
				return true
			}
		}
		for _, ing := range item.Ingredients {
			if ingredientMatches(ing, c) {
				return true
			}
		}
	}
	return false
}

func targetsOnlyGroup(item domain.Item, group func(domain.SkinType) bool) bool {
	if len(item.SkinTypes) == 0 {
		return false
	}
	for _, st := range item.SkinTypes {
		if st == domain.SkinTypeAll || !group(st) {
			return false
		}
	}
	return true
}

func dryOnly(item domain.Item) bool {
	return targetsOnlyGroup(item, func(st domain.SkinType) bool { return st == domain.SkinTypeDry })
}

func oilyOnly(item domain.Item) bool {
	return targetsOnlyGroup(item, func(st domain.SkinType) bool { return st == domain.SkinTypeOily })
}

func scoreSkinType(acc *scoreAccumulator, item domain.Item, profile domain.Profile, top *domain.Concern) {
	if !item.SuitsSkinType(profile.SkinType) {
		return
	}
	points := float64(scoreSkinTypeMatch)
	// the override keys off the single top concern, not the whole list
	if top != nil {
		switch {
		case top.ID.OilyType() && dryOnly(item):
			points = scoreSkinTypeOilyConflict
		case top.ID.DryType() && oilyOnly(item):
			points = scoreSkinTypeDryConflict
		}
	}
	acc.add(points, "suits %s skin", profile.SkinType)
}

func scoreConcernCoverage(acc *scoreAccumulator, item domain.Item, concerns []domain.Concern) {
	if len(concerns) == 0 {
		return
	}
	total := 0.0
	for _, c := range concerns {
		total += c.Priority
	}
	if total <= 0 {
		return
	}
	matched := 0.0
	var names []string
	for _, c := range concerns {
		if item.Addresses(c.ID) {
			matched += c.Priority
			names = append(names, string(c.ID))
		}
	}
	if matched <= 0 {
		return
	}
	acc.add(maxConcernCoverage*matched/total, "targets your concerns: %s", strings.Join(names, ", "))
}

func scoreIngredients(acc *scoreAccumulator, item domain.Item, concerns []domain.Concern) {
	preferred := preferredIngredients(concerns)
	if len(preferred) == 0 {
		return
	}
	found := 0
	var names []string
	for _, pref := range preferred {
		for _, ing := range item.KeyIngredients {
			if ingredientMatches(ing, pref) {
				found++
				names = append(names, pref)
				break
			}
		}
	}
	if found == 0 {
		return
	}
	acc.add(maxIngredientMatch*float64(found)/float64(len(preferred)),
		"contains beneficial ingredients: %s", strings.Join(names, ", "))
}

// preferredIngredients is the deduplicated union of the in-play concerns'
// preferred ingredient lists, in concern-priority order.
func preferredIngredients(concerns []domain.Concern) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range concerns {
		for _, ing := range c.PreferredIngredients {
			if !seen[ing] {
				seen[ing] = true
				out = append(out, ing)
			}
		}
	}
	return out
}

func scoreSensitivity(acc *scoreAccumulator, item domain.Item, profile domain.Profile) {
	switch {
	case profile.Sensitivity.Elevated() && item.SensitivitySafe:
		acc.add(scoreSensitivitySafe, "gentle formula for sensitive skin")
	case profile.Sensitivity.Elevated():
		acc.add(scoreSensitivityUnsafe, "not marked safe for sensitive skin")
	default:
		acc.add(scoreSensitivityNeutral, "no sensitivity constraints")
	}
}

var (
	soothingIngredients = []string{"aloe", "panthenol", "allantoin", "centella-asiatica", "oat-extract"}
	cleansingOilClasses = []string{"jojoba-oil", "micellar", "glycolic-acid", "salicylic-acid"}
	calmingIngredients  = []string{"niacinamide", "centella-asiatica", "chamomile", "green-tea"}
)

// scoreLifestyle applies the conditional lifestyle bonuses. Each condition is
// an independent, cumulative adjustment, never a gate.
func scoreLifestyle(acc *scoreAccumulator, item domain.Item, profile domain.Profile) {
	if profile.HairRemovalMethod != "" && itemHasAnyIngredient(item, soothingIngredients) {
		points := 3.0
		if profile.HairRemovalFrequency == "daily" || profile.HairRemovalFrequency == "weekly" {
			points = 5
		}
		acc.add(points, "soothes skin after %s", profile.HairRemovalMethod)
	}

	if (profile.MakeupIntensity == "medium" || profile.MakeupIntensity == "heavy") &&
		item.Category == domain.CategoryCleanser && itemHasAnyIngredient(item, cleansingOilClasses) {
		points := 4.0
		if profile.MakeupIntensity == "heavy" {
			points = 7
		}
		acc.add(points, "removes %s makeup thoroughly", profile.MakeupIntensity)
	}

	if len(profile.StressIssues) > 0 && itemHasAnyIngredient(item, calmingIngredients) {
		acc.add(3, "calms stress-related skin issues")
		for _, issue := range profile.StressIssues {
			if issue == "breakouts" && itemHasAnyIngredient(item, []string{"niacinamide"}) {
				acc.add(2, "helps with stress breakouts")
				break
			}
		}
	}
}

// activeScentPreferences applies the contradiction rule: selecting unscented
// together with any scented option collapses the set to unscented only.
func activeScentPreferences(profile domain.Profile) []string {
	prefs := profile.ScentPreferences
	if len(prefs) < 2 {
		return prefs
	}
	for _, p := range prefs {
		if p == domain.ScentUnscented {
			return []string{domain.ScentUnscented}
		}
	}
	return prefs
}

func scoreScent(acc *scoreAccumulator, item domain.Item, profile domain.Profile) {
	active := activeScentPreferences(profile)
	if len(active) == 0 {
		return
	}
	perPref := maxScentMatch / float64(len(active))
	for _, pref := range active {
		for _, tag := range item.PreferenceTags {
			if tag == pref || (pref == domain.ScentUnscented && tag == "fragrance-free") {
				acc.add(perPref, "matches your %s scent preference", pref)
				break
			}
		}
	}
}

func prefersHeavyTexture(profile domain.Profile) bool {
	return len(profile.PreferredTextures) > 0 && profile.PreferredTextures[0].Heavy()
}

func scoreTexture(acc *scoreAccumulator, item domain.Item, profile domain.Profile, top *domain.Concern) {
	if item.Texture == "" {
		acc.add(scoreTextureUnknown, "texture not specified")
		return
	}
	for _, t := range profile.PreferredTextures {
		if t == item.Texture {
			acc.add(scoreTextureMatch, "%s texture matches your preference", item.Texture)
			return
		}
	}

	penalty := float64(penaltyTextureMismatch)
	reason := fmt.Sprintf("%s texture is not your preferred feel", item.Texture)
	if top != nil {
		switch {
		case top.ID.OilyType() && item.Texture.Heavy():
			penalty = penaltyTextureHeavyOily
			reason = fmt.Sprintf("%s texture is too rich while tackling %s", item.Texture, top.ID)
		case top.ID.DryType() && item.Texture.Lightweight() && prefersHeavyTexture(profile):
			penalty = penaltyTextureLightDry
			reason = fmt.Sprintf("%s texture may be too light for %s", item.Texture, top.ID)
		}
	}
	acc.add(penalty, "%s", reason)
}

// scoreSkinTypeTopConcern is the second, independent top-concern-driven skin
// type penalty, applied symmetrically to catch targeting conflicts the
// initial skin-type term never sees (items that did not match the profile's
// skin type in the first place).
func scoreSkinTypeTopConcern(acc *scoreAccumulator, item domain.Item, profile domain.Profile, top *domain.Concern) {
	if top == nil || item.SuitsSkinType(profile.SkinType) {
		return
	}
	switch {
	case top.ID.OilyType() && dryOnly(item):
		acc.add(penaltySkinTypeOilyTop, "made for dry skin while your main concern is %s", top.ID)
	case top.ID.DryType() && oilyOnly(item):
		acc.add(penaltySkinTypeDryTop, "made for oily skin while your main concern is %s", top.ID)
	}
}

// scoreSubcategory applies category-specific refinement bonuses.
func scoreSubcategory(acc *scoreAccumulator, item domain.Item, profile domain.Profile) {
	switch item.Category {
	case domain.CategoryEyeCare:
		if item.Subcategory == "eye-gel" && !prefersHeavyTexture(profile) {
			acc.add(3, "light eye gel fits your texture preference")
		} else if item.Subcategory == "eye-cream" && prefersHeavyTexture(profile) {
			acc.add(3, "rich eye cream fits your texture preference")
		}
	case domain.CategoryCleanser:
		switch {
		case item.Subcategory == "foaming" && profile.SkinType == domain.SkinTypeOily:
			acc.add(4, "foaming cleanser works well for oily skin")
		case item.Subcategory == "cream-cleanser" && profile.SkinType == domain.SkinTypeDry:
			acc.add(4, "cream cleanser avoids stripping dry skin")
		case item.Subcategory == "foaming" && profile.SkinType == domain.SkinTypeDry:
			acc.add(-3, "foaming cleanser can be drying")
		}
	case domain.CategorySunscreen:
		if item.Subcategory == "mineral" && profile.Sensitivity.Elevated() {
			acc.add(5, "mineral filter is gentler on sensitive skin")
		}
	}
}

func scoreClimate(acc *scoreAccumulator, item domain.Item, profile domain.Profile) {
	if profile.Climate == "" {
		return
	}
	if item.SuitsClimate(profile.Climate) {
		acc.add(scoreClimateMatch, "suited to a %s climate", profile.Climate)
	}
}

func scoreRating(acc *scoreAccumulator, item domain.Item) {
	if !item.HasRating || item.Rating <= 0 {
		return
	}
	rating := item.Rating
	if rating > 5 {
		rating = 5
	}
	acc.add(maxRatingBonus*rating/5, "rated %.1f by other customers", item.Rating)
}

func scorePreferences(acc *scoreAccumulator, item domain.Item, profile domain.Profile) {
	if len(profile.Preferences) == 0 {
		return
	}
	tags := make(map[string]bool, len(item.PreferenceTags))
	for _, t := range item.PreferenceTags {
		tags[t] = true
	}

	matched, missed := 0, 0
	var matchedNames []string
	for _, pref := range profile.Preferences {
		if tags[pref] {
			matched++
			matchedNames = append(matchedNames, pref)
		} else {
			missed++
		}
	}

	if matched > 0 {
		bonus := float64(matched * prefMatchBonus)
		if bonus > prefMatchCap {
			bonus = prefMatchCap
		}
		acc.add(bonus, "matches your preferences: %s", strings.Join(matchedNames, ", "))
	}
	if missed > 0 {
		penalty := float64(missed * prefMissPenalty)
		if penalty < prefMissCap {
			penalty = prefMissCap
		}
		acc.add(penalty, "does not meet %d of your preferences", missed)
	}
}

func scoreAvoidIngredients(acc *scoreAccumulator, item domain.Item, concerns []domain.Concern) {
	ingredients := item.Ingredients
	if len(ingredients) == 0 {
		ingredients = item.KeyIngredients
	}
	for _, c := range concerns {
		for _, avoid := range c.AvoidIngredients {
			for _, ing := range ingredients {
				if ingredientMatches(ing, avoid) {
					acc.add(penaltyAvoidIngredient, "contains %s, best avoided for %s", avoid, c.ID)
					return
				}
			}
		}
	}
}

// PriceTier buckets a price into the budget tiers the questionnaire offers.
func PriceTier(price float64) domain.BudgetTier {
	switch {
	case price < budgetLowCeiling:
		return domain.BudgetLow
	case price <= budgetMidCeiling:
		return domain.BudgetMid
	default:
		return domain.BudgetPremium
	}
}

func budgetRank(t domain.BudgetTier) int {
	switch t {
	case domain.BudgetLow:
		return 0
	case domain.BudgetMid:
		return 1
	case domain.BudgetPremium:
		return 2
	}
	return -1
}

func scoreBudget(acc *scoreAccumulator, item domain.Item, profile domain.Profile) {
	want := budgetRank(profile.Budget)
	if want < 0 {
		return
	}
	have := budgetRank(PriceTier(item.Price))
	distance := have - want
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		acc.add(scoreBudgetMatch, "fits your %s budget", profile.Budget)
	case 1:
		acc.add(penaltyBudgetNear, "slightly outside your %s budget", profile.Budget)
	default:
		acc.add(penaltyBudgetFar, "well outside your %s budget", profile.Budget)
	}
}
