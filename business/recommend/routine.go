package recommend

import (
	"glowAdvisor/domain"
)

// Fixed step order per time of day.
var (
	morningSteps = []domain.Category{
		domain.CategoryCleanser,
		domain.CategoryToner,
		domain.CategorySerum,
		domain.CategoryEyeCare,
		domain.CategoryMoisturizer,
		domain.CategorySunscreen,
	}
	eveningSteps = []domain.Category{
		domain.CategoryCleanser,
		domain.CategoryToner,
		domain.CategoryTreatment,
		domain.CategorySerum,
		domain.CategoryEyeCare,
		domain.CategoryMoisturizer,
		domain.CategoryMask,
	}
)

var morningInstructions = map[domain.Category]string{
	domain.CategoryCleanser:    "Wash your face with lukewarm water and pat dry.",
	domain.CategoryToner:       "Sweep over the face with a cotton pad or pat in with your hands.",
	domain.CategorySerum:       "Apply a few drops and press gently into the skin.",
	domain.CategoryEyeCare:     "Dab a small amount around the orbital bone with your ring finger.",
	domain.CategoryMoisturizer: "Smooth evenly over face and neck.",
	domain.CategorySunscreen:   "Apply generously as the last step, at least 15 minutes before sun exposure.",
}

var eveningInstructions = map[domain.Category]string{
	domain.CategoryCleanser:    "Cleanse thoroughly to remove sunscreen, makeup, and the day's buildup.",
	domain.CategoryToner:       "Sweep over the face with a cotton pad or pat in with your hands.",
	domain.CategoryTreatment:   "Apply a thin layer to affected areas only; let it absorb before the next step.",
	domain.CategorySerum:       "Apply a few drops and press gently into the skin.",
	domain.CategoryEyeCare:     "Dab a small amount around the orbital bone with your ring finger.",
	domain.CategoryMoisturizer: "Seal everything in with an even layer over face and neck.",
	domain.CategoryMask:        "Use 1-2 times a week after cleansing; rinse off per the product's timing.",
}

// BuildRoutine linearizes the resolved recommendations into ordered steps
// for one time of day. Steps whose category has no item usable in that
// window are skipped. For elevated sensitivity a sensitivity-safe item is
// preferred over a higher-scored unsafe one; the morning eye-care step is
// skipped entirely when no sensitivity-safe candidate exists, deferring it
// to the evening.
func BuildRoutine(recs domain.RecommendationSet, profile domain.Profile, window domain.UsageWindow) []domain.RoutineStep {
	steps := morningSteps
	instructions := morningInstructions
	if window == domain.UsageEvening {
		steps = eveningSteps
		instructions = eveningInstructions
	}

	routine := make([]domain.RoutineStep, 0, len(steps))
	for _, cat := range steps {
		candidates := usableInWindow(recs[cat], window)
		if len(candidates) == 0 {
			continue
		}

		chosen, ok := pickForSensitivity(candidates, profile, cat, window)
		if !ok {
			continue
		}

		routine = append(routine, domain.RoutineStep{
			Order:       len(routine) + 1,
			Category:    cat,
			ItemSKU:     chosen.Item.SKU,
			ItemName:    chosen.Item.Name,
			Instruction: instructions[cat],
		})
	}
	return routine
}

func usableInWindow(scored []domain.ScoredItem, window domain.UsageWindow) []domain.ScoredItem {
	out := make([]domain.ScoredItem, 0, len(scored))
	for _, s := range scored {
		if s.Item.Usage.Includes(window) {
			out = append(out, s)
		}
	}
	return out
}

// pickForSensitivity returns the candidate to use for a step. Candidates are
// already in score order.
func pickForSensitivity(candidates []domain.ScoredItem, profile domain.Profile, cat domain.Category, window domain.UsageWindow) (domain.ScoredItem, bool) {
	if !profile.Sensitivity.Elevated() {
		return candidates[0], true
	}
	for _, c := range candidates {
		if c.Item.SensitivitySafe {
			return c, true
		}
	}
	// the skin around the eyes is thinnest; never push an unsafe product
	// there in the morning
	if cat == domain.CategoryEyeCare && window == domain.UsageMorning {
		return domain.ScoredItem{}, false
	}
	return candidates[0], true
}
