package recommend

import (
	"glowAdvisor/domain"
)

type phase int

const (
	phaseCore phase = iota + 1
	phaseTreatment
	phaseOptional
)

// phaseFor is the deterministic category-to-phase partition. The switch is
// exhaustive over the category enum so a new category is a compile-visible
// change here.
func phaseFor(cat domain.Category) phase {
	switch cat {
	case domain.CategoryCleanser, domain.CategoryMoisturizer, domain.CategorySunscreen:
		return phaseCore
	case domain.CategoryToner, domain.CategorySerum, domain.CategoryTreatment:
		return phaseTreatment
	case domain.CategoryEyeCare, domain.CategoryMask:
		return phaseOptional
	}
	return phaseOptional
}

// CategorizePhases partitions a resolved recommendation set into the three
// presentation phases. Core and treatment categories are always surfaced;
// optional categories appear only when their trigger condition holds and at
// least one item survived filtering. An item appears exactly once, in its
// category's phase.
func CategorizePhases(recs domain.RecommendationSet, profile domain.Profile, concerns []domain.Concern) domain.PhasedRecommendations {
	phased := domain.PhasedRecommendations{
		Phase1: make(map[domain.Category][]domain.Item),
		Phase2: make(map[domain.Category][]domain.Item),
		Phase3: make(map[domain.Category][]domain.Item),
	}

	for cat, scored := range recs {
		items := make([]domain.Item, 0, len(scored))
		for _, s := range scored {
			items = append(items, s.Item)
		}
		if len(items) == 0 {
			continue
		}

		switch phaseFor(cat) {
		case phaseCore:
			phased.Phase1[cat] = items
		case phaseTreatment:
			phased.Phase2[cat] = items
		case phaseOptional:
			if optionalCategoryTriggered(cat, profile, concerns) {
				phased.Phase3[cat] = items
			}
		}
	}

	return phased
}
