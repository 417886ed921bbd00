package recommend

import (
	"sort"

	"glowAdvisor/domain"
)

type concernSpec struct {
	display    string
	categories []domain.Category
	preferred  []string
	avoid      []string
}

// concernCatalog defines the known concerns, the categories each one
// requires, and its ingredient guidance.
var concernCatalog = map[domain.ConcernID]concernSpec{
	domain.ConcernAcne: {
		display:    "Acne & breakouts",
		categories: []domain.Category{domain.CategoryCleanser, domain.CategoryTreatment, domain.CategoryMoisturizer},
		preferred:  []string{"salicylic-acid", "niacinamide", "tea-tree", "zinc"},
		avoid:      []string{"coconut-oil", "isopropyl-myristate", "lanolin"},
	},
	domain.ConcernOiliness: {
		display:    "Excess oil",
		categories: []domain.Category{domain.CategoryCleanser, domain.CategoryToner},
		preferred:  []string{"niacinamide", "zinc", "clay", "witch-hazel"},
		avoid:      []string{"mineral-oil"},
	},
	domain.ConcernLargePores: {
		display:    "Visible pores",
		categories: []domain.Category{domain.CategoryToner, domain.CategorySerum},
		preferred:  []string{"niacinamide", "retinol", "bha"},
		avoid:      []string{"mineral-oil"},
	},
	domain.ConcernDryness: {
		display:    "Dryness",
		categories: []domain.Category{domain.CategoryCleanser, domain.CategoryMoisturizer},
		preferred:  []string{"hyaluronic-acid", "ceramides", "glycerin", "squalane"},
		avoid:      []string{"denatured-alcohol"},
	},
	domain.ConcernRedness: {
		display:    "Redness & irritation",
		categories: []domain.Category{domain.CategorySerum, domain.CategoryMoisturizer},
		preferred:  []string{"centella-asiatica", "panthenol", "allantoin", "oat-extract"},
		avoid:      []string{"fragrance", "menthol", "denatured-alcohol"},
	},
	domain.ConcernAging: {
		display:    "Fine lines & firmness",
		categories: []domain.Category{domain.CategorySerum, domain.CategoryMoisturizer},
		preferred:  []string{"retinol", "peptides", "vitamin-c", "bakuchiol"},
		avoid:      nil,
	},
	domain.ConcernPigmentation: {
		display:    "Dark spots & uneven tone",
		categories: []domain.Category{domain.CategorySerum, domain.CategoryTreatment},
		preferred:  []string{"vitamin-c", "arbutin", "tranexamic-acid", "azelaic-acid"},
		avoid:      nil,
	},
	domain.ConcernDullness: {
		display:    "Dull skin",
		categories: []domain.Category{domain.CategorySerum, domain.CategoryMask},
		preferred:  []string{"vitamin-c", "glycolic-acid", "niacinamide"},
		avoid:      nil,
	},
	domain.ConcernDarkCircles: {
		display:    "Dark circles & puffiness",
		categories: []domain.Category{domain.CategoryEyeCare},
		preferred:  []string{"caffeine", "vitamin-k", "peptides"},
		avoid:      nil,
	},
}

// Priority multiplier tables. Missing entries mean 1.0 (no adjustment).
var concernAgeModifiers = map[domain.ConcernID]map[domain.AgeBracket]float64{
	domain.ConcernAcne: {
		domain.AgeUnder18: 1.4,
		domain.Age18To25:  1.3,
		domain.Age46To55:  0.8,
		domain.Age56Plus:  0.7,
	},
	domain.ConcernAging: {
		domain.AgeUnder18: 0.5,
		domain.Age18To25:  0.7,
		domain.Age36To45:  1.2,
		domain.Age46To55:  1.4,
		domain.Age56Plus:  1.5,
	},
	domain.ConcernDarkCircles: {
		domain.Age36To45: 1.1,
		domain.Age46To55: 1.2,
		domain.Age56Plus: 1.2,
	},
	domain.ConcernDryness: {
		domain.Age46To55: 1.2,
		domain.Age56Plus: 1.3,
	},
	domain.ConcernOiliness: {
		domain.AgeUnder18: 1.2,
		domain.Age18To25:  1.2,
		domain.Age56Plus:  0.8,
	},
}

var concernSunModifiers = map[domain.ConcernID]map[domain.SunExposure]float64{
	domain.ConcernPigmentation: {
		domain.SunExposureModerate: 1.2,
		domain.SunExposureHigh:     1.4,
	},
	domain.ConcernAging: {
		domain.SunExposureModerate: 1.1,
		domain.SunExposureHigh:     1.3,
	},
	domain.ConcernDryness: {
		domain.SunExposureHigh: 1.1,
	},
	domain.ConcernRedness: {
		domain.SunExposureHigh: 1.1,
	},
}

var acneSeverityModifiers = map[domain.AcneSeverity]float64{
	domain.AcneSeverityMild:     1.0,
	domain.AcneSeverityModerate: 1.3,
	domain.AcneSeveritySevere:   1.6,
}

// AnalyzeConcerns expands selected concern tags into weighted Concern
// records. Unknown tags are skipped. The result is sorted descending by
// priority; ties keep the original selection order.
func AnalyzeConcerns(tags []string, age domain.AgeBracket, sun domain.SunExposure, severity domain.AcneSeverity) []domain.Concern {
	concerns := make([]domain.Concern, 0, len(tags))
	for _, tag := range tags {
		id := domain.ConcernID(fold(tag))
		spec, ok := concernCatalog[id]
		if !ok {
			continue
		}

		priority := 1.0
		if mods, ok := concernAgeModifiers[id]; ok {
			if m, ok := mods[age]; ok {
				priority *= m
			}
		}
		if mods, ok := concernSunModifiers[id]; ok {
			if m, ok := mods[sun]; ok {
				priority *= m
			}
		}
		if id == domain.ConcernAcne {
			if m, ok := acneSeverityModifiers[severity]; ok {
				priority *= m
			}
		}

		concerns = append(concerns, domain.Concern{
			ID:                   id,
			DisplayName:          spec.display,
			Priority:             priority,
			RequiredCategories:   spec.categories,
			PreferredIngredients: spec.preferred,
			AvoidIngredients:     spec.avoid,
		})
	}

	sort.SliceStable(concerns, func(i, j int) bool {
		return concerns[i].Priority > concerns[j].Priority
	})

	return concerns
}

func topConcern(concerns []domain.Concern) *domain.Concern {
	if len(concerns) == 0 {
		return nil
	}
	return &concerns[0]
}
