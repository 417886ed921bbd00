package recommend

import (
	"testing"

	"glowAdvisor/domain"
)

func recsWith(cats ...domain.Category) domain.RecommendationSet {
	recs := make(domain.RecommendationSet)
	for _, cat := range cats {
		recs[cat] = []domain.ScoredItem{
			{Item: catalogItem("itm-"+string(cat), cat, domain.SkinTypeAll, domain.TextureCream), Score: 60},
		}
	}
	return recs
}

func TestCategorizePhasesPartition(t *testing.T) {
	concerns := AnalyzeConcerns([]string{"acne"}, domain.Age18To25, "", "")
	profile := BuildProfile(domain.RawResponses{
		"skin_type": "oily",
		"concerns":  []string{"acne"},
	}, concerns)

	recs := recsWith(
		domain.CategoryCleanser,
		domain.CategoryMoisturizer,
		domain.CategorySunscreen,
		domain.CategoryToner,
		domain.CategorySerum,
		domain.CategoryTreatment,
	)

	phased := CategorizePhases(recs, profile, concerns)

	for _, cat := range []domain.Category{domain.CategoryCleanser, domain.CategoryMoisturizer, domain.CategorySunscreen} {
		if _, ok := phased.Phase1[cat]; !ok {
			t.Errorf("%q should be a core phase category", cat)
		}
	}
	for _, cat := range []domain.Category{domain.CategoryToner, domain.CategorySerum, domain.CategoryTreatment} {
		if _, ok := phased.Phase2[cat]; !ok {
			t.Errorf("%q should be a treatment phase category", cat)
		}
	}
	if len(phased.Phase3) != 0 {
		t.Errorf("no optional category was recommended, got %v", phased.Phase3)
	}
}

func TestCategorizePhasesEachItemAppearsOnce(t *testing.T) {
	concerns := AnalyzeConcerns([]string{"dryness"}, domain.Age26To35, "", "")
	profile := BuildProfile(domain.RawResponses{"skin_type": "dry"}, concerns)

	recs := recsWith(domain.CategoryCleanser, domain.CategorySerum)
	phased := CategorizePhases(recs, profile, concerns)

	seen := map[string]int{}
	for _, m := range []map[domain.Category][]domain.Item{phased.Phase1, phased.Phase2, phased.Phase3} {
		for _, items := range m {
			for _, it := range items {
				seen[it.SKU]++
			}
		}
	}
	for sku, n := range seen {
		if n != 1 {
			t.Errorf("item %q appears %d times across phases", sku, n)
		}
	}
	if len(seen) != 2 {
		t.Errorf("expected 2 items across phases, saw %d", len(seen))
	}
}

func TestCategorizePhasesOptionalRequiresTrigger(t *testing.T) {
	// dark circles trigger eye care; nothing triggers mask
	concerns := AnalyzeConcerns([]string{"dark-circles"}, domain.Age26To35, "", "")
	profile := BuildProfile(domain.RawResponses{
		"skin_type": "combination",
		"concerns":  []string{"dark-circles"},
	}, concerns)

	recs := recsWith(domain.CategoryEyeCare, domain.CategoryMask)
	phased := CategorizePhases(recs, profile, concerns)

	if _, ok := phased.Phase3[domain.CategoryEyeCare]; !ok {
		t.Error("eye care should surface for a dark-circles profile")
	}
	if _, ok := phased.Phase3[domain.CategoryMask]; ok {
		t.Error("mask has no trigger and must be withheld even if resolved")
	}
}

func TestCategorizePhasesDropsEmptyCategories(t *testing.T) {
	concerns := AnalyzeConcerns([]string{"dryness"}, domain.Age26To35, "", "")
	profile := BuildProfile(domain.RawResponses{"skin_type": "dry"}, concerns)

	recs := domain.RecommendationSet{
		domain.CategoryCleanser: nil,
	}
	phased := CategorizePhases(recs, profile, concerns)
	if len(phased.Phase1) != 0 {
		t.Errorf("empty category must not surface, got %v", phased.Phase1)
	}
}
