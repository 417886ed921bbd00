package recommend

import (
	"strings"
	"testing"

	"glowAdvisor/domain"
)

func baseItem() domain.Item {
	return domain.Item{
		SKU:         "cln-001",
		Name:        "clarifying gel cleanser",
		Category:    domain.CategoryCleanser,
		SkinTypes:   []domain.SkinType{domain.SkinTypeOily},
		Texture:     domain.TextureGel,
		InStock:     true,
		Usage:       domain.UsageBoth,
		Ingredients: []string{"water", "salicylic-acid", "glycerin"},
	}
}

func oilyAcneProfile() (domain.Profile, []domain.Concern) {
	concerns := AnalyzeConcerns([]string{"acne"}, domain.Age18To25, "", "")
	profile := BuildProfile(domain.RawResponses{
		"age_bracket": "18-25",
		"skin_type":   "oily",
		"concerns":    []string{"acne"},
	}, concerns)
	return profile, concerns
}

func TestScoreItemAllergenInFullList(t *testing.T) {
	profile, concerns := oilyAcneProfile()
	profile.Allergies = []string{"salicylic-acid"}

	item := baseItem()
	result := ScoreItem(item, profile, concerns, ScoreOptions{})

	if !result.Disqualified() {
		t.Fatalf("score = %v, want disqualification", result.Score)
	}
	if len(result.Reasons) != 1 || !strings.Contains(result.Reasons[0], "allergen") {
		t.Errorf("reasons = %v, want a single allergen exclusion", result.Reasons)
	}
}

func TestScoreItemAllergenSubstringBothDirections(t *testing.T) {
	profile, concerns := oilyAcneProfile()

	// allergen is a substring of the listed ingredient
	profile.Allergies = []string{"fragrance"}
	item := baseItem()
	item.Ingredients = []string{"water", "fragrance (parfum)"}
	if r := ScoreItem(item, profile, concerns, ScoreOptions{}); !r.Disqualified() {
		t.Error("allergen contained in ingredient should disqualify")
	}

	// listed ingredient is a substring of the allergen
	profile.Allergies = []string{"denatured-alcohol"}
	item.Ingredients = []string{"water", "alcohol"}
	if r := ScoreItem(item, profile, concerns, ScoreOptions{}); !r.Disqualified() {
		t.Error("ingredient contained in allergen should disqualify")
	}
}

func TestScoreItemMissingIngredientListWithAllergies(t *testing.T) {
	profile, concerns := oilyAcneProfile()
	profile.Allergies = []string{"fragrance"}

	item := baseItem()
	item.Ingredients = nil
	// a clean key-ingredient list must not rescue the item
	item.KeyIngredients = []string{"salicylic-acid"}

	result := ScoreItem(item, profile, concerns, ScoreOptions{})
	if !result.Disqualified() {
		t.Fatalf("score = %v, want disqualification when full list is missing", result.Score)
	}
}

func TestScoreItemNoAllergiesMissingListIsFine(t *testing.T) {
	profile, concerns := oilyAcneProfile()

	item := baseItem()
	item.Ingredients = nil

	result := ScoreItem(item, profile, concerns, ScoreOptions{})
	if result.Disqualified() {
		t.Fatal("no allergies declared, missing ingredient list must not disqualify")
	}
}

func TestScoreItemBounds(t *testing.T) {
	profile, concerns := oilyAcneProfile()

	// stack every bonus: concern match, ingredients, texture, rating, climate
	item := baseItem()
	item.Concerns = []domain.ConcernID{domain.ConcernAcne}
	item.KeyIngredients = []string{"salicylic-acid", "niacinamide", "tea-tree", "zinc"}
	item.Climates = []domain.Climate{domain.ClimateAll}
	item.Rating = 5
	item.HasRating = true
	profile.Climate = domain.ClimateHumid

	result := ScoreItem(item, profile, concerns, ScoreOptions{})
	if result.Score > 100 {
		t.Errorf("score = %v, want clamp at 100", result.Score)
	}

	// stack penalties: wrong texture, missed preferences, avoid ingredient
	worst := baseItem()
	worst.SkinTypes = []domain.SkinType{domain.SkinTypeDry}
	worst.Texture = domain.TextureOil
	worst.Ingredients = []string{"coconut-oil", "lanolin"}
	profile.Preferences = []string{"vegan", "cruelty-free", "fragrance-free", "natural"}

	result = ScoreItem(worst, profile, concerns, ScoreOptions{})
	if result.Disqualified() {
		t.Fatal("penalties must never disqualify")
	}
	if result.Score < 0 {
		t.Errorf("score = %v, want clamp at 0", result.Score)
	}
}

func TestScoreItemOilyAcneGelScenario(t *testing.T) {
	profile, concerns := oilyAcneProfile()

	item := baseItem()
	item.Concerns = []domain.ConcernID{domain.ConcernAcne}
	item.KeyIngredients = []string{"salicylic-acid"}

	result := ScoreItem(item, profile, concerns, ScoreOptions{})
	if result.Score < DefaultThresholds.High {
		t.Errorf("score = %v, want at least the high threshold %v", result.Score, DefaultThresholds.High)
	}
	if len(result.Reasons) == 0 {
		t.Error("expected scoring reasons")
	}
}

func TestScoreItemDrynessTopPrefersCreamOverGel(t *testing.T) {
	concerns := AnalyzeConcerns([]string{"dryness", "acne"}, domain.Age36To45, "", "")
	profile := BuildProfile(domain.RawResponses{
		"skin_type": "dry",
		"concerns":  []string{"dryness", "acne"},
	}, concerns)

	cream := domain.Item{
		SKU:       "mst-cream",
		Name:      "rich cream",
		Category:  domain.CategoryMoisturizer,
		SkinTypes: []domain.SkinType{domain.SkinTypeDry},
		Texture:   domain.TextureCream,
		Concerns:  []domain.ConcernID{domain.ConcernDryness},
		InStock:   true,
		Usage:     domain.UsageBoth,
	}
	gel := cream
	gel.SKU = "mst-gel"
	gel.Name = "light gel"
	gel.Texture = domain.TextureGel

	creamScore := ScoreItem(cream, profile, concerns, ScoreOptions{}).Score
	gelScore := ScoreItem(gel, profile, concerns, ScoreOptions{}).Score

	if creamScore <= gelScore {
		t.Errorf("cream (%v) should outscore gel (%v) for a dryness-led profile", creamScore, gelScore)
	}
}

func TestScoreItemMinimalMode(t *testing.T) {
	profile, concerns := oilyAcneProfile()
	profile.Sensitivity = domain.SensitivityVery

	match := baseItem()
	match.SensitivitySafe = true
	result := ScoreItem(match, profile, concerns, ScoreOptions{MinimalScoring: true})
	if result.Score != 35 {
		t.Errorf("full minimal match = %v, want 35", result.Score)
	}

	miss := baseItem()
	miss.SkinTypes = []domain.SkinType{domain.SkinTypeDry}
	result = ScoreItem(miss, profile, concerns, ScoreOptions{MinimalScoring: true})
	if result.Score != 0 {
		t.Errorf("minimal miss = %v, want 0", result.Score)
	}
	if len(result.Reasons) == 0 {
		t.Error("minimal scoring should still explain itself")
	}

	// the allergy gate precedes minimal scoring
	profile.Allergies = []string{"salicylic-acid"}
	result = ScoreItem(match, profile, concerns, ScoreOptions{MinimalScoring: true})
	if !result.Disqualified() {
		t.Error("minimal scoring must not bypass the allergy gate")
	}
}

func TestScoreItemIgnorePreferences(t *testing.T) {
	profile, concerns := oilyAcneProfile()
	profile.Preferences = []string{"vegan", "korean-beauty"}

	item := baseItem()

	with := ScoreItem(item, profile, concerns, ScoreOptions{}).Score
	without := ScoreItem(item, profile, concerns, ScoreOptions{IgnorePreferences: true}).Score

	if without <= with {
		t.Errorf("ignoring missed preferences should raise the score: with=%v without=%v", with, without)
	}
}

func TestScoreItemIgnoreSecondaryConcerns(t *testing.T) {
	concerns := AnalyzeConcerns([]string{"acne", "dullness"}, domain.Age18To25, "", "")

	profile := BuildProfile(domain.RawResponses{
		"skin_type": "oily",
		"concerns":  []string{"acne", "dullness"},
	}, concerns)

	// only addresses the secondary concern
	item := baseItem()
	item.Concerns = []domain.ConcernID{domain.ConcernDullness}

	full := ScoreItem(item, profile, concerns, ScoreOptions{}).Score
	relaxed := ScoreItem(item, profile, concerns, ScoreOptions{IgnoreSecondaryConcerns: true}).Score

	if relaxed >= full {
		t.Errorf("dropping the matched secondary concern should lower the score: full=%v relaxed=%v", full, relaxed)
	}
}

func TestScoreItemScentContradictionCollapses(t *testing.T) {
	profile, concerns := oilyAcneProfile()
	profile.ScentPreferences = []string{"unscented", "floral"}

	floral := baseItem()
	floral.PreferenceTags = []string{"floral"}

	plain := baseItem()
	plain.SKU = "cln-002"
	plain.PreferenceTags = []string{"fragrance-free"}

	floralScore := ScoreItem(floral, profile, concerns, ScoreOptions{}).Score
	plainScore := ScoreItem(plain, profile, concerns, ScoreOptions{}).Score

	if plainScore <= floralScore {
		t.Errorf("unscented should collapse the scent set: fragrance-free=%v floral=%v", plainScore, floralScore)
	}
}

func TestScoreItemFallbackReason(t *testing.T) {
	// a profile and item with nothing to say about each other
	profile := domain.Profile{SkinType: domain.SkinTypeDry}
	item := domain.Item{
		SKU:      "x-1",
		Name:     "mystery balm",
		Category: domain.CategoryMoisturizer,
		InStock:  true,
	}

	result := ScoreItem(item, profile, nil, ScoreOptions{})
	if len(result.Reasons) == 0 {
		t.Fatal("reasons must never be empty")
	}
}

func TestScoreItemBudgetTiers(t *testing.T) {
	profile, concerns := oilyAcneProfile()
	profile.Budget = domain.BudgetLow

	cheap := baseItem()
	cheap.Price = 9.99
	mid := baseItem()
	mid.Price = 30
	premium := baseItem()
	premium.Price = 90

	cheapScore := ScoreItem(cheap, profile, concerns, ScoreOptions{}).Score
	midScore := ScoreItem(mid, profile, concerns, ScoreOptions{}).Score
	premiumScore := ScoreItem(premium, profile, concerns, ScoreOptions{}).Score

	if !(cheapScore > midScore && midScore > premiumScore) {
		t.Errorf("budget ordering broken: %v, %v, %v", cheapScore, midScore, premiumScore)
	}
}
