package recommend

import (
	"reflect"
	"testing"

	"glowAdvisor/domain"
)

func fptr(f float64) *float64 { return &f }
func bptr(b bool) *bool       { return &b }

func validRawItem() domain.RawItem {
	return domain.RawItem{
		SKU:            "CLN-001",
		Name:           "Gentle Foam Cleanser",
		Brand:          "DermaLab",
		Category:       "Cleanser",
		Subcategory:    "Foaming",
		SkinTypes:      []string{"Oily", "Combination"},
		Concerns:       []string{"Acne"},
		KeyIngredients: []string{"Salicylic-Acid"},
		Ingredients:    []string{"Water", "Salicylic-Acid", "Glycerin"},
		PreferenceTags: []string{"Vegan"},
		Climates:       []string{"Humid"},
		Texture:        "Foam",
		Rating:         fptr(4.2),
		Price:          12.50,
		Usage:          "Both",
	}
}

func TestNormalizeItemFoldsAndDefaults(t *testing.T) {
	item, ok := NormalizeItem(validRawItem())
	if !ok {
		t.Fatal("expected valid item to normalize")
	}

	if item.SKU != "cln-001" || item.Name != "gentle foam cleanser" {
		t.Errorf("identity fields not folded: %q %q", item.SKU, item.Name)
	}
	if item.Category != domain.CategoryCleanser {
		t.Errorf("category = %q, want cleanser", item.Category)
	}
	if !item.InStock {
		t.Error("missing in_stock should default to true")
	}
	if item.SensitivitySafe {
		t.Error("missing sensitivity_safe should default to false")
	}
	if !item.HasRating || item.Rating != 4.2 {
		t.Errorf("rating = %v (has=%v), want 4.2", item.Rating, item.HasRating)
	}
}

func TestNormalizeItemIsIdempotent(t *testing.T) {
	first, ok := NormalizeItem(validRawItem())
	if !ok {
		t.Fatal("expected valid item to normalize")
	}

	// feed the normalized values back through as a raw record
	skinTypes := make([]string, len(first.SkinTypes))
	for i, st := range first.SkinTypes {
		skinTypes[i] = string(st)
	}
	concerns := make([]string, len(first.Concerns))
	for i, c := range first.Concerns {
		concerns[i] = string(c)
	}
	climates := make([]string, len(first.Climates))
	for i, c := range first.Climates {
		climates[i] = string(c)
	}

	second, ok := NormalizeItem(domain.RawItem{
		SKU:             first.SKU,
		Name:            first.Name,
		Brand:           first.Brand,
		Category:        string(first.Category),
		Subcategory:     first.Subcategory,
		SkinTypes:       skinTypes,
		Concerns:        concerns,
		KeyIngredients:  first.KeyIngredients,
		Ingredients:     first.Ingredients,
		PreferenceTags:  first.PreferenceTags,
		Climates:        climates,
		Texture:         string(first.Texture),
		Rating:          fptr(first.Rating),
		Price:           first.Price,
		SensitivitySafe: bptr(first.SensitivitySafe),
		InStock:         bptr(first.InStock),
		Usage:           string(first.Usage),
	})
	if !ok {
		t.Fatal("normalized item should re-normalize")
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNormalizeItemRejectsIncompleteRecords(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.RawItem)
	}{
		{"missing sku", func(r *domain.RawItem) { r.SKU = "  " }},
		{"missing name", func(r *domain.RawItem) { r.Name = "" }},
		{"unknown category", func(r *domain.RawItem) { r.Category = "perfume" }},
		{"empty category", func(r *domain.RawItem) { r.Category = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRawItem()
			tc.mutate(&raw)
			if _, ok := NormalizeItem(raw); ok {
				t.Errorf("expected %s to be rejected", tc.name)
			}
		})
	}
}

func TestNormalizeItemMapsLegacyCategories(t *testing.T) {
	cases := map[string]domain.Category{
		"Sun Protection": domain.CategorySunscreen,
		"sunblock":       domain.CategorySunscreen,
		"Eye Cream":      domain.CategoryEyeCare,
		"eye care":       domain.CategoryEyeCare,
	}

	for legacy, want := range cases {
		raw := validRawItem()
		raw.Category = legacy
		item, ok := NormalizeItem(raw)
		if !ok {
			t.Fatalf("legacy category %q rejected", legacy)
		}
		if item.Category != want {
			t.Errorf("category %q normalized to %q, want %q", legacy, item.Category, want)
		}
	}
}

func TestNormalizeItemUnknownTextureAndUsage(t *testing.T) {
	raw := validRawItem()
	raw.Texture = "whipped"
	raw.Usage = "whenever"

	item, ok := NormalizeItem(raw)
	if !ok {
		t.Fatal("expected item to normalize")
	}
	if item.Texture != "" {
		t.Errorf("unknown texture should stay empty, got %q", item.Texture)
	}
	if item.Usage != domain.UsageBoth {
		t.Errorf("unknown usage should default to both, got %q", item.Usage)
	}
}

func TestNormalizeAllDropsInvalid(t *testing.T) {
	bad := validRawItem()
	bad.SKU = ""

	items := NormalizeAll([]domain.RawItem{validRawItem(), bad})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}
