package recommend

import (
	"strings"

	"glowAdvisor/domain"
)

// legacyCategories maps category spellings still present in older
// spreadsheet exports to their canonical form.
var legacyCategories = map[string]domain.Category{
	"sun protection": domain.CategorySunscreen,
	"sunblock":       domain.CategorySunscreen,
	"eye cream":      domain.CategoryEyeCare,
	"eye care":       domain.CategoryEyeCare,
}

// NormalizeItem lower-cases and trims every string field of a raw candidate
// record, maps legacy category spellings, and fills defaults (in_stock true,
// sensitivity_safe false, missing lists empty). It reports false for records
// lacking an identifier, name, or usable category; such records are excluded
// from scoring entirely. Normalization is idempotent and never mutates its
// input.
func NormalizeItem(raw domain.RawItem) (domain.Item, bool) {
	sku := fold(raw.SKU)
	name := fold(raw.Name)
	category := normalizeCategory(raw.Category)

	if sku == "" || name == "" || !category.Valid() {
		return domain.Item{}, false
	}

	item := domain.Item{
		SKU:            sku,
		Name:           name,
		Brand:          fold(raw.Brand),
		Category:       category,
		Subcategory:    fold(raw.Subcategory),
		SkinTypes:      normalizeSkinTypes(raw.SkinTypes),
		Concerns:       normalizeConcerns(raw.Concerns),
		KeyIngredients: foldList(raw.KeyIngredients),
		Ingredients:    foldList(raw.Ingredients),
		PreferenceTags: foldList(raw.PreferenceTags),
		Climates:       normalizeClimates(raw.Climates),
		Texture:        normalizeTexture(raw.Texture),
		Price:          raw.Price,
		Usage:          normalizeUsage(raw.Usage),

		SensitivitySafe: false,
		InStock:         true,
	}

	if raw.Rating != nil {
		item.Rating = *raw.Rating
		item.HasRating = true
	}
	if raw.SensitivitySafe != nil {
		item.SensitivitySafe = *raw.SensitivitySafe
	}
	if raw.InStock != nil {
		item.InStock = *raw.InStock
	}

	return item, true
}

// NormalizeAll normalizes a candidate list, silently dropping invalid
// records.
func NormalizeAll(raw []domain.RawItem) []domain.Item {
	items := make([]domain.Item, 0, len(raw))
	for _, r := range raw {
		if it, ok := NormalizeItem(r); ok {
			items = append(items, it)
		}
	}
	return items
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func foldList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if f := fold(s); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func normalizeCategory(s string) domain.Category {
	folded := fold(s)
	if canonical, ok := legacyCategories[folded]; ok {
		return canonical
	}
	return domain.Category(folded)
}

func normalizeSkinTypes(list []string) []domain.SkinType {
	out := make([]domain.SkinType, 0, len(list))
	for _, s := range foldList(list) {
		switch st := domain.SkinType(s); st {
		case domain.SkinTypeDry, domain.SkinTypeOily, domain.SkinTypeCombination,
			domain.SkinTypeNormal, domain.SkinTypeAll:
			out = append(out, st)
		}
	}
	return out
}

func normalizeConcerns(list []string) []domain.ConcernID {
	out := make([]domain.ConcernID, 0, len(list))
	for _, s := range foldList(list) {
		out = append(out, domain.ConcernID(s))
	}
	return out
}

func normalizeClimates(list []string) []domain.Climate {
	out := make([]domain.Climate, 0, len(list))
	for _, s := range foldList(list) {
		out = append(out, domain.Climate(s))
	}
	return out
}

func normalizeTexture(s string) domain.Texture {
	switch t := domain.Texture(fold(s)); t {
	case domain.TextureGel, domain.TextureFoam, domain.TextureFluid,
		domain.TextureLotion, domain.TextureCream, domain.TextureBalm, domain.TextureOil:
		return t
	}
	// unknown textures stay unknown rather than guessing
	return ""
}

func normalizeUsage(s string) domain.UsageWindow {
	switch u := domain.UsageWindow(fold(s)); u {
	case domain.UsageMorning, domain.UsageEvening, domain.UsageBoth:
		return u
	}
	return domain.UsageBoth
}
