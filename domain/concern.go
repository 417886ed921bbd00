package domain

// ConcernID is the closed set of skin concern identifiers.
type ConcernID string

const (
	ConcernAcne         ConcernID = "acne"
	ConcernOiliness     ConcernID = "oiliness"
	ConcernLargePores   ConcernID = "large-pores"
	ConcernDryness      ConcernID = "dryness"
	ConcernRedness      ConcernID = "redness"
	ConcernAging        ConcernID = "aging"
	ConcernPigmentation ConcernID = "pigmentation"
	ConcernDullness     ConcernID = "dullness"
	ConcernDarkCircles  ConcernID = "dark-circles"
)

// OilyType reports whether the concern belongs to the oily-type group, which
// biases scoring toward lightweight textures and oily-skin targeting.
func (c ConcernID) OilyType() bool {
	return c == ConcernAcne || c == ConcernOiliness || c == ConcernLargePores
}

// DryType reports whether the concern belongs to the dry-type group.
func (c ConcernID) DryType() bool {
	return c == ConcernDryness || c == ConcernRedness || c == ConcernAging
}

// EyeRelated reports whether the concern triggers the eye-care category.
func (c ConcernID) EyeRelated() bool {
	return c == ConcernDarkCircles
}

// Concern is a selected skin concern with its derived priority. The analyzer
// returns concerns sorted descending by priority; the head of that list is
// the top concern referenced by several scoring overrides.
type Concern struct {
	ID                   ConcernID  `json:"id"`
	DisplayName          string     `json:"display_name"`
	Priority             float64    `json:"priority"`
	RequiredCategories   []Category `json:"required_categories"`
	PreferredIngredients []string   `json:"preferred_ingredients"`
	AvoidIngredients     []string   `json:"avoid_ingredients"`
}
