package domain

// DisqualifiedScore marks a hard disqualification (allergen present or
// allergen safety unverifiable). It is a sentinel, not a low score.
const DisqualifiedScore = -999

// ScoreResult is the outcome of scoring one item for one profile.
type ScoreResult struct {
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Disqualified reports whether the item was hard-disqualified.
func (r ScoreResult) Disqualified() bool {
	return r.Score == DisqualifiedScore
}

// ScoredItem pairs an item with its score inside a recommendation set.
type ScoredItem struct {
	Item    Item     `json:"item"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
	// BestAvailable is set when the item only qualified through the lowest
	// selection tier.
	BestAvailable bool `json:"best_available,omitempty"`
}

// RecommendationSet maps a category to its ranked recommendations, at most
// three per category. A category with no viable item is simply absent.
type RecommendationSet map[Category][]ScoredItem

// PhasedRecommendations groups resolved recommendations into the three
// presentation phases. An item appears at most once across phases for its
// category.
type PhasedRecommendations struct {
	Phase1 map[Category][]Item `json:"phase1"`
	Phase2 map[Category][]Item `json:"phase2"`
	Phase3 map[Category][]Item `json:"phase3"`
}

// RoutineStep is one ordered step of a morning or evening routine.
type RoutineStep struct {
	Order       int      `json:"order"`
	Category    Category `json:"category"`
	ItemSKU     string   `json:"item_sku"`
	ItemName    string   `json:"item_name"`
	Instruction string   `json:"instruction"`
}

// RecommendationResult is the engine's complete output for one request.
type RecommendationResult struct {
	Recommendations RecommendationSet     `json:"recommendations"`
	Phased          PhasedRecommendations `json:"phased_recommendations"`
	MorningRoutine  []RoutineStep         `json:"morning_routine"`
	EveningRoutine  []RoutineStep         `json:"evening_routine"`
	Notices         []string              `json:"notices"`
}
