package domain

type AgeBracket string

const (
	AgeUnder18 AgeBracket = "under-18"
	Age18To25  AgeBracket = "18-25"
	Age26To35  AgeBracket = "26-35"
	Age36To45  AgeBracket = "36-45"
	Age46To55  AgeBracket = "46-55"
	Age56Plus  AgeBracket = "56-plus"
)

// Mature reports whether the bracket is 46 or older.
func (a AgeBracket) Mature() bool {
	return a == Age46To55 || a == Age56Plus
}

// Young reports whether the bracket is 25 or younger.
func (a AgeBracket) Young() bool {
	return a == AgeUnder18 || a == Age18To25
}

type SensitivityLevel string

const (
	SensitivityNot      SensitivityLevel = "not"
	SensitivitySomewhat SensitivityLevel = "somewhat"
	SensitivityVery     SensitivityLevel = "very"
)

// Elevated reports whether sensitivity-safe products should be preferred.
func (s SensitivityLevel) Elevated() bool {
	return s == SensitivitySomewhat || s == SensitivityVery
}

type SunExposure string

const (
	SunExposureLow      SunExposure = "low"
	SunExposureModerate SunExposure = "moderate"
	SunExposureHigh     SunExposure = "high"
)

type AcneSeverity string

const (
	AcneSeverityMild     AcneSeverity = "mild"
	AcneSeverityModerate AcneSeverity = "moderate"
	AcneSeveritySevere   AcneSeverity = "severe"
)

type BudgetTier string

const (
	BudgetLow     BudgetTier = "budget"
	BudgetMid     BudgetTier = "mid-range"
	BudgetPremium BudgetTier = "premium"
)

// ScentUnscented is the scent preference that collapses any co-selected
// scented preference.
const ScentUnscented = "unscented"

// RawResponses is the flat questionnaire answer mapping as submitted by the
// client: question id to string, list of strings, or nil.
type RawResponses map[string]any

// Profile is the canonical per-request user profile. It is built once by
// the profile builder and never mutated afterwards.
type Profile struct {
	AgeBracket        AgeBracket       `json:"age_bracket"`
	SkinType          SkinType         `json:"skin_type"`
	Sensitivity       SensitivityLevel `json:"sensitivity"`
	Lifestyle         []string         `json:"lifestyle"`
	PreferredTextures []Texture        `json:"preferred_textures"`
	ScentPreferences  []string         `json:"scent_preferences"`
	Allergies         []string         `json:"allergies"`
	Preferences       []string         `json:"preferences"`
	Climate           Climate          `json:"climate"`
	SunExposure       SunExposure      `json:"sun_exposure"`
	Budget            BudgetTier       `json:"budget"`

	// Conditional answers; empty when the corresponding question was not
	// asked or not answered.
	HairRemovalMethod    string       `json:"hair_removal_method"`
	HairRemovalFrequency string       `json:"hair_removal_frequency"`
	MakeupIntensity      string       `json:"makeup_intensity"`
	StressIssues         []string     `json:"stress_issues"`
	AcneSeverity         AcneSeverity `json:"acne_severity"`
}
