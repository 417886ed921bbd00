package recommend

import (
	"testing"

	"glowAdvisor/domain"
)

func TestAnalyzeConcernsSkipsUnknownTags(t *testing.T) {
	concerns := AnalyzeConcerns([]string{"acne", "frizzle", "dryness"}, "", "", "")
	if len(concerns) != 2 {
		t.Fatalf("got %d concerns, want 2", len(concerns))
	}
}

func TestAnalyzeConcernsSeverityRaisesAcne(t *testing.T) {
	mild := AnalyzeConcerns([]string{"acne"}, domain.Age26To35, "", domain.AcneSeverityMild)
	severe := AnalyzeConcerns([]string{"acne"}, domain.Age26To35, "", domain.AcneSeveritySevere)

	if mild[0].Priority != 1.0 {
		t.Errorf("mild acne priority = %v, want 1.0", mild[0].Priority)
	}
	if severe[0].Priority != 1.6 {
		t.Errorf("severe acne priority = %v, want 1.6", severe[0].Priority)
	}
}

func TestAnalyzeConcernsAgeAndSunCompound(t *testing.T) {
	// aging at 56+ with high sun exposure: 1.5 * 1.3
	concerns := AnalyzeConcerns([]string{"aging"}, domain.Age56Plus, domain.SunExposureHigh, "")
	want := 1.5 * 1.3
	if got := concerns[0].Priority; got != want {
		t.Errorf("aging priority = %v, want %v", got, want)
	}
}

func TestAnalyzeConcernsOrdering(t *testing.T) {
	// for a 56+ profile, aging (1.5) must outrank acne (0.7)
	concerns := AnalyzeConcerns([]string{"acne", "aging"}, domain.Age56Plus, "", "")
	if concerns[0].ID != domain.ConcernAging {
		t.Errorf("top concern = %q, want aging", concerns[0].ID)
	}

	// equal priorities keep selection order
	tied := AnalyzeConcerns([]string{"redness", "pigmentation"}, domain.Age26To35, "", "")
	if tied[0].ID != domain.ConcernRedness {
		t.Errorf("tie-break should keep selection order, got %q first", tied[0].ID)
	}
}

func TestAnalyzeConcernsCarriesCatalogData(t *testing.T) {
	concerns := AnalyzeConcerns([]string{"dryness"}, "", "", "")
	c := concerns[0]

	if c.DisplayName == "" {
		t.Error("display name should be set")
	}
	if len(c.RequiredCategories) == 0 {
		t.Error("required categories should be set")
	}
	if len(c.PreferredIngredients) == 0 {
		t.Error("preferred ingredients should be set")
	}
}
