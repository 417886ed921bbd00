package coverage

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"glowAdvisor/domain"
)

func wideCatalog() []domain.RawItem {
	inStock := true
	safe := true
	return []domain.RawItem{
		{SKU: "cln-1", Name: "gel cleanser", Category: "cleanser", SkinTypes: []string{"all"}, Texture: "gel", Usage: "both", InStock: &inStock, SensitivitySafe: &safe, Ingredients: []string{"water", "glycerin"}},
		{SKU: "mst-1", Name: "daily moisturizer", Category: "moisturizer", SkinTypes: []string{"all"}, Texture: "lotion", Usage: "both", InStock: &inStock, SensitivitySafe: &safe, Ingredients: []string{"water", "squalane"}},
		{SKU: "sun-1", Name: "spf fluid", Category: "sunscreen", SkinTypes: []string{"all"}, Texture: "fluid", Usage: "morning", InStock: &inStock, SensitivitySafe: &safe, Ingredients: []string{"zinc-oxide"}},
		{SKU: "srm-1", Name: "niacinamide serum", Category: "serum", SkinTypes: []string{"all"}, Texture: "fluid", Usage: "both", InStock: &inStock, SensitivitySafe: &safe, Ingredients: []string{"niacinamide"}},
	}
}

func TestFactoryDeterministicPerSeed(t *testing.T) {
	a := NewProfileFactory(99)
	b := NewProfileFactory(99)

	for i := 0; i < 50; i++ {
		if !reflect.DeepEqual(a.Generate(), b.Generate()) {
			t.Fatalf("profile %d diverged for identical seeds", i)
		}
	}
}

func TestFactoryGeneratesValidAnswers(t *testing.T) {
	f := NewProfileFactory(7)

	for i := 0; i < 200; i++ {
		responses := f.Generate()

		for _, key := range []string{"age_bracket", "skin_type", "sensitivity", "climate", "sun_exposure", "budget"} {
			if v, _ := responses[key].(string); v == "" {
				t.Fatalf("profile %d missing %q", i, key)
			}
		}

		concerns, ok := responses["concerns"].([]string)
		if !ok || len(concerns) == 0 {
			t.Fatalf("profile %d has no concerns", i)
		}

		hasAcne := false
		for _, c := range concerns {
			if c == "acne" {
				hasAcne = true
			}
		}
		if _, ok := responses["acne_severity"]; ok != hasAcne {
			t.Fatalf("profile %d acne_severity presence (%v) disagrees with concerns %v", i, ok, concerns)
		}
	}
}

func TestRunnerAggregates(t *testing.T) {
	runner := NewRunner(wideCatalog(), 42)

	ticks := 0
	report, err := runner.Run(context.Background(), 100, func() { ticks++ })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Profiles != 100 {
		t.Errorf("profiles = %d, want 100", report.Profiles)
	}
	if ticks != 100 {
		t.Errorf("progress ticks = %d, want 100", ticks)
	}

	total := 0
	for _, n := range report.BySkinType {
		total += n
	}
	if total != 100 {
		t.Errorf("skin type counts sum to %d, want 100", total)
	}

	// every profile needs sun protection; only rare allergy collisions may
	// exclude the single sunscreen
	if fill := report.FilledByCategory[domain.CategorySunscreen]; fill < 90 {
		t.Errorf("sunscreen fill = %d, want at least 90", fill)
	}
	if report.AvgMorningSteps <= 0 {
		t.Error("average morning steps should be positive with this catalog")
	}

	concernTotal := 0
	for _, n := range report.ByConcern {
		concernTotal += n
	}
	if concernTotal < 100 {
		t.Errorf("concern counts sum to %d, want at least one per profile", concernTotal)
	}

	// the whole catalog is priced at zero, so every pick lands in the low tier
	for tier, n := range report.PriceTiers {
		if tier != domain.BudgetLow && n > 0 {
			t.Errorf("tier %q counted %d picks from a zero-priced catalog", tier, n)
		}
	}
	if report.PriceTiers[domain.BudgetLow] == 0 {
		t.Error("price tier counts are empty")
	}
}

func TestRunnerDeterministicReports(t *testing.T) {
	first, err := NewRunner(wideCatalog(), 42).Run(context.Background(), 50, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := NewRunner(wideCatalog(), 42).Run(context.Background(), 50, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed and catalog must produce the same report")
	}
}

func TestRunnerEmptyCatalogMissesEverything(t *testing.T) {
	report, err := NewRunner(nil, 1).Run(context.Background(), 20, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.CriticalMisses != 20 {
		t.Errorf("critical misses = %d, want 20", report.CriticalMisses)
	}
}

func TestRunnerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRunner(wideCatalog(), 1).Run(ctx, 10, nil); err == nil {
		t.Error("a cancelled context must abort the run")
	}
}

func TestReportSummaryMentionsKeyFigures(t *testing.T) {
	report, err := NewRunner(wideCatalog(), 42).Run(context.Background(), 10, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	summary := report.Summary()
	for _, want := range []string{"profiles run", "critical misses", "category fill rates", "sunscreen"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
