package coverage

import (
	"math/rand"

	"glowAdvisor/domain"

	"github.com/jaswdr/faker"
)

// ProfileFactory fabricates questionnaire submissions for coverage runs.
// The same seed always yields the same sequence of profiles.
type ProfileFactory struct {
	fake faker.Faker
	rng  *rand.Rand
}

func NewProfileFactory(seed int64) *ProfileFactory {
	return &ProfileFactory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

var (
	ageBrackets = []string{"under-18", "18-25", "26-35", "36-45", "46-55", "56-plus"}
	skinTypes   = []string{"dry", "oily", "combination", "normal"}
	sensitivity = []string{"not", "somewhat", "very"}
	concernPool = []string{
		"acne", "oiliness", "large-pores", "dryness", "redness",
		"aging", "pigmentation", "dullness", "dark-circles",
	}
	acneSeverities = []string{"mild", "moderate", "severe"}
	climates       = []string{"humid", "dry", "temperate", "cold"}
	sunExposures   = []string{"low", "moderate", "high"}
	budgets        = []string{"budget", "mid-range", "premium"}
	preferencePool = []string{"vegan", "cruelty-free", "fragrance-free", "korean-beauty", "natural"}
	scentPool      = []string{"unscented", "floral", "citrus", "fresh"}
	lifestylePool  = []string{"outdoor-sports", "wears-makeup-daily", "late-nights", "frequent-travel"}
	allergenPool   = []string{"fragrance", "alcohol denat", "essential oils", "lanolin", "coconut oil"}
)

// Generate builds one synthetic questionnaire submission.
func (f *ProfileFactory) Generate() domain.RawResponses {
	responses := domain.RawResponses{
		"age_bracket":  f.pick(ageBrackets),
		"skin_type":    f.pick(skinTypes),
		"sensitivity":  f.pick(sensitivity),
		"climate":      f.pick(climates),
		"sun_exposure": f.pick(sunExposures),
		"budget":       f.pick(budgets),
	}

	concerns := f.pickN(concernPool, 1+f.rng.Intn(3))
	responses["concerns"] = concerns

	for _, concern := range concerns {
		if concern == "acne" {
			responses["acne_severity"] = f.pick(acneSeverities)
			break
		}
	}

	if f.rng.Float64() < 0.3 {
		allergies := f.pickN(allergenPool, 1+f.rng.Intn(2))
		// some respondents type in an allergen we have never heard of
		if f.rng.Float64() < 0.2 {
			allergies = append(allergies, f.fake.Lorem().Word())
		}
		responses["allergies"] = allergies
	}

	if f.rng.Float64() < 0.5 {
		responses["preferences"] = f.pickN(preferencePool, 1+f.rng.Intn(2))
	}

	if f.rng.Float64() < 0.4 {
		responses["scent_preferences"] = f.pickN(scentPool, 1)
	}

	if f.rng.Float64() < 0.4 {
		responses["lifestyle"] = f.pickN(lifestylePool, 1+f.rng.Intn(2))
	}

	return responses
}

func (f *ProfileFactory) pick(pool []string) string {
	return pool[f.rng.Intn(len(pool))]
}

func (f *ProfileFactory) pickN(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}

	idx := f.rng.Perm(len(pool))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}
