package recommend

import (
	"glowAdvisor/domain"
)

// BuildRecommendations is the engine's public entry point: a deterministic,
// side-effect-free transformation from raw questionnaire responses and raw
// candidate items to a complete recommendation result. It never fails on
// data-quality problems; unusable records are excluded and constraint
// relaxations are reported through the result's notices.
func BuildRecommendations(responses domain.RawResponses, rawItems []domain.RawItem) domain.RecommendationResult {
	return BuildRecommendationsWith(responses, rawItems, Options{})
}

// BuildRecommendationsWith is BuildRecommendations with tuned resolution
// options.
func BuildRecommendationsWith(responses domain.RawResponses, rawItems []domain.RawItem, opts Options) domain.RecommendationResult {
	age := domain.AgeBracket(stringAnswer(responses, keyAgeBracket))
	sun := domain.SunExposure(stringAnswer(responses, keySunExposure))
	severity := domain.AcneSeverity(stringAnswer(responses, keyAcneSeverity))

	concerns := AnalyzeConcerns(ConcernTags(responses), age, sun, severity)
	profile := BuildProfile(responses, concerns)
	items := NormalizeAll(rawItems)

	recs, notices := Resolve(profile, concerns, items, opts)
	if notices == nil {
		notices = []string{}
	}

	return domain.RecommendationResult{
		Recommendations: recs,
		Phased:          CategorizePhases(recs, profile, concerns),
		MorningRoutine:  BuildRoutine(recs, profile, domain.UsageMorning),
		EveningRoutine:  BuildRoutine(recs, profile, domain.UsageEvening),
		Notices:         notices,
	}
}
