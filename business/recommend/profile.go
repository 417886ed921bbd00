package recommend

import (
	"glowAdvisor/domain"
)

// Questionnaire answer keys.
const (
	keyAgeBracket           = "age_bracket"
	keySkinType             = "skin_type"
	keySensitivity          = "sensitivity"
	keyConcerns             = "concerns"
	keyAcneSeverity         = "acne_severity"
	keyAllergies            = "allergies"
	keyPreferences          = "preferences"
	keyScentPreferences     = "scent_preferences"
	keyLifestyle            = "lifestyle"
	keyClimate              = "climate"
	keySunExposure          = "sun_exposure"
	keyBudget               = "budget"
	keyHairRemovalMethod    = "hair_removal_method"
	keyHairRemovalFrequency = "hair_removal_frequency"
	keyMakeupIntensity      = "makeup_intensity"
	keyStressIssues         = "stress_issues"
)

// BuildProfile turns raw questionnaire answers into a canonical Profile.
// The concern list must already be analyzed: the texture preference override
// keys off the single top concern, not off membership anywhere in the list,
// so a user whose top concern is dryness keeps a cream preference even when
// acne is a secondary concern.
func BuildProfile(responses domain.RawResponses, concerns []domain.Concern) domain.Profile {
	p := domain.Profile{
		AgeBracket:           domain.AgeBracket(stringAnswer(responses, keyAgeBracket)),
		SkinType:             domain.SkinType(stringAnswer(responses, keySkinType)),
		Sensitivity:          domain.SensitivityLevel(stringAnswer(responses, keySensitivity)),
		Lifestyle:            listAnswer(responses, keyLifestyle),
		ScentPreferences:     listAnswer(responses, keyScentPreferences),
		Allergies:            listAnswer(responses, keyAllergies),
		Preferences:          listAnswer(responses, keyPreferences),
		Climate:              domain.Climate(stringAnswer(responses, keyClimate)),
		SunExposure:          domain.SunExposure(stringAnswer(responses, keySunExposure)),
		Budget:               domain.BudgetTier(stringAnswer(responses, keyBudget)),
		HairRemovalMethod:    stringAnswer(responses, keyHairRemovalMethod),
		HairRemovalFrequency: stringAnswer(responses, keyHairRemovalFrequency),
		MakeupIntensity:      stringAnswer(responses, keyMakeupIntensity),
		StressIssues:         listAnswer(responses, keyStressIssues),
		AcneSeverity:         domain.AcneSeverity(stringAnswer(responses, keyAcneSeverity)),
	}

	p.PreferredTextures = preferredTextures(p.SkinType, p.AgeBracket, topConcern(concerns))

	return p
}

// ConcernTags extracts the selected concern tags from raw responses.
func ConcernTags(responses domain.RawResponses) []string {
	return listAnswer(responses, keyConcerns)
}

func stringAnswer(responses domain.RawResponses, key string) string {
	v, ok := responses[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return fold(s)
}

// listAnswer coerces a single-or-list answer into a folded string list.
func listAnswer(responses domain.RawResponses, key string) []string {
	v, ok := responses[key]
	if !ok || v == nil {
		return nil
	}
	switch val := v.(type) {
	case string:
		if f := fold(val); f != "" {
			return []string{f}
		}
		return nil
	case []string:
		return foldList(val)
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			if s, ok := e.(string); ok {
				if f := fold(s); f != "" {
					out = append(out, f)
				}
			}
		}
		return out
	}
	return nil
}

// baseTexturesForSkin returns the ordered base texture preference for a skin
// type, weighted toward its dominant need.
func baseTexturesForSkin(skin domain.SkinType) []domain.Texture {
	switch skin {
	case domain.SkinTypeOily:
		return []domain.Texture{domain.TextureGel, domain.TextureFoam, domain.TextureFluid}
	case domain.SkinTypeDry:
		return []domain.Texture{domain.TextureCream, domain.TextureBalm, domain.TextureLotion}
	case domain.SkinTypeCombination:
		return []domain.Texture{domain.TextureGel, domain.TextureLotion, domain.TextureCream}
	case domain.SkinTypeNormal:
		return []domain.Texture{domain.TextureLotion, domain.TextureCream, domain.TextureGel}
	}
	return []domain.Texture{domain.TextureLotion, domain.TextureGel, domain.TextureCream}
}

// preferredTextures derives the ordered texture preference from the two-axis
// skin-type x age table, then lets the top concern override the order.
func preferredTextures(skin domain.SkinType, age domain.AgeBracket, top *domain.Concern) []domain.Texture {
	textures := baseTexturesForSkin(skin)

	// age nudges: mature skin leans heavier, young skin leans lighter
	if age.Mature() {
		textures = promoteTexture(textures, domain.TextureCream)
	} else if age.Young() {
		textures = promoteTexture(textures, domain.TextureGel)
	}

	// top-concern override trumps the age/skin-type base
	if top != nil {
		if top.ID.OilyType() {
			textures = promoteTexture(textures, domain.TextureGel)
		} else if top.ID.DryType() {
			textures = promoteTexture(textures, domain.TextureCream)
		}
	}

	if len(textures) > 3 {
		textures = textures[:3]
	}
	return textures
}

// promoteTexture moves t to the front, inserting it if absent.
func promoteTexture(textures []domain.Texture, t domain.Texture) []domain.Texture {
	out := []domain.Texture{t}
	for _, existing := range textures {
		if existing != t {
			out = append(out, existing)
		}
	}
	return out
}
