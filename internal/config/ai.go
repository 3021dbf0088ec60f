package config

import "strings"

type AI string

const (
	AIGemini     AI = "gemini"
	AIOpenRouter AI = "openrouter"
)

type Model string

const (
	ModelGeminiV15Flash Model = "gemini-1.5-flash"
	ModelGeminiV25Flash Model = "gemini-2.5-flash"
	ModelGeminiV25Pro   Model = "gemini-2.5-pro"

	ModelDeepSeekR1Free Model = "deepseek/deepseek-r1:free"
)

const openRouterModelPrefix = "openrouter:"

func SupportedAIs() []AI {
	return []AI{
		AIGemini,
		AIOpenRouter,
	}
}

func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIGemini:
		return []Model{
			ModelGeminiV15Flash,
			ModelGeminiV25Flash,
			ModelGeminiV25Pro,
		}
	case AIOpenRouter:
		return []Model{
			ModelDeepSeekR1Free,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	models := ModelsForAI(ai)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// NormalizeModel quita el prefijo "openrouter:" que algunos ids de modelo traen.
func NormalizeModel(ai AI, model string) string {
	model = strings.TrimSpace(model)
	if ai == AIOpenRouter {
		model = strings.TrimPrefix(model, openRouterModelPrefix)
	}
	return model
}

func isSupportedAI(ai AI) bool {
	for _, a := range SupportedAIs() {
		if a == ai {
			return true
		}
	}
	return false
}
