package gemini

import (
	"context"

	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
	"google.golang.org/genai"
)

// NoResponse se devuelve cuando Gemini responde sin texto en el primer candidato.
const NoResponse = "No response from Gemini."

var _ ports.AIProvider = (*GeminiProvider)(nil)

// GeminiProvider implementa ports.AIProvider sobre el SDK genai.
type GeminiProvider struct {
	Client *genai.Client
	model  string
}

// NewGeminiProvider creates a new instance of GeminiProvider
func NewGeminiProvider(client *genai.Client, model string) *GeminiProvider {
	return &GeminiProvider{
		Client: client,
		model:  model,
	}
}

// Complete envía el prompt como un único content de texto y acota la salida a maxTokens.
func (g *GeminiProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	genCfg := &genai.GenerateContentConfig{}
	if maxTokens > 0 {
		genCfg.MaxOutputTokens = int32(maxTokens)
	}

	resp, err := g.Client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", domainErrors.ErrAIGeneration.
			WithContext("provider", g.GetProviderName()).
			WithError(err)
	}

	text, ok := firstText(resp)
	if !ok {
		logger.Warn(ctx, "gemini returned no text, using fallback", "model", g.model)
		return NoResponse, nil
	}
	return text, nil
}

// firstText extrae candidates[0].content.parts[0].text.
func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", false
	}
	part := cand.Content.Parts[0]
	if part == nil || part.Text == "" {
		return "", false
	}
	return part.Text, true
}

// GetModelName implements ports.AIProvider
func (g *GeminiProvider) GetModelName() string {
	return g.model
}

// GetProviderName implements ports.AIProvider
func (g *GeminiProvider) GetProviderName() string {
	return "gemini"
}
