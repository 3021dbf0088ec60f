package gemini

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/httpclient"
	"google.golang.org/genai"
)

// GeminiProviderFactory implementa AIProviderFactory para Gemini
type GeminiProviderFactory struct {
	// baseURL permite apuntar el cliente a otro endpoint (tests).
	baseURL string
}

// NewGeminiProviderFactory crea una nueva factory para Gemini
func NewGeminiProviderFactory() *GeminiProviderFactory {
	return &GeminiProviderFactory{}
}

// CreateProvider crea el proveedor Gemini con el API key y modelo configurados.
func (f *GeminiProviderFactory) CreateProvider(ctx context.Context, cfg *config.Config) (ports.AIProvider, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	providerCfg := cfg.AIProviders[f.Name()]

	clientCfg := &genai.ClientConfig{
		APIKey:     providerCfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpclient.NewDefaultHTTPClient(cfg.HTTPTimeout),
	}
	if f.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: f.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creando cliente de gemini: %w", err)
	}

	return NewGeminiProvider(client, providerCfg.Model), nil
}

// ValidateConfig valida la configuración de Gemini
func (f *GeminiProviderFactory) ValidateConfig(cfg *config.Config) error {
	providerCfg, exists := cfg.AIProviders[f.Name()]
	if !exists {
		return fmt.Errorf("configuracion de gemini no encontrada")
	}

	if providerCfg.APIKey == "" {
		return domainErrors.ErrAIAPIKeyMissing.WithContext("field", "GEMINI_API_KEY")
	}

	if providerCfg.Model == "" {
		return fmt.Errorf("gemini model es requerido")
	}

	return nil
}

// Name retorna el nombre del proveedor
func (f *GeminiProviderFactory) Name() string {
	return string(config.AIGemini)
}
