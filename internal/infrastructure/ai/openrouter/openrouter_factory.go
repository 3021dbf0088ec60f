package openrouter

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/httpclient"
)

// OpenRouterProviderFactory implementa AIProviderFactory para OpenRouter
type OpenRouterProviderFactory struct{}

func NewOpenRouterProviderFactory() *OpenRouterProviderFactory {
	return &OpenRouterProviderFactory{}
}

func (f *OpenRouterProviderFactory) CreateProvider(_ context.Context, cfg *config.Config) (ports.AIProvider, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	p := cfg.AIProviders[f.Name()]
	return NewOpenRouterService(p.BaseURL, p.APIKey, p.Model, httpclient.NewDefaultHTTPClient(cfg.HTTPTimeout)), nil
}

func (f *OpenRouterProviderFactory) ValidateConfig(cfg *config.Config) error {
	p, exists := cfg.AIProviders[f.Name()]
	if !exists {
		return fmt.Errorf("configuracion de openrouter no encontrada")
	}
	if p.APIKey == "" {
		return domainErrors.ErrAIAPIKeyMissing.WithContext("field", "OPENROUTER_API_KEY")
	}
	if p.BaseURL == "" {
		return fmt.Errorf("openrouter base URL es requerida")
	}
	if p.Model == "" {
		return fmt.Errorf("openrouter model es requerido")
	}
	return nil
}

func (f *OpenRouterProviderFactory) Name() string {
	return string(config.AIOpenRouter)
}
