package ai

import (
	"context"
	"strconv"

	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/cache"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
)

var _ ports.AIProvider = (*CachingProvider)(nil)

// CachingProvider envuelve un proveedor y reutiliza respuestas para prompts idénticos.
// Los errores nunca se cachean.
type CachingProvider struct {
	provider ports.AIProvider
	cache    *cache.Cache
}

// NewCachingProvider crea un wrapper agnóstico de proveedor
func NewCachingProvider(provider ports.AIProvider, c *cache.Cache) *CachingProvider {
	return &CachingProvider{
		provider: provider,
		cache:    c,
	}
}

func (w *CachingProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	key := w.cache.GenerateHash(w.provider.GetProviderName() + "\x00" + w.provider.GetModelName() +
		"\x00" + strconv.Itoa(maxTokens) + "\x00" + prompt)

	if cached, hit := w.cache.Get(key); hit {
		logger.Debug(ctx, "completion served from cache", "provider", w.provider.GetProviderName())
		return cached, nil
	}

	resp, err := w.provider.Complete(ctx, prompt, maxTokens)
	if err != nil {
		return "", err
	}

	w.cache.Set(key, resp)
	return resp, nil
}

func (w *CachingProvider) GetModelName() string {
	return w.provider.GetModelName()
}

func (w *CachingProvider) GetProviderName() string {
	return w.provider.GetProviderName()
}
