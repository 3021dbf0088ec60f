package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Complete(_ context.Context, _ string, _ int) (string, error) {
	return "ok", nil
}

func (s *stubProvider) GetModelName() string    { return "stub-model" }
func (s *stubProvider) GetProviderName() string { return s.name }

// MockAIProviderFactory es un mock para testing
type MockAIProviderFactory struct {
	name      string
	createErr error
}

func (m *MockAIProviderFactory) CreateProvider(_ context.Context, _ *config.Config) (ports.AIProvider, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &stubProvider{name: m.name}, nil
}

func (m *MockAIProviderFactory) ValidateConfig(_ *config.Config) error {
	return nil
}

func (m *MockAIProviderFactory) Name() string {
	return m.name
}

func TestNewAIProviderRegistry(t *testing.T) {
	registry := NewAIProviderRegistry()
	assert.NotNil(t, registry)
	assert.Empty(t, registry.List())
}

func TestRegister(t *testing.T) {
	registry := NewAIProviderRegistry()
	mockFactory := &MockAIProviderFactory{name: "test-provider"}

	err := registry.Register("test", mockFactory)
	assert.NoError(t, err)
	assert.True(t, registry.IsRegistered("test"))

	err = registry.Register("test", mockFactory)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya esta registrado")
}

func TestGet(t *testing.T) {
	registry := NewAIProviderRegistry()
	require.NoError(t, registry.Register("gemini", &MockAIProviderFactory{name: "gemini"}))

	factory, err := registry.Get("gemini")
	require.NoError(t, err)
	assert.Equal(t, "gemini", factory.Name())

	_, err = registry.Get("otro")
	assert.True(t, errors.Is(err, domainErrors.ErrProviderNotFound))
}

func TestList(t *testing.T) {
	registry := NewAIProviderRegistry()
	require.NoError(t, registry.Register("openrouter", &MockAIProviderFactory{name: "openrouter"}))
	require.NoError(t, registry.Register("gemini", &MockAIProviderFactory{name: "gemini"}))

	assert.Equal(t, []string{"gemini", "openrouter"}, registry.List())
}

func TestCreateActive(t *testing.T) {
	registry := NewAIProviderRegistry()
	require.NoError(t, registry.Register("gemini", &MockAIProviderFactory{name: "gemini"}))
	require.NoError(t, registry.Register("openrouter", &MockAIProviderFactory{name: "openrouter", createErr: errors.New("sin key")}))

	t.Run("crea el proveedor activo", func(t *testing.T) {
		cfg := &config.Config{AIConfig: config.AIConfig{ActiveAI: config.AIGemini}}
		provider, err := registry.CreateActive(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, "gemini", provider.GetProviderName())
	})

	t.Run("propaga el error de la factory", func(t *testing.T) {
		cfg := &config.Config{AIConfig: config.AIConfig{ActiveAI: config.AIOpenRouter}}
		_, err := registry.CreateActive(context.Background(), cfg)
		assert.EqualError(t, err, "sin key")
	})

	t.Run("proveedor no registrado", func(t *testing.T) {
		cfg := &config.Config{AIConfig: config.AIConfig{ActiveAI: "llama"}}
		_, err := registry.CreateActive(context.Background(), cfg)
		assert.True(t, errors.Is(err, domainErrors.ErrProviderNotFound))
	})
}
