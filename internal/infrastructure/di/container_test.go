package di

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai/openrouter"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/tickets/jira"
	"github.com/Tomas-vilte/MateRelay/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAIFactory struct {
	mock.Mock
}

func (m *mockAIFactory) CreateProvider(ctx context.Context, cfg *config.Config) (ports.AIProvider, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.AIProvider), args.Error(1)
}

func (m *mockAIFactory) ValidateConfig(cfg *config.Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

func (m *mockAIFactory) Name() string {
	return "mock"
}

func testConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.FromLookup(func(key string) string { return env[key] })
	require.NoError(t, err)
	return cfg
}

func TestContainer_GetAIProvider(t *testing.T) {
	t.Run("debería crear el proveedor activo", func(t *testing.T) {
		cfg := testConfig(t, map[string]string{"AI_PROVIDER": "openrouter", "OPENROUTER_API_KEY": "key"})
		container := NewContainer(cfg)
		require.NoError(t, container.RegisterAIProvider("openrouter", openrouter.NewOpenRouterProviderFactory()))

		provider, err := container.GetAIProvider(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "openrouter", provider.GetProviderName())
		assert.Equal(t, "deepseek/deepseek-r1:free", provider.GetModelName())

		again, err := container.GetAIProvider(context.Background())
		require.NoError(t, err)
		assert.Same(t, provider, again)
	})

	t.Run("sin API key el proveedor falla en cada pedido", func(t *testing.T) {
		cfg := testConfig(t, map[string]string{"AI_PROVIDER": "openrouter"})
		container := NewContainer(cfg)
		require.NoError(t, container.RegisterAIProvider("openrouter", openrouter.NewOpenRouterProviderFactory()))

		provider, err := container.GetAIProvider(context.Background())
		require.NoError(t, err)
		assert.IsType(t, &ai.UnavailableProvider{}, provider)

		_, err = provider.Complete(context.Background(), "hola", 10)
		assert.True(t, errors.Is(err, domainErrors.ErrAIAPIKeyMissing))
		assert.Equal(t, domainErrors.TypeAI, domainErrors.TypeOf(err))
	})

	t.Run("proveedor no registrado es un error", func(t *testing.T) {
		cfg := testConfig(t, nil)
		container := NewContainer(cfg)

		provider, err := container.GetAIProvider(context.Background())

		assert.Nil(t, provider)
		assert.True(t, errors.Is(err, domainErrors.ErrProviderNotFound))
	})

	t.Run("con cache configurada envuelve al proveedor", func(t *testing.T) {
		cfg := testConfig(t, map[string]string{"AI_CACHE_SIZE": "8"})
		cfg.AIConfig.ActiveAI = "mock"
		factory := new(mockAIFactory)
		inner := new(services.MockAIProvider)
		factory.On("CreateProvider", mock.Anything, cfg).Return(inner, nil).Once()
		inner.On("Complete", mock.Anything, "hola", 10).Return("respuesta", nil).Once()

		container := NewContainer(cfg)
		require.NoError(t, container.RegisterAIProvider("mock", factory))

		provider, err := container.GetAIProvider(context.Background())
		require.NoError(t, err)
		assert.IsType(t, &ai.CachingProvider{}, provider)

		for i := 0; i < 2; i++ {
			out, err := provider.Complete(context.Background(), "hola", 10)
			require.NoError(t, err)
			assert.Equal(t, "respuesta", out)
		}
		inner.AssertExpectations(t)
		factory.AssertExpectations(t)
	})
}

func TestContainer_GetRelayService(t *testing.T) {
	t.Run("sin proveedor de tickets es un error", func(t *testing.T) {
		container := NewContainer(testConfig(t, nil))

		relay, err := container.GetRelayService(context.Background())

		assert.Nil(t, relay)
		assert.Error(t, err)
	})

	t.Run("arma el servicio aunque falten credenciales", func(t *testing.T) {
		cfg := testConfig(t, map[string]string{"AI_PROVIDER": "openrouter"})
		container := NewContainer(cfg)
		require.NoError(t, container.RegisterTicketProvider("jira", jira.NewJiraProviderFactory()))
		require.NoError(t, container.RegisterAIProvider("openrouter", openrouter.NewOpenRouterProviderFactory()))

		relay, err := container.GetRelayService(context.Background())
		require.NoError(t, err)
		require.NotNil(t, relay)

		_, err = relay.SearchIssues(context.Background(), models.IssueFilter{})
		assert.True(t, errors.Is(err, domainErrors.ErrTrackerNotConfigured))

		again, err := container.GetRelayService(context.Background())
		require.NoError(t, err)
		assert.Same(t, relay, again)
	})
}
