package di

import (
	"context"
	"errors"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/cache"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/tickets/jira"
	ticketregistry "github.com/Tomas-vilte/MateRelay/internal/infrastructure/tickets/registry"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
	"github.com/Tomas-vilte/MateRelay/internal/services"
)

var _ ticketregistry.TicketProviderFactory = (*jira.JiraProviderFactory)(nil)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config *config.Config

	// Registries
	aiRegistry     *registry.AIProviderRegistry
	ticketRegistry *ticketregistry.TicketProviderRegistry

	// Services (lazy initialized)
	issueSearcher ports.IssueSearcher
	aiProvider    ports.AIProvider
	relayService  ports.RelayService
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:         cfg,
		aiRegistry:     registry.NewAIProviderRegistry(),
		ticketRegistry: ticketregistry.NewTicketProviderRegistry(),
	}
}

// RegisterAIProvider registra un proveedor de IA
func (c *Container) RegisterAIProvider(name string, factory registry.AIProviderFactory) error {
	return c.aiRegistry.Register(name, factory)
}

// RegisterTicketProvider registra un proveedor de tickets
func (c *Container) RegisterTicketProvider(name string, factory ticketregistry.TicketProviderFactory) error {
	return c.ticketRegistry.Register(name, factory)
}

// GetAIRegistry retorna el registro de proveedores AI
func (c *Container) GetAIRegistry() *registry.AIProviderRegistry {
	return c.aiRegistry
}

// GetIssueSearcher retorna el cliente del tracker (lazy initialization). Sin credenciales
// el cliente igual se crea y falla en cada búsqueda.
func (c *Container) GetIssueSearcher(ctx context.Context) (ports.IssueSearcher, error) {
	if c.issueSearcher != nil {
		return c.issueSearcher, nil
	}
	searcher, err := c.ticketRegistry.CreateClient(ctx, config.TicketJira, c.config)
	if err != nil {
		return nil, err
	}

	c.issueSearcher = searcher
	return c.issueSearcher, nil
}

// GetAIProvider retorna el proveedor de IA activo (lazy initialization).
// Un proveedor mal configurado no impide arrancar: se reemplaza por uno que falla en cada pedido.
// Con AI_CACHE_SIZE > 0 el proveedor se envuelve con la cache de completions.
func (c *Container) GetAIProvider(ctx context.Context) (ports.AIProvider, error) {
	if c.aiProvider != nil {
		return c.aiProvider, nil
	}

	active := string(c.config.AIConfig.ActiveAI)
	provider, err := c.aiRegistry.CreateActive(ctx, c.config)
	if errors.Is(err, domainErrors.ErrProviderNotFound) {
		return nil, err
	}
	if err != nil {
		logger.Debug(ctx, "AI provider unavailable, requests will fail", "provider", active, "error", err)
		provider = ai.NewUnavailableProvider(active, c.config.ActiveProvider().Model, err)
	}

	if c.config.Cache.Size > 0 {
		provider = ai.NewCachingProvider(provider, cache.NewCache(c.config.Cache.Size, c.config.Cache.TTL))
	}

	c.aiProvider = provider
	return c.aiProvider, nil
}

// GetRelayService retorna el servicio del relé con sus dependencias resueltas.
func (c *Container) GetRelayService(ctx context.Context) (ports.RelayService, error) {
	if c.relayService != nil {
		return c.relayService, nil
	}

	searcher, err := c.GetIssueSearcher(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := c.GetAIProvider(ctx)
	if err != nil {
		return nil, err
	}

	c.relayService = services.NewRelayService(c.config, searcher, provider)
	return c.relayService, nil
}
