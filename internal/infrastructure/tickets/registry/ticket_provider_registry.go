package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
)

// TicketProviderFactory define la interfaz para crear clientes de tickets
type TicketProviderFactory interface {
	// CreateClient crea el buscador de issues con la configuración proporcionada
	CreateClient(cfg *config.Config) ports.IssueSearcher

	// ValidateConfig valida la configuración para este proveedor
	ValidateConfig(cfg *config.Config) error

	// Name retorna el nombre del proveedor
	Name() string
}

// TicketProviderRegistry gestiona el registro de proveedores de tickets
type TicketProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]TicketProviderFactory
}

// NewTicketProviderRegistry crea un nuevo registro de proveedores de tickets
func NewTicketProviderRegistry() *TicketProviderRegistry {
	return &TicketProviderRegistry{
		factories: make(map[string]TicketProviderFactory),
	}
}

// Register registra un nuevo proveedor de tickets
func (r *TicketProviderRegistry) Register(name string, factory TicketProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("proveedor de tickets '%s' ya esta registrado", name)
	}

	r.factories[name] = factory
	return nil
}

// Get obtiene un factory por nombre
func (r *TicketProviderRegistry) Get(name string) (TicketProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("proveedor de tickets '%s' no encontrado en el registro", name)
	}

	return factory, nil
}

// List retorna la lista ordenada de proveedores registrados
func (r *TicketProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	sort.Strings(providers)
	return providers
}

// CreateClient crea el buscador del proveedor indicado. Una configuración incompleta no es un error:
// el cliente se crea igual y cada búsqueda falla hasta que se complete.
func (r *TicketProviderRegistry) CreateClient(ctx context.Context, name string, cfg *config.Config) (ports.IssueSearcher, error) {
	factory, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(cfg); err != nil {
		logger.Debug(ctx, "issue tracker is not fully configured", "provider", name, "error", err)
	}

	return factory.CreateClient(cfg), nil
}
