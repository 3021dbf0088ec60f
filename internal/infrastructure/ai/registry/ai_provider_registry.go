package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
)

// AIProviderFactory define la interfaz para crear proveedores de IA
type AIProviderFactory interface {
	// CreateProvider crea el proveedor de completions a partir de la config
	CreateProvider(ctx context.Context, cfg *config.Config) (ports.AIProvider, error)

	// ValidateConfig valida la configuración para este proveedor
	ValidateConfig(cfg *config.Config) error

	// Name retorna el nombre del proveedor
	Name() string
}

// AIProviderRegistry gestiona el registro de proveedores de IA
type AIProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]AIProviderFactory
}

// NewAIProviderRegistry crea un nuevo registro de proveedores de IA
func NewAIProviderRegistry() *AIProviderRegistry {
	return &AIProviderRegistry{
		factories: make(map[string]AIProviderFactory),
	}
}

// Register registra un nuevo proveedor de IA
func (r *AIProviderRegistry) Register(name string, factory AIProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("proveedor IA '%s' ya esta registrado", name)
	}

	r.factories[name] = factory
	return nil
}

// Get obtiene un factory por nombre
func (r *AIProviderRegistry) Get(name string) (AIProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, domainErrors.ErrProviderNotFound.WithContext("field", name)
	}

	return factory, nil
}

// List retorna la lista ordenada de proveedores registrados
func (r *AIProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	sort.Strings(providers)
	return providers
}

// IsRegistered verifica si un proveedor está registrado
func (r *AIProviderRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// CreateActive crea el proveedor indicado por cfg.AIConfig.ActiveAI.
func (r *AIProviderRegistry) CreateActive(ctx context.Context, cfg *config.Config) (ports.AIProvider, error) {
	factory, err := r.Get(string(cfg.AIConfig.ActiveAI))
	if err != nil {
		return nil, err
	}
	return factory.CreateProvider(ctx, cfg)
}
