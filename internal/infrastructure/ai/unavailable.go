package ai

import (
	"context"

	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
)

var _ ports.AIProvider = (*UnavailableProvider)(nil)

// UnavailableProvider ocupa el lugar de un proveedor que no se pudo construir al arrancar
// (por ejemplo, sin API key). Cada Complete devuelve el error original.
type UnavailableProvider struct {
	name  string
	model string
	err   error
}

func NewUnavailableProvider(name, model string, err error) *UnavailableProvider {
	return &UnavailableProvider{name: name, model: model, err: err}
}

func (p *UnavailableProvider) Complete(_ context.Context, _ string, _ int) (string, error) {
	return "", p.err
}

func (p *UnavailableProvider) GetModelName() string {
	return p.model
}

func (p *UnavailableProvider) GetProviderName() string {
	return p.name
}
