package jira

import (
	"fmt"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/httpclient"
)

// JiraProviderFactory crea el cliente de búsqueda de Jira a partir de la config.
type JiraProviderFactory struct{}

// NewJiraProviderFactory crea una nueva factory para Jira
func NewJiraProviderFactory() *JiraProviderFactory {
	return &JiraProviderFactory{}
}

// CreateClient crea un cliente Jira con el timeout configurado.
func (f *JiraProviderFactory) CreateClient(cfg *config.Config) ports.IssueSearcher {
	return NewJiraService(cfg.JiraConfig, httpclient.NewDefaultHTTPClient(cfg.HTTPTimeout))
}

// ValidateConfig valida la configuración de Jira. Una config incompleta no impide arrancar,
// pero cada búsqueda va a fallar hasta que se complete.
func (f *JiraProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.JiraConfig.BaseURL == "" {
		return fmt.Errorf("jira base URL es requerida")
	}
	if cfg.JiraConfig.APIKey == "" {
		return fmt.Errorf("jira API token es requerido")
	}
	if cfg.JiraConfig.Email == "" {
		return fmt.Errorf("jira email es requerido")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *JiraProviderFactory) Name() string {
	return config.TicketJira
}
