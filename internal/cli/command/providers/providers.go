package providers

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/i18n"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateRelay/internal/ui"
	"github.com/urfave/cli/v3"
)

type ProvidersCommandFactory struct {
	registry *registry.AIProviderRegistry
}

func NewProvidersCommandFactory(r *registry.AIProviderRegistry) *ProvidersCommandFactory {
	return &ProvidersCommandFactory{registry: r}
}

// CreateCommand lista los proveedores registrados, marca el activo y muestra si su configuración es válida.
func (f *ProvidersCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "providers",
		Usage: t.GetMessage("providers_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			for _, name := range f.registry.List() {
				factory, err := f.registry.Get(name)
				if err != nil {
					return err
				}

				label := name
				if name == string(cfg.AIConfig.ActiveAI) {
					label = fmt.Sprintf("%s (%s)", name, t.GetMessage("providers_active", 0, nil))
				}

				if err := factory.ValidateConfig(cfg); err != nil {
					ui.PrintWarning(w, fmt.Sprintf("%s: %v", label, err))
					continue
				}
				ui.PrintSuccess(w, label)
				ui.PrintKeyValue(w, "model", cfg.AIProviders[name].Model)
			}
			return nil
		},
	}
}
