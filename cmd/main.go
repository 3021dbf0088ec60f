package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/MateRelay/internal/cli/command/completion"
	"github.com/Tomas-vilte/MateRelay/internal/cli/command/jql"
	"github.com/Tomas-vilte/MateRelay/internal/cli/command/providers"
	"github.com/Tomas-vilte/MateRelay/internal/cli/command/serve"
	versioncmd "github.com/Tomas-vilte/MateRelay/internal/cli/command/version"
	"github.com/Tomas-vilte/MateRelay/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/i18n"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai/openrouter"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/tickets/jira"
	"github.com/Tomas-vilte/MateRelay/internal/ui"
	"github.com/Tomas-vilte/MateRelay/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}

	args := os.Args
	if len(args) == 1 {
		// Sin subcomando se levanta el servidor.
		args = append(args, "serve")
	}

	if err := app.Run(context.Background(), args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

// newContainer registra los proveedores disponibles para una configuración dada.
func newContainer(cfgApp *cfg.Config) (*di.Container, error) {
	container := di.NewContainer(cfgApp)

	if err := container.RegisterAIProvider(string(cfg.AIGemini), gemini.NewGeminiProviderFactory()); err != nil {
		return nil, fmt.Errorf("no se pudo registrar el proveedor Gemini: %w", err)
	}
	if err := container.RegisterAIProvider(string(cfg.AIOpenRouter), openrouter.NewOpenRouterProviderFactory()); err != nil {
		return nil, fmt.Errorf("no se pudo registrar el proveedor OpenRouter: %w", err)
	}
	if err := container.RegisterTicketProvider(cfg.TicketJira, jira.NewJiraProviderFactory()); err != nil {
		return nil, fmt.Errorf("no se pudo registrar el proveedor Jira: %w", err)
	}

	return container, nil
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	cfgApp, err := cfg.LoadConfig("")
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	container, err := newContainer(cfgApp)
	if err != nil {
		return nil, translations, err
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("serve", serve.NewServeCommandFactory(newContainer)); err != nil {
		return nil, translations, err
	}
	if err := registerCommand.Register("jql", jql.NewJQLCommandFactory()); err != nil {
		return nil, translations, err
	}
	if err := registerCommand.Register("providers", providers.NewProvidersCommandFactory(container.GetAIRegistry())); err != nil {
		return nil, translations, err
	}
	if err := registerCommand.Register("version", versioncmd.NewVersionCommandFactory()); err != nil {
		return nil, translations, err
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))
	commands = append(commands, &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	})

	return &cli.Command{
		Name:                  "materelay",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
