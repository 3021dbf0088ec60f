package version

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/i18n"
	appversion "github.com/Tomas-vilte/MateRelay/internal/version"
	"github.com/urfave/cli/v3"
)

type VersionCommandFactory struct{}

func NewVersionCommandFactory() *VersionCommandFactory {
	return &VersionCommandFactory{}
}

func (f *VersionCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: t.GetMessage("version_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "materelay %s\n", appversion.FullVersion())
			return err
		},
	}
}
