package jql

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateRelay/internal/cli/completion_helper"
	"github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/Tomas-vilte/MateRelay/internal/i18n"
	jqlbuilder "github.com/Tomas-vilte/MateRelay/internal/jql"
	"github.com/urfave/cli/v3"
)

type JQLCommandFactory struct{}

func NewJQLCommandFactory() *JQLCommandFactory {
	return &JQLCommandFactory{}
}

// CreateCommand arma "jql", que imprime la consulta que GET /jira/issues enviaría a Jira.
func (f *JQLCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "jql",
		Usage:         t.GetMessage("jql_command_usage", 0, nil),
		Flags:         f.createFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			filter := models.IssueFilter{
				Type:          cmd.String("type"),
				Priority:      cmd.String("priority"),
				Status:        cmd.String("status"),
				CreatedAfter:  cmd.String("created-after"),
				CreatedBefore: cmd.String("created-before"),
			}
			_, err := fmt.Fprintln(cmd.Root().Writer, jqlbuilder.Build(filter))
			return err
		},
	}
}

func (f *JQLCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   t.GetMessage("jql_flag_type", 0, nil),
		},
		&cli.StringFlag{
			Name:    "priority",
			Aliases: []string{"p"},
			Usage:   t.GetMessage("jql_flag_priority", 0, nil),
		},
		&cli.StringFlag{
			Name:    "status",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("jql_flag_status", 0, nil),
		},
		&cli.StringFlag{
			Name:  "created-after",
			Usage: t.GetMessage("jql_flag_created_after", 0, nil),
		},
		&cli.StringFlag{
			Name:  "created-before",
			Usage: t.GetMessage("jql_flag_created_before", 0, nil),
		},
	}
}
