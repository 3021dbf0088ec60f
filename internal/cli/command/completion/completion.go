package completion

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateRelay/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_materelay_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _materelay_bash_autocomplete materelay
`

const zshCompletionScript = `#compdef materelay

_materelay() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _materelay materelay
`

func NewCompletionCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "completion",
		Usage: t.GetMessage("completion.command_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "bash",
				Usage: t.GetMessage("completion.bash_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(cmd.Root().Writer, bashCompletionScript)
					return err
				},
			},
			{
				Name:  "zsh",
				Usage: t.GetMessage("completion.zsh_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(cmd.Root().Writer, zshCompletionScript)
					return err
				},
			},
		},
	}
}
