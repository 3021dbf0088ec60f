package completion_helper

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete imprime todos los flags del comando actual para la finalización del shell.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	w := cmd.Root().Writer
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(w, "-"+name)
			} else {
				_, _ = fmt.Fprintln(w, "--"+name)
			}
		}
	}
}
