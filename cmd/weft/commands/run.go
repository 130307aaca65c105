package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weft/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [target]",
		Short: "Compile the rule file and run a target through make",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.DefaultTarget
			if len(args) == 1 {
				target = args[0]
			}
			return c.app.Run(cmd.Context(), target)
		},
	}
}
