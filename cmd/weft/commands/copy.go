package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <target> <dest>",
		Short: "Copy a produced artifact out of the working directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Copy(args[0], args[1])
		},
	}
}
