package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [target]",
		Short: "Show the recorded outcome of a target's last run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}

			record, err := c.app.Status(target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "target:    %s\n", record.Target)
			fmt.Fprintf(out, "command:   %s\n", record.Command)
			fmt.Fprintf(out, "exit code: %d\n", record.ExitCode)
			fmt.Fprintf(out, "started:   %s\n", record.StartedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "duration:  %s\n", record.Duration)
			fmt.Fprintf(out, "rule hash: %s\n", record.RuleHash)
			return nil
		},
	}
}
