package main

import (
	"github.com/spf13/cobra"
)

func newExecCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <line>...",
		Short: "Run command lines in a fresh session",
		Long: `Run each argument as one command line in a fresh session and print the
transcript. Running stops early after exit.`,
		Example: `  termfolio exec "cd projects" "ls -l" "cat README.md"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := a.filesystem()
			if err != nil {
				return err
			}
			s := a.newSession(fsys, newPrinter(cmd.OutOrStdout(), a.cfg.Color))
			for _, line := range args {
				s.Execute(line)
				if s.Exited() {
					break
				}
			}
			return nil
		},
	}
}
