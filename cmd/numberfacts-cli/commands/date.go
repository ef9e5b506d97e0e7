package commands

import (
	"github.com/spf13/cobra"

	"numberfacts/internal/controllers"
)

func dateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date [month day]",
		Short: "Print a trivia fact about a date (default today)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.screen
			if len(args) == 2 {
				s.state.SetDate(args[0], args[1])
				s.controller.FetchDateFact()
			} else {
				s.controller.Initialize()
			}
			s.controller.Wait()

			return printFact(cmd.OutOrStdout(), s.state.DateFact(), controllers.DateFactError)
		},
	}
	return cmd
}
