package commands

import (
	"github.com/spf13/cobra"

	"numberfacts/internal/controllers"
)

func numberCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number <n>",
		Short: "Print a trivia fact about a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.screen
			s.state.SetNumber(args[0])
			s.controller.FetchNumberFact()
			s.controller.Wait()

			return printFact(cmd.OutOrStdout(), s.state.NumberFact(), controllers.NumberFactError)
		},
	}
	return cmd
}
