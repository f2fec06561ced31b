package main

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the server.
func NewRootCommand() *cobra.Command {
	serve := NewServeCommand()

	cmd := &cobra.Command{
		Use:           "labfixture",
		Short:         "In-memory wage group and energy label fixture server",
		Long:          "A small HTTP resource server used as the target of contract tests. All state lives in memory and is lost on exit.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serve.RunE,
	}
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(NewRelationsCommand())
	cmd.AddCommand(NewOpenAPICommand())
	return cmd
}
