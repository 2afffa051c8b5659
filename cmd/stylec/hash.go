package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recera/stylecollector/pkg/styling"
)

func newHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <text>...",
		Short: "Print the content hash of literal style text",
		Long: `Prints the hash a fragment with the given literal text would get.
Multiple arguments are concatenated without separators, the same way a
template's literal segments are.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), styling.Hash(strings.Join(args, "")))
			return err
		},
	}
}
