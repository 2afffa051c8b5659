package main

import (
	"github.com/spf13/cobra"

	"github.com/recera/stylecollector/cmd/stylec/internal/ui"
	"github.com/recera/stylecollector/internal/logging"
)

func newInspectCommand(a *app) *cobra.Command {
	var format string
	var element string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "inspect [manifest]",
		Short: "Print the style definitions of every element",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.manifestPath(args)
			reg, err := a.collect(path)
			if err != nil {
				return err
			}

			sums := reg.Summaries()
			if element != "" {
				c, ok := reg.Lookup(element)
				if !ok {
					logging.For("inspect").WithField("element", element).Warn("element not found")
					return nil
				}
				sums = c.Summaries()
			}

			p := ui.Printer{Format: a.cfg.Output.Format, Color: a.cfg.Output.Color && !noColor}
			if format != "" {
				p.Format = format
			}
			logging.For("inspect").WithField("definitions", len(sums)).Debug("printing")
			return p.Print(cmd.OutOrStdout(), sums)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or yaml (overrides config)")
	cmd.Flags().StringVarP(&element, "element", "e", "", "Only print this element")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored text output")

	return cmd
}
