package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gg582/hanic/internal/layout"
)

func newLayoutsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "layouts [name]",
		Short: "List layouts, or the key bindings of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range layout.AvailableLayouts() {
					marker := " "
					if name == g.cfg.LayoutName {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s\n", marker, name)
				}
				return nil
			}
			lay, err := layout.Load(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, b := range lay.Bindings() {
				fmt.Fprintf(tw, "%s\t%s\n", b.Key, b.Role)
			}
			return tw.Flush()
		},
	}
}
