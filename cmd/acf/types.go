package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the field types definitions can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tCHILDREN")
			for _, name := range a.registry.Names() {
				entry, _ := a.registry.Lookup(name)
				children := entry.Container
				if children == "" {
					children = "-"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, children)
			}

			aliases := a.registry.Aliases()
			if len(aliases) > 0 {
				names := make([]string, 0, len(aliases))
				for alias := range aliases {
					names = append(names, alias)
				}
				sort.Strings(names)
				fmt.Fprintln(w, "\nALIAS\tTYPE")
				for _, alias := range names {
					fmt.Fprintf(w, "%s\t%s\n", alias, aliases[alias])
				}
			}
			return w.Flush()
		},
	}
}
