package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facet-dev/facet/pkg/tags"
)

func tagsCmd() *cobra.Command {
	var find string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Inspect the embedded tag table",
		Long: `Print the embedded tag table, or resolve a single tag name.

Examples:
  facet tags                   # List every canonical class name
  facet tags --find frame      # Resolve one tag`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if find != "" {
				class, ok := tags.Resolve(find)
				if !ok {
					info("%q is not in the table; it would pass through unchanged", find)
					return nil
				}
				fmt.Println(class)
				return nil
			}

			info("Tag table: %d classes, dump version %s", tags.Len(), tags.Version())
			for _, name := range tags.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&find, "find", "f", "", "Resolve a single tag name")

	return cmd
}
