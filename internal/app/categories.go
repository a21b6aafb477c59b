package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List the distinct categories in the stock",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := store.Inventory()
			cats := inv.Categories()
			if len(cats) == 0 {
				fmt.Println("Keine Kategorien.")
				return nil
			}
			for _, c := range cats {
				n := len(inv.FilterByCategory(c))
				fmt.Printf("  %-24s %d\n", c, n)
			}
			return nil
		},
	}
}
