package app

import (
	"fmt"

	"github.com/leseparadies/ladenctl/internal/inventory"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Append books from another data file to the stock",
		Long: `Append the books of another JSON data file to the current stock
and save. Importing never replaces: books already in the stock stay,
and importing the same file twice duplicates its entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := inventory.Load(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if len(books) == 0 {
				warn("Keine Bücher in %s.", args[0])
				return nil
			}

			err = store.Update(func(inv *inventory.Inventory) error {
				for _, b := range books {
					inv.Add(b)
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("saving stock: %w", err)
			}

			ok("%d Bücher importiert, Bestand jetzt %d.", len(books), store.Inventory().Len())
			return nil
		},
	}
}
