package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/leseparadies/ladenctl/internal/inventory"
	"github.com/spf13/cobra"
)

func newTotalCmd() *cobra.Command {
	var (
		indices  []int
		selector string
	)

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Price a selection of books",
		Long: `Sum the prices of a selection. Verbotene Bücher never count
towards the total, even when selected.

Without --index the whole stock (or the --selector view) is priced.
Indices are 1-based and refer to the numbered 'ladenctl browse' listing.

Examples:
  ladenctl total
  ladenctl total --selector "nur fsk18"
  ladenctl total --index 1 --index 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := store.Inventory()

			sel := selector
			if sel == "" {
				sel = inventory.SelectorAll
			}
			view := inv.FilterBySelector(sel)

			selection, err := pickByIndex(view, indices)
			if err != nil {
				return err
			}

			total := inventory.Total(selection)
			fmt.Printf("Gesamtsumme (%d Bücher, ohne verbotene): %s €\n",
				len(selection), color.GreenString(inventory.FormatPrice(total)))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&indices, "index", nil, "1-based book index (repeatable)")
	cmd.Flags().StringVar(&selector, "selector", "", "Price a filtered view instead of the whole stock")
	return cmd
}

// pickByIndex resolves 1-based listing indices against a view. Empty
// indices mean the whole view. The same index may repeat.
func pickByIndex(view []inventory.Book, indices []int) ([]inventory.Book, error) {
	if len(indices) == 0 {
		return view, nil
	}
	selection := make([]inventory.Book, 0, len(indices))
	for _, n := range indices {
		if n < 1 || n > len(view) {
			return nil, fmt.Errorf("index %d out of range (1-%d)", n, len(view))
		}
		selection = append(selection, view[n-1])
	}
	return selection, nil
}
