package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/leseparadies/ladenctl/internal/cart"
	"github.com/leseparadies/ladenctl/internal/inventory"
	"github.com/leseparadies/ladenctl/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var (
		selector string
		category string
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse the stock (interactive storefront or text output)",
		Long: `Browse the shop's stock.

In a terminal this opens the interactive storefront. With --selector,
--no-interactive, or redirected output it prints a text listing instead.

Selectors:
  "alle anzeigen"   the whole stock
  "nur fsk18"       indizierte Bücher (ohne verbotene)
  "nur verbotene"   verbotene Bücher
  anything else     treated as a category name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := store.Inventory()
			if inv.Len() == 0 {
				warn("Der Laden ist leer.")
				return nil
			}

			if tui.ShouldUseTUI(cmd) {
				crt := cart.New(inv)
				return tui.RunStorefront(inv, crt, cfg.Shop.Name)
			}

			sel := selector
			if sel == "" && category != "" {
				sel = category
			}
			if sel == "" {
				sel = inventory.SelectorAll
			}

			books := inv.FilterBySelector(sel)
			if len(books) == 0 {
				fmt.Println("Keine Bücher gefunden.")
				return nil
			}

			header("── %s  (%d Bücher: %s)", cfg.Shop.Name, len(books), sel)
			for _, line := range listLines(books) {
				fmt.Println("  " + line)
			}
			total := inventory.Total(books)
			fmt.Println()
			fmt.Printf("  Gesamtwert (ohne verbotene): %s €\n",
				color.GreenString(inventory.FormatPrice(total)))
			return nil
		},
	}

	cmd.Flags().StringVar(&selector, "selector", "", `Selector or category ("alle anzeigen", "nur fsk18", "nur verbotene", …)`)
	cmd.Flags().StringVar(&category, "category", "", "Filter by category (shorthand for --selector <name>)")
	return cmd
}

// listLines renders one numbered text line per book, in stock order.
// The numbers are what 'ladenctl total --index' refers to.
func listLines(books []inventory.Book) []string {
	lines := make([]string, len(books))
	for i, b := range books {
		lines[i] = fmt.Sprintf("%3d. %s  %s", i+1, b.Label(), color.CyanString("["+b.Category+"]"))
	}
	return lines
}
