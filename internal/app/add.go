package app

import (
	"fmt"

	"github.com/leseparadies/ladenctl/internal/inventory"
	"github.com/leseparadies/ladenctl/internal/tui"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		title      string
		author     string
		category   string
		price      float64
		restricted bool
		forbidden  bool
		imagePath  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the stock",
		Long: `Add a book to the shop's stock and save the data file.

With --title the book is taken from the flags. Without flags in a
terminal, an interactive form opens.

Examples:
  ladenctl add --title "Faust I" --author "Goethe" --category Drama --price 7.99
  ladenctl add --title "..." --author "..." --category Horror --price 12.99 --fsk18`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var book inventory.Book

			if title == "" {
				if !tui.ShouldUseTUI(cmd) {
					return fmt.Errorf("--title is required in non-interactive mode")
				}
				data, err := tui.RunAddForm(cfg.Shop.Name)
				if err != nil {
					return err
				}
				book, err = data.Book()
				if err != nil {
					return err
				}
			} else {
				b, err := inventory.NewBook(title, author, category, price)
				if err != nil {
					return err
				}
				b.Restricted = restricted
				b.Forbidden = forbidden
				b.ImagePath = imagePath
				book = b
			}

			if err := book.Validate(); err != nil {
				return err
			}

			err := store.Update(func(inv *inventory.Inventory) error {
				inv.Add(book)
				return nil
			})
			if err != nil {
				return fmt.Errorf("saving stock: %w", err)
			}

			ok("Aufgenommen: %s", book.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().Float64Var(&price, "price", 0, "Price in euros")
	cmd.Flags().BoolVar(&restricted, "fsk18", false, "Mark as indiziert (FSK 18)")
	cmd.Flags().BoolVar(&forbidden, "verboten", false, "Mark as verboten (not for sale)")
	cmd.Flags().StringVar(&imagePath, "image", "", "Cover image path (optional)")
	return cmd
}
