package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/leseparadies/ladenctl/internal/cover"
	"github.com/leseparadies/ladenctl/internal/inventory"
	"github.com/spf13/cobra"
)

func newCoverCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cover <index>",
		Short: "Fetch a cover image from Open Library",
		Long: `Look up the book's cover on Open Library, store the image in the
covers directory, and record its path in the stock.

The index is 1-based over the whole stock ('ladenctl browse
--no-interactive' shows the numbers).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}

			inv := store.Inventory()
			if n < 1 || n > inv.Len() {
				return fmt.Errorf("index %d out of range (1-%d)", n, inv.Len())
			}
			book := inv.Books[n-1]

			if book.ImagePath != "" && !force {
				warn("'%s' hat bereits ein Cover (%s). Mit --force überschreiben.", book.Title, book.ImagePath)
				return nil
			}

			client := cover.NewClient(
				cfg.OpenLibrary.UserAgent,
				cfg.OpenLibrary.RequestsPerSecond,
				cfg.OpenLibrary.MaxRetries,
				logger,
			)
			dir := cover.NewDir(cfg.Data.CoversDir)

			header("Suche Cover für '%s' von %s …", book.Title, book.Author)
			name, err := client.Fetch(cmd.Context(), book.Title, book.Author, dir)
			if err != nil {
				if errors.Is(err, cover.ErrNoCover) {
					warn("Open Library kennt kein Cover für dieses Buch.")
					return nil
				}
				return fmt.Errorf("fetching cover: %w", err)
			}

			path := dir.Path(name)
			err = store.Update(func(inv *inventory.Inventory) error {
				inv.Books[n-1].ImagePath = path
				return nil
			})
			if err != nil {
				return fmt.Errorf("saving stock: %w", err)
			}

			ok("Cover gespeichert: %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing cover path")
	return cmd
}
