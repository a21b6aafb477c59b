package app

import (
	"fmt"
	"path/filepath"

	"github.com/leseparadies/ladenctl/internal/config"
	"github.com/leseparadies/ladenctl/internal/inventory"
	"github.com/leseparadies/ladenctl/internal/util"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		shopName string
		dataFile string
		seedFile string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config and an initial data file",
		Long: `Write the config file and create the stock data file.

When a seed file is given (or configured), its contents become the
initial stock. Otherwise the shop starts empty.

Examples:
  ladenctl init
  ladenctl init --name "Bücherstube Nord" --seed beispiel-buecher.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shopName != "" {
				cfg.Shop.Name = shopName
			}
			if dataFile != "" {
				cfg.Data.File = config.ExpandHome(dataFile)
			}
			if seedFile != "" {
				cfg.Data.SeedFile = config.ExpandHome(seedFile)
			}

			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ok("Config geschrieben: %s", config.DefaultPath())

			if util.FileExists(cfg.Data.File) && !force {
				warn("Datendatei %s existiert bereits. Mit --force neu anlegen.", cfg.Data.File)
				return nil
			}

			if err := util.EnsureDir(filepath.Dir(cfg.Data.File)); err != nil {
				return fmt.Errorf("creating data directory: %w", err)
			}

			if cfg.Data.SeedFile != "" && util.FileExists(cfg.Data.SeedFile) {
				if err := util.CopyFile(cfg.Data.SeedFile, cfg.Data.File); err != nil {
					return fmt.Errorf("seeding data file: %w", err)
				}
				books, err := inventory.Load(cfg.Data.File)
				if err != nil {
					return fmt.Errorf("seed file is not a valid data file: %w", err)
				}
				ok("Datendatei angelegt: %s (%d Bücher aus %s)", cfg.Data.File, len(books), cfg.Data.SeedFile)
				return nil
			}

			if err := inventory.Save(cfg.Data.File, nil); err != nil {
				return fmt.Errorf("creating data file: %w", err)
			}
			ok("Leere Datendatei angelegt: %s", cfg.Data.File)
			return nil
		},
	}

	cmd.Flags().StringVar(&shopName, "name", "", "Shop name")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Stock data file path")
	cmd.Flags().StringVar(&seedFile, "seed", "", "Seed the data file from this JSON file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing data file")
	return cmd
}
