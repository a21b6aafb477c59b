package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/leseparadies/ladenctl/internal/cart"
	"github.com/leseparadies/ladenctl/internal/config"
	"github.com/leseparadies/ladenctl/internal/inventory"
	"github.com/leseparadies/ladenctl/internal/tui"
	"github.com/leseparadies/ladenctl/internal/util"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	store  *inventory.Store
	logger *slog.Logger

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagVerbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "ladenctl",
	Short: "Manage the stock of a small online bookshop",
	Long: `ladenctl manages the inventory of a small German online bookshop.

The stock lives in a single JSON file. Books carry an FSK18 flag
(indiziert, sale requires age confirmation) and a verboten flag
(not for sale at all).

Run 'ladenctl' with no arguments to open the interactive storefront.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runShop()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/ladenctl/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		if flagConfig != "" {
			os.Setenv("LADENCTL_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store = inventory.NewStore(cfg.Data.File, inventory.New(cfg.Shop.Name), logger)

		// The init command seeds the data file; everything else loads it.
		if cmd.Name() != "init" {
			store.Load()
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newInitCmd(),
		newBrowseCmd(),
		newAddCmd(),
		newCategoriesCmd(),
		newTotalCmd(),
		newImportCmd(),
		newCoverCmd(),
		newVersionCmd(),
	)
}

// runShop opens the interactive storefront over the loaded stock.
func runShop() error {
	inv := store.Inventory()
	if inv.Len() == 0 {
		warn("Der Laden ist leer. Mit 'ladenctl add' Bücher aufnehmen oder 'ladenctl init' ausführen.")
		return nil
	}
	crt := cart.New(inv)
	return tui.RunStorefront(inv, crt, cfg.Shop.Name)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// fail prints a red error and exits 1.
func fail(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString("✗"), fmt.Sprintf(format, a...))
	os.Exit(1)
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
