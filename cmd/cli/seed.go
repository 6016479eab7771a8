package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
)

var (
	seedPath  string
	seedForce bool
)

// seedCmd writes the default catalog so a fresh deployment has
// something to sell.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default product catalog",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedPath, "path", "", "catalog file (defaults to storage.products_path)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite an existing catalog")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	path := productsPath(seedPath)

	if _, err := os.Stat(path); err == nil && !seedForce {
		return fmt.Errorf("catalog already exists at %s (use --force to overwrite)", path)
	}

	store, err := catalog.NewFileStore(path)
	if err != nil {
		return err
	}
	if seedForce {
		if err := store.ReplaceAll(catalog.DefaultProducts()); err != nil {
			return err
		}
	}

	logger.Info().Str("path", path).Msg("Catalog seeded")
	return nil
}
