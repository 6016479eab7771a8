package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
)

var validatePath string

// validateCmd checks a catalog file without touching it, useful before
// deploying a hand-edited products.json.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a product catalog file",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validatePath, "path", "", "catalog file (defaults to storage.products_path)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := productsPath(validatePath)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("catalog %s is not valid JSON: %w", path, err)
	}

	if err := catalog.ValidateAll(products); err != nil {
		return fmt.Errorf("catalog %s is invalid: %w", path, err)
	}

	scratchable := 0
	for _, p := range products {
		if p.IsScratch {
			scratchable++
		}
	}

	logger.Info().
		Str("path", path).
		Int("products", len(products)).
		Int("scratch_eligible", scratchable).
		Msg("Catalog is valid")
	return nil
}
