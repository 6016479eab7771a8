package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
	"github.com/ahsanlabs/storefront-service/internal/pricing"
)

var schemaOutput string

// schemaCmd emits JSON Schema for the catalog document and coupon
// shape. The Go types are the source of truth; the TypeScript admin UI
// generates its validators from this output.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Emit JSON Schema for the catalog and coupon types",
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOutput, "output", "", "output file (defaults to stdout)")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}

	schemas := map[string]*jsonschema.Schema{
		"Product": reflector.Reflect(&catalog.Product{}),
		"Coupon":  reflector.Reflect(&pricing.Coupon{}),
	}

	data, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schemas: %w", err)
	}
	data = append(data, '\n')

	if schemaOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(schemaOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", schemaOutput, err)
	}

	logger.Info().Str("output", schemaOutput).Msg("Schemas written")
	return nil
}
