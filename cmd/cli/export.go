package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
)

var (
	exportPath   string
	exportOutput string
)

// exportCmd renders the catalog as a spreadsheet for offline review.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the product catalog to an XLSX spreadsheet",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportPath, "path", "", "catalog file (defaults to storage.products_path)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "products.xlsx", "output spreadsheet path")
	rootCmd.AddCommand(exportCmd)
}

var exportHeader = []string{
	"ID", "Name", "Category", "Price", "Original Price", "Savings %",
	"Rating", "Reviews", "In Stock", "Scratch", "Scratch %", "Special Code", "Features",
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewFileStore(productsPath(exportPath))
	if err != nil {
		return err
	}
	products, err := store.All()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, p := range products {
		row := []interface{}{
			p.ID, p.Name, p.Category, p.Price, p.OriginalPrice, p.SavingsPercent(),
			p.Rating, p.Reviews, p.InStock, p.IsScratch, p.ScratchDiscount,
			p.SpecialCode, strings.Join(p.Features, "; "),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(exportOutput); err != nil {
		return fmt.Errorf("failed to write spreadsheet %s: %w", exportOutput, err)
	}

	logger.Info().
		Str("output", exportOutput).
		Int("products", len(products)).
		Msg("Catalog exported")
	return nil
}
