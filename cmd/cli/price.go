package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
	"github.com/ahsanlabs/storefront-service/internal/pricing"
)

var (
	pricePath   string
	priceReveal float64
)

// priceCmd resolves a coupon against a product the same way the
// product page does, for debugging customer reports.
var priceCmd = &cobra.Command{
	Use:   "price <product-id> [coupon-code]",
	Short: "Resolve a coupon against a catalog product",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPrice,
}

func init() {
	priceCmd.Flags().StringVar(&pricePath, "path", "", "catalog file (defaults to storage.products_path)")
	priceCmd.Flags().Float64Var(&priceReveal, "revealed", 0, "scratch percentage to simulate before applying")
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewFileStore(productsPath(pricePath))
	if err != nil {
		return err
	}
	p, err := store.GetByID(args[0])
	if err != nil {
		return err
	}

	session := pricing.NewSession(scratchThreshold())

	if priceReveal > 0 {
		if applied := session.RecordReveal(p, priceReveal); applied != nil {
			logger.Info().
				Str("coupon", applied.Coupon.Code).
				Str("final", pricing.FormatPrice(applied.FinalPrice)).
				Msg("Scratch coupon unlocked")
		}
	}

	if len(args) == 2 {
		applied, err := session.Apply(p, args[1])
		if errors.Is(err, pricing.ErrInvalidCode) {
			return fmt.Errorf("coupon %q does not apply to product %s", args[1], p.ID)
		}
		if err != nil {
			return err
		}

		logger.Info().
			Str("product", p.Name).
			Str("coupon", applied.Coupon.Code).
			Str("outcome", string(applied.Outcome)).
			Str("base", pricing.FormatPrice(applied.BasePrice)).
			Str("discount", pricing.FormatPrice(applied.DiscountAmount)).
			Str("final", pricing.FormatPrice(applied.FinalPrice)).
			Msg("Coupon resolved")
		if applied.Outcome == pricing.FullyUnlocked {
			logger.Info().Str("link", applied.DeliveryLink).Msg("Product fully unlocked")
		}
		return nil
	}

	logger.Info().
		Str("product", p.Name).
		Str("price", pricing.FormatPrice(p.Price)).
		Str("original", pricing.FormatPrice(p.OriginalPrice)).
		Int("savings_pct", p.SavingsPercent()).
		Msg("Product price")
	return nil
}

// scratchThreshold resolves the reveal threshold from config.
func scratchThreshold() float64 {
	if cfg != nil && cfg.Pricing.ScratchThreshold > 0 {
		return cfg.Pricing.ScratchThreshold
	}
	return 0
}
