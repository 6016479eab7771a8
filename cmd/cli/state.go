package main

import (
	"github.com/spf13/cobra"

	"github.com/ahsanlabs/storefront-service/internal/cart"
	"github.com/ahsanlabs/storefront-service/internal/checkout"
	"github.com/ahsanlabs/storefront-service/internal/comparison"
	"github.com/ahsanlabs/storefront-service/internal/kvstore"
	"github.com/ahsanlabs/storefront-service/internal/pricing"
	"github.com/ahsanlabs/storefront-service/internal/shopper"
)

var statePath string

// stateCmd inspects a shopper state directory, useful when a customer
// sends in an exported state bundle with a cart complaint.
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect a shopper state directory",
	RunE:  runState,
}

func init() {
	stateCmd.Flags().StringVar(&statePath, "path", "", "state directory (defaults to storage.state_path)")
	rootCmd.AddCommand(stateCmd)
}

func runState(cmd *cobra.Command, args []string) error {
	path := statePath
	if path == "" && cfg != nil && cfg.Storage.StatePath != "" {
		path = cfg.Storage.StatePath
	}
	if path == "" {
		path = "./data/state"
	}

	store, err := kvstore.NewFileStore(path)
	if err != nil {
		return err
	}

	shopCart := cart.New(store)
	items, err := shopCart.Items()
	if err != nil {
		return err
	}
	total, err := shopCart.Total()
	if err != nil {
		return err
	}
	for _, item := range items {
		logger.Info().
			Str("product_id", item.ProductID).
			Str("name", item.Name).
			Int("quantity", item.Quantity).
			Str("price", pricing.FormatPrice(item.Price)).
			Str("coupon", item.AppliedCoupon).
			Msg("Cart line")
	}
	logger.Info().
		Int("lines", len(items)).
		Str("total", pricing.FormatPrice(total)).
		Msg("Cart")
	if len(items) > 0 {
		logger.Info().Str("link", checkout.CartLink(items)).Msg("Checkout link")
	}

	ids, err := comparison.New(store).IDs()
	if err != nil {
		return err
	}
	logger.Info().Strs("product_ids", ids).Msg("Comparison list")

	ratings, err := shopper.NewRatings(store).All()
	if err != nil {
		return err
	}
	for id, rating := range ratings {
		logger.Info().Str("product_id", id).Int("rating", rating).Msg("Rating")
	}

	visitors, err := shopper.NewVisitorCounter(store).Get()
	if err != nil {
		return err
	}
	theme, err := shopper.NewThemeStore(store).Get()
	if err != nil {
		return err
	}
	logger.Info().Int("visitors", visitors).Str("theme", string(theme)).Msg("Shopper state")
	return nil
}
