// Package checkout builds the outbound purchase handoff: a wa.me deep
// link with a prefilled, human-readable order summary. Nothing is sent
// or awaited here; opening the link is the whole "transaction".
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ahsanlabs/storefront-service/internal/cart"
	"github.com/ahsanlabs/storefront-service/internal/pricing"
)

// DefaultWhatsAppNumber receives cart checkouts when no product-level
// number applies.
const DefaultWhatsAppNumber = "923343926359"

// OrderMessage renders the order summary for a cart: one line per cart
// line with quantity and line total, applied-coupon notes, and the
// grand total. Prices are display-rounded here only; the inputs keep
// full precision.
func OrderMessage(items []cart.LineItem) string {
	var b strings.Builder
	b.WriteString("Hi! I want to buy the following items:\n\n")

	var total float64
	for _, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		total += lineTotal
		fmt.Fprintf(&b, "%s (x%d) - PKR %s\n", item.Name, item.Quantity, pricing.FormatPrice(lineTotal))
		if item.AppliedCoupon != "" {
			fmt.Fprintf(&b, "  Applied coupon: %s\n", item.AppliedCoupon)
		}
	}

	fmt.Fprintf(&b, "\nTotal: PKR %s", pricing.FormatPrice(total))
	return b.String()
}

// Link builds the wa.me deep link for a number and prefilled message.
// The message is percent-encoded the way the browser's
// encodeURIComponent does (spaces as %20, not +).
func Link(number, message string) string {
	if number == "" {
		number = DefaultWhatsAppNumber
	}
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encoded)
}

// CartLink is the one-call path the cart view uses.
func CartLink(items []cart.LineItem) string {
	return Link(DefaultWhatsAppNumber, OrderMessage(items))
}
