package pricing

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// listPrinter renders list prices the way the web client's
// toLocaleString() does: thousands-separated, English grouping.
var listPrinter = message.NewPrinter(language.English)

// FormatPrice renders a computed price for display with two decimal
// places. Internal values stay unrounded; this is the only rounding
// point.
func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatListPrice renders a catalog list price with grouping
// separators, e.g. 1000 -> "1,000".
func FormatListPrice(v float64) string {
	return listPrinter.Sprint(number.Decimal(v))
}
