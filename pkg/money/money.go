// Package money formats currency amounts for the report and chart annotations.
package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vinodismyname/salesreport/config"
)

// Amounts use comma thousands separators and a dot decimal point.
var printer = message.NewPrinter(language.English)

// Format renders d as "R$ 1,234.56", rounding half away from zero to cents.
func Format(d decimal.Decimal) string {
	return FormatFloat(d.Round(2).InexactFloat64())
}

// FormatFloat renders f as "R$ 1,234.56". NaN renders as "R$ nan".
func FormatFloat(f float64) string {
	if math.IsNaN(f) {
		return config.CurrencySymbol + " nan"
	}
	return printer.Sprintf("%s %.2f", config.CurrencySymbol, f)
}
