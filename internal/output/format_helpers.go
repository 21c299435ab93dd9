package output

import (
	"math"
	"strconv"

	money "github.com/rpgo/strategy-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as grouped USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a value already expressed in percent with 1 decimal.
func FormatPercentage(value float64) string {
	return fixed(value, 1) + "%"
}

// FormatNumber formats a float with 2 decimals.
func FormatNumber(value float64) string {
	return fixed(value, 2)
}

// fixed rounds through decimal; NaN and infinities have no decimal form and
// print as "NaN", "+Inf" or "-Inf".
func fixed(value float64, places int32) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(value).StringFixed(places)
}
