package tools

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// MoneyToStorage converts a display amount to integer minor units.
// Fractional cents are truncated toward zero.
func MoneyToStorage(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).IntPart()
}

// MoneyToDisplay converts stored minor units back to a decimal amount.
func MoneyToDisplay(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}
