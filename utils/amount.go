package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DerivePayout computes the monthly payout for an invested amount at a given
// return percentage: invested * pct / 100, rounded half-up to two decimal
// places. Range checks on the inputs belong to the caller; the function is
// total over any finite input.
func DerivePayout(investedAmount, returnPercentage float64) float64 {
	payout := decimal.NewFromFloat(investedAmount).
		Mul(decimal.NewFromFloat(returnPercentage)).
		Div(hundred).
		Round(2)
	f, _ := payout.Float64()
	return f
}
