package calculation

import (
	"github.com/shopspring/decimal"
)

var decimalNegOne = decimal.NewFromInt(-1)

// FutureValueLumpSum compounds a present value at a constant annual rate.
// Non-positive horizons return the present value unchanged.
func FutureValueLumpSum(presentValue, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return presentValue
	}
	return presentValue.Mul(decimalOne.Add(annualRate).Pow(decimal.NewFromInt(int64(years))))
}

// FutureValueAnnuity returns the future value of years*12 level end-of-month
// contributions at annualRate/12 per month. A zero monthly rate degenerates to
// the plain sum of contributions; a rate below -100% is mathematically invalid
// and yields zero.
func FutureValueAnnuity(monthlyPayment, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 || annualRate.LessThan(decimalNegOne) {
		return decimal.Zero
	}
	periods := decimal.NewFromInt(int64(years) * 12)
	monthlyRate := annualRate.Div(decimalTwelve)
	if monthlyRate.IsZero() {
		return monthlyPayment.Mul(periods)
	}
	growth := decimalOne.Add(monthlyRate).Pow(periods)
	return monthlyPayment.Mul(growth.Sub(decimalOne)).Div(monthlyRate)
}
