package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// ValueAtYear grows an initial value by a constant annual rate for the given
// number of whole years. Non-positive year counts return the value unchanged.
func ValueAtYear(initial, annualGrowthRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return initial
	}
	return initial.Mul(decimalOne.Add(annualGrowthRate).Pow(decimal.NewFromInt(int64(years))))
}

// MonthlyGrowthRate converts an annual growth rate to the equivalent monthly
// compounding rate, (1+g)^(1/12) - 1. The fractional exponent goes through the
// float64 image of the decimal; shopspring Pow only handles integer exponents.
func MonthlyGrowthRate(annualGrowthRate decimal.Decimal) decimal.Decimal {
	base := decimalOne.Add(annualGrowthRate)
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	monthly := math.Pow(base.InexactFloat64(), 1.0/12.0) - 1
	return decimal.NewFromFloat(monthly)
}

// AverageMonthlyValue returns the arithmetic mean of a geometrically growing
// monthly series over years*12 samples starting at initialMonthly. The series
// compounds at the monthly equivalent of the annual rate, keeping this average
// consistent with how appreciation and rent growth compound elsewhere. Zero
// growth or a non-positive horizon degenerates to the initial value.
func AverageMonthlyValue(initialMonthly, annualGrowthRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 || annualGrowthRate.IsZero() {
		return initialMonthly
	}
	monthlyRate := MonthlyGrowthRate(annualGrowthRate)
	if monthlyRate.IsZero() {
		return initialMonthly
	}
	periods := decimal.NewFromInt(int64(years) * 12)
	// Geometric sum: initial * ((1+m)^n - 1) / m, averaged over n samples.
	growth := decimalOne.Add(monthlyRate).Pow(periods)
	sum := initialMonthly.Mul(growth.Sub(decimalOne)).Div(monthlyRate)
	return sum.Div(periods)
}
