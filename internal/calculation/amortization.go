package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
)

// DegradedInputError marks an input whose numeric domain makes a formula
// singular. Callers substitute a zero result and keep going; the orchestrator
// records the degradation so the comparison stays honest about it.
type DegradedInputError struct {
	Op     string
	Reason string
}

func (e *DegradedInputError) Error() string {
	return e.Op + ": " + e.Reason
}

// MonthlyPayment computes the level monthly payment for a standard amortizing
// loan. Zero principal or term yields a zero payment; a zero rate degenerates
// to straight-line principal repayment.
func MonthlyPayment(principal, annualRate decimal.Decimal, termYears int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) || termYears <= 0 {
		return decimal.Zero, nil
	}
	periods := decimal.NewFromInt(int64(termYears) * 12)
	monthlyRate := annualRate.Div(decimalTwelve)
	if monthlyRate.IsZero() {
		return principal.Div(periods), nil
	}
	if decimalOne.Add(monthlyRate).LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, &DegradedInputError{Op: "monthly_payment", Reason: "annual rate at or below -100%"}
	}
	growth := decimalOne.Add(monthlyRate).Pow(periods)
	denom := growth.Sub(decimalOne)
	if denom.IsZero() {
		return decimal.Zero, &DegradedInputError{Op: "monthly_payment", Reason: "singular amortization formula"}
	}
	return principal.Mul(monthlyRate).Mul(growth).Div(denom), nil
}

// RemainingBalance returns the principal still owed after yearsElapsed years
// of on-schedule payments. It is the future value of the original balance less
// the future value of the payments made, floored at zero to absorb
// floating-point overshoot near full payoff.
func RemainingBalance(principal, annualRate decimal.Decimal, termYears, yearsElapsed int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}
	if yearsElapsed <= 0 {
		return principal, nil
	}
	if yearsElapsed >= termYears {
		return decimal.Zero, nil
	}
	payment, err := MonthlyPayment(principal, annualRate, termYears)
	if err != nil {
		return decimal.Zero, err
	}
	return balanceAfterMonths(principal, annualRate.Div(decimalTwelve), payment, yearsElapsed*12), nil
}

// balanceAfterMonths applies the closed-form balance formula for a given
// number of elapsed monthly periods.
func balanceAfterMonths(principal, monthlyRate, payment decimal.Decimal, months int) decimal.Decimal {
	periods := decimal.NewFromInt(int64(months))
	var balance decimal.Decimal
	if monthlyRate.IsZero() {
		balance = principal.Sub(payment.Mul(periods))
	} else {
		growth := decimalOne.Add(monthlyRate).Pow(periods)
		balance = principal.Mul(growth).Sub(payment.Mul(growth.Sub(decimalOne)).Div(monthlyRate))
	}
	if balance.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return balance
}

// InterestPaidInInterval sums the interest components of every monthly payment
// whose 1-indexed month falls in (startYear*12, endYear*12], clipped to the
// loan term. Empty or inverted intervals and non-positive principals yield
// zero. The result is always non-negative.
func InterestPaidInInterval(principal, annualRate decimal.Decimal, termYears, startYear, endYear int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) || startYear >= endYear {
		return decimal.Zero, nil
	}
	monthlyRate := annualRate.Div(decimalTwelve)
	if monthlyRate.IsZero() {
		return decimal.Zero, nil
	}
	payment, err := MonthlyPayment(principal, annualRate, termYears)
	if err != nil {
		return decimal.Zero, err
	}

	startMonth := startYear * 12 // interest accrues from month startMonth+1
	endMonth := endYear * 12
	totalMonths := termYears * 12
	if startMonth < 0 {
		startMonth = 0
	}
	if endMonth > totalMonths {
		endMonth = totalMonths
	}
	if startMonth >= endMonth {
		return decimal.Zero, nil
	}

	balance := balanceAfterMonths(principal, monthlyRate, payment, startMonth)
	total := decimal.Zero
	for month := startMonth + 1; month <= endMonth; month++ {
		interest := balance.Mul(monthlyRate)
		total = total.Add(interest)
		balance = balance.Add(interest).Sub(payment)
		if balance.LessThan(decimal.Zero) {
			balance = decimal.Zero
		}
	}
	if total.LessThan(decimal.Zero) {
		return decimal.Zero, nil
	}
	return total, nil
}

// TotalInterest returns the interest paid over the whole life of the loan.
func TotalInterest(principal, annualRate decimal.Decimal, termYears int) (decimal.Decimal, error) {
	return InterestPaidInInterval(principal, annualRate, termYears, 0, termYears)
}
