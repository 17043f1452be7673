package calculation

import (
	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ownershipYear holds the owner-side figures for one projection year. The
// same computation serves Buy & Occupy for its whole horizon and Buy & Rent
// Out during the occupied phase, and its cost pieces feed the landlord math
// after conversion.
type ownershipYear struct {
	Interest    decimal.Decimal
	Fees        decimal.Decimal
	PropertyTax decimal.Decimal
	DebtService decimal.Decimal
	GrossCost   decimal.Decimal
	TaxSaving   decimal.Decimal
}

// ownershipModel precomputes the per-run constants of owning: the level
// payment, the year-1 property tax, and the owner tax calculator.
type ownershipModel struct {
	engine   *Engine
	a        *domain.AssumptionSet
	payment  decimal.Decimal
	propTax1 decimal.Decimal
	ownerTax OwnerTaxCalculator
}

func (e *Engine) newOwnershipModel(a *domain.AssumptionSet, res *domain.ScenarioResult) ownershipModel {
	payment, err := MonthlyPayment(a.LoanAmount(), a.MortgageRate, a.LoanTermYears)
	return ownershipModel{
		engine:   e,
		a:        a,
		payment:  e.guard(res, payment, err),
		propTax1: a.PropertyTaxYear1(),
		ownerTax: NewOwnerTaxCalculator(a),
	}
}

// year computes one ownership year. Fees and property tax grow at the fee
// growth rate; debt service covers only the months still inside the loan term.
func (m ownershipModel) year(res *domain.ScenarioResult, year int) ownershipYear {
	a := m.a
	fees := ValueAtYear(a.MonthlyFees.Mul(decimalTwelve), a.FeeGrowthRate, year-1)
	propTax := ValueAtYear(m.propTax1, a.FeeGrowthRate, year-1)

	interest, err := InterestPaidInInterval(a.LoanAmount(), a.MortgageRate, a.LoanTermYears, year-1, year)
	interest = m.engine.guard(res, interest, err)

	debtService := m.payment.Mul(decimal.NewFromInt(int64(monthsInLoanTerm(a.LoanTermYears, year))))

	gross := debtService.Add(fees)
	if a.PropertyTaxBilledSeparately() {
		gross = gross.Add(propTax)
	}

	return ownershipYear{
		Interest:    interest,
		Fees:        fees,
		PropertyTax: propTax,
		DebtService: debtService,
		GrossCost:   gross,
		TaxSaving:   m.ownerTax.YearlySaving(interest, propTax),
	}
}

// averageMonthlyGrossCost is the single "average monthly cost of buying"
// figure the rent comparison uses: level payment plus growth-averaged fees,
// plus growth-averaged property tax when it is billed on top of the fees.
func (m ownershipModel) averageMonthlyGrossCost() decimal.Decimal {
	a := m.a
	avg := m.payment.Add(AverageMonthlyValue(a.MonthlyFees, a.FeeGrowthRate, a.TimeHorizonYears))
	if a.PropertyTaxBilledSeparately() {
		avg = avg.Add(AverageMonthlyValue(m.propTax1.Div(decimalTwelve), a.FeeGrowthRate, a.TimeHorizonYears))
	}
	return avg
}

// equityAt is the pre-tax net position of the owner after the given year:
// property value less remaining loan balance, ignoring transaction costs.
// Used for the per-year breakdown series only.
func (m ownershipModel) equityAt(res *domain.ScenarioResult, year int) decimal.Decimal {
	value := ValueAtYear(m.a.HomePrice, m.a.AppreciationRate, year)
	balance, err := RemainingBalance(m.a.LoanAmount(), m.a.MortgageRate, m.a.LoanTermYears, year)
	return value.Sub(m.engine.guard(res, balance, err))
}

// monthsInLoanTerm returns how many months of the given projection year fall
// within the loan term, so debt service stops once the loan is paid off.
func monthsInLoanTerm(termYears, year int) int {
	remaining := termYears*12 - (year-1)*12
	if remaining <= 0 {
		return 0
	}
	if remaining > 12 {
		return 12
	}
	return remaining
}
