package calculation

import (
	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// computeBuyOccupy projects the purchase-and-occupy strategy: accumulate
// ownership costs and itemized-deduction savings year by year, then sell at
// the end of the horizon. The year loop is a pure fold; nothing outside the
// accumulator mutates.
func (e *Engine) computeBuyOccupy(a *domain.AssumptionSet) *domain.ScenarioResult {
	res := &domain.ScenarioResult{
		Strategy:      domain.StrategyBuyOccupy,
		InitialOutlay: a.InitialOutlay(),
	}
	m := e.newOwnershipModel(a, res)
	horizon := a.TimeHorizonYears

	totalSavings := decimal.Zero
	years := make([]domain.YearBreakdown, 0, horizon)
	for year := 1; year <= horizon; year++ {
		oy := m.year(res, year)
		totalSavings = totalSavings.Add(oy.TaxSaving)
		years = append(years, domain.YearBreakdown{
			Year:       year,
			GrossCost:  oy.GrossCost,
			TaxEffect:  oy.TaxSaving,
			Cumulative: m.equityAt(res, year).Sub(res.InitialOutlay),
		})
	}

	futureValue := ValueAtYear(a.HomePrice, a.AppreciationRate, horizon)
	balance, err := RemainingBalance(a.LoanAmount(), a.MortgageRate, a.LoanTermYears, horizon)
	balance = e.guard(res, balance, err)
	sellingCosts := futureValue.Mul(a.SellingCostRate)

	saleTax := NewSaleTaxCalculator(a)
	gain := CapitalGain(futureValue, sellingCosts, a.CostBasis(), decimal.Zero)
	// Occupied for the full horizon, so eligibility reduces to horizon >= 2.
	cgTax := saleTax.CapitalGainsTax(gain, OccupancyExclusionEligible(horizon, horizon))

	afterTaxEquity := futureValue.Sub(balance).Sub(sellingCosts).Sub(cgTax)

	res.NetGain = afterTaxEquity.Sub(res.InitialOutlay)
	res.AverageMonthlyCost = m.averageMonthlyGrossCost()
	res.TotalTaxSavings = totalSavings
	res.TerminalPropertyValue = futureValue
	res.RemainingLoanBalance = balance
	res.SellingCosts = sellingCosts
	res.CapitalGainsTax = cgTax
	res.Years = years
	return res
}
