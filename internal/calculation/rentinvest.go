package calculation

import (
	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// computeRentInvest projects renting an equivalent unit and investing the
// capital a purchase would have consumed. The initial outlay goes in as a
// lump sum; the positive gap between the gross average monthly cost of owning
// and the average monthly rent is invested as a level monthly contribution.
// Investment gains are taxed at the long-term capital-gains rate at the end.
func (e *Engine) computeRentInvest(a *domain.AssumptionSet) *domain.ScenarioResult {
	res := &domain.ScenarioResult{
		Strategy:      domain.StrategyRentInvest,
		InitialOutlay: a.InitialOutlay(),
	}
	m := e.newOwnershipModel(a, res)
	horizon := a.TimeHorizonYears

	avgRent := AverageMonthlyValue(a.MonthlyRent, a.RentGrowthRate, horizon)
	monthlyInvestment := m.averageMonthlyGrossCost().Sub(avgRent)
	if monthlyInvestment.LessThan(decimal.Zero) {
		monthlyInvestment = decimal.Zero
	}

	fvLump := FutureValueLumpSum(res.InitialOutlay, a.InvestmentReturnRate, horizon)
	fvMonthly := FutureValueAnnuity(monthlyInvestment, a.InvestmentReturnRate, horizon)
	totalValue := fvLump.Add(fvMonthly)

	contributions := res.InitialOutlay.Add(
		monthlyInvestment.Mul(decimalTwelve).Mul(decimal.NewFromInt(int64(horizon))))
	gain := totalValue.Sub(contributions)
	if gain.LessThan(decimal.Zero) {
		gain = decimal.Zero
	}
	investmentTax := gain.Mul(a.LTCGRate)

	years := make([]domain.YearBreakdown, 0, horizon)
	for year := 1; year <= horizon; year++ {
		rentPaid := ValueAtYear(a.MonthlyRent.Mul(decimalTwelve), a.RentGrowthRate, year-1)
		valueSoFar := FutureValueLumpSum(res.InitialOutlay, a.InvestmentReturnRate, year).
			Add(FutureValueAnnuity(monthlyInvestment, a.InvestmentReturnRate, year))
		years = append(years, domain.YearBreakdown{
			Year:       year,
			GrossCost:  rentPaid,
			Cumulative: valueSoFar.Sub(res.InitialOutlay),
		})
	}

	res.NetGain = totalValue.Sub(investmentTax).Sub(res.InitialOutlay)
	res.AverageMonthlyCost = avgRent
	res.InvestmentValue = totalValue
	res.InvestmentTax = investmentTax
	res.Years = years
	return res
}
