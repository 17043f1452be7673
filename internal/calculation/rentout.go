package calculation

import (
	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// computeBuyRentOut projects buying, occupying for an initial span, then
// converting to a rental until a sale at the end of the horizon. Occupied
// years reuse the shared ownership-year computation; rental years assess
// landlord income, expenses, and depreciation. The sale pays both recapture
// and capital-gains tax, with the primary-residence exclusion gated on the
// true occupied/rented split against the trailing five-year window.
func (e *Engine) computeBuyRentOut(a *domain.AssumptionSet) *domain.ScenarioResult {
	res := &domain.ScenarioResult{
		Strategy:      domain.StrategyBuyRentOut,
		InitialOutlay: a.InitialOutlay(),
	}
	m := e.newOwnershipModel(a, res)
	ro := a.RentOut
	horizon := a.TimeHorizonYears

	rentalTax := NewRentalTaxCalculator(a)
	annualDep := AnnualDepreciation(a.HomePrice, ro.LandValueFraction)
	basisRemaining := a.HomePrice.Mul(decimalOne.Sub(ro.LandValueFraction))

	totalSavings := decimal.Zero
	totalCashFlow := decimal.Zero
	depreciationTaken := decimal.Zero
	years := make([]domain.YearBreakdown, 0, horizon)

	for year := 1; year <= horizon; year++ {
		oy := m.year(res, year)
		breakdown := domain.YearBreakdown{Year: year, GrossCost: oy.GrossCost}

		if year <= ro.YearsOccupied {
			totalSavings = totalSavings.Add(oy.TaxSaving)
			breakdown.TaxEffect = oy.TaxSaving
		} else {
			grossRent := ValueAtYear(a.MonthlyRent.Mul(decimalTwelve), a.RentGrowthRate, year-1)
			extraCosts := ValueAtYear(ro.AnnualLandlordCost, a.FeeGrowthRate, year-1)

			dep := decimal.Min(annualDep, basisRemaining)
			basisRemaining = basisRemaining.Sub(dep)
			depreciationTaken = depreciationTaken.Add(dep)

			ry := rentalTax.Assess(grossRent, oy.Interest, oy.PropertyTax, oy.Fees, extraCosts, dep, oy.DebtService)
			totalCashFlow = totalCashFlow.Add(ry.AfterTaxCashFlow)
			breakdown.TaxEffect = ry.Tax.Neg()
			breakdown.CashFlow = ry.AfterTaxCashFlow
		}

		breakdown.Cumulative = m.equityAt(res, year).
			Add(totalCashFlow).
			Add(totalSavings).
			Sub(res.InitialOutlay)
		years = append(years, breakdown)
	}

	futureValue := ValueAtYear(a.HomePrice, a.AppreciationRate, horizon)
	balance, err := RemainingBalance(a.LoanAmount(), a.MortgageRate, a.LoanTermYears, horizon)
	balance = e.guard(res, balance, err)
	sellingCosts := futureValue.Mul(a.SellingCostRate)

	saleTax := NewSaleTaxCalculator(a)
	recapture := saleTax.RecaptureTax(depreciationTaken)
	gain := CapitalGain(futureValue, sellingCosts, a.CostBasis(), depreciationTaken)
	cgTax := saleTax.CapitalGainsTax(gain, OccupancyExclusionEligible(ro.YearsOccupied, horizon))

	afterTaxSale := futureValue.Sub(balance).Sub(sellingCosts).Sub(recapture).Sub(cgTax)

	res.NetGain = afterTaxSale.Add(totalCashFlow).Add(totalSavings).Sub(res.InitialOutlay)
	res.AverageMonthlyCost = m.averageMonthlyGrossCost()
	res.TotalTaxSavings = totalSavings
	res.TotalRentalCashFlow = totalCashFlow
	res.DepreciationTaken = depreciationTaken
	res.TerminalPropertyValue = futureValue
	res.RemainingLoanBalance = balance
	res.SellingCosts = sellingCosts
	res.CapitalGainsTax = cgTax
	res.RecaptureTax = recapture
	res.Years = years
	return res
}
