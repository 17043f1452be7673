package domain

import (
	"github.com/shopspring/decimal"
)

// Strategy identifies one of the three mutually exclusive housing strategies.
type Strategy string

const (
	StrategyBuyOccupy  Strategy = "buy_occupy"
	StrategyRentInvest Strategy = "rent_invest"
	StrategyBuyRentOut Strategy = "buy_rent_out"
)

// DisplayName returns a human-readable label for the strategy.
func (s Strategy) DisplayName() string {
	switch s {
	case StrategyBuyOccupy:
		return "Buy & Occupy"
	case StrategyRentInvest:
		return "Rent & Invest"
	case StrategyBuyRentOut:
		return "Buy & Rent Out"
	}
	return string(s)
}

// Degradation records a sub-computation that hit an invalid numeric domain and
// degraded to a neutral zero instead of aborting the comparison. Tests use it
// to tell a true zero from a masked failure.
type Degradation struct {
	Op     string `json:"op"`
	Reason string `json:"reason"`
}

// YearBreakdown is one year of a scenario's projection. GrossCost is the cash
// housing cost for the year (or rent paid, for the renter). TaxEffect is
// signed: positive is a benefit (itemized-deduction saving or a rental-loss
// offset), negative is tax owed. CashFlow is the landlord's after-tax cash
// flow, zero for the other strategies. Cumulative tracks the running pre-tax
// net position used for charting.
type YearBreakdown struct {
	Year       int             `json:"year"`
	GrossCost  decimal.Decimal `json:"grossCost"`
	TaxEffect  decimal.Decimal `json:"taxEffect"`
	CashFlow   decimal.Decimal `json:"cashFlow"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// ScenarioResult is the engine's output for a single strategy. NetGain is the
// headline scalar; the remaining fields are the supporting sub-totals the
// presentation layer exposes for transparency. All values are raw numbers,
// never formatted.
type ScenarioResult struct {
	Strategy      Strategy        `json:"strategy"`
	InitialOutlay decimal.Decimal `json:"initialOutlay"`
	NetGain       decimal.Decimal `json:"netGain"`

	// Interim figures
	AverageMonthlyCost  decimal.Decimal `json:"averageMonthlyCost"` // gross owner cost, or average rent
	TotalTaxSavings     decimal.Decimal `json:"totalTaxSavings"`
	TotalRentalCashFlow decimal.Decimal `json:"totalRentalCashFlow"`
	DepreciationTaken   decimal.Decimal `json:"depreciationTaken"`

	// Terminal figures
	TerminalPropertyValue decimal.Decimal `json:"terminalPropertyValue"`
	RemainingLoanBalance  decimal.Decimal `json:"remainingLoanBalance"`
	SellingCosts          decimal.Decimal `json:"sellingCosts"`
	CapitalGainsTax       decimal.Decimal `json:"capitalGainsTax"`
	RecaptureTax          decimal.Decimal `json:"recaptureTax"`
	InvestmentValue       decimal.Decimal `json:"investmentValue"`
	InvestmentTax         decimal.Decimal `json:"investmentTax"`

	Years        []YearBreakdown `json:"years,omitempty"`
	Degradations []Degradation   `json:"degradations,omitempty"`
}

// Degraded reports whether any sub-computation degraded while producing this
// result.
func (r *ScenarioResult) Degraded() bool {
	return len(r.Degradations) > 0
}

// Comparison bundles the results of one engine run. RentOut is nil unless the
// assumptions model a landlord conversion.
type Comparison struct {
	Assumptions AssumptionSet   `json:"assumptions"`
	Occupy      *ScenarioResult `json:"occupy"`
	Rent        *ScenarioResult `json:"rent"`
	RentOut     *ScenarioResult `json:"rentOut,omitempty"`
}

// Active returns the scenario results actually computed for this run, in a
// stable order.
func (c *Comparison) Active() []*ScenarioResult {
	results := []*ScenarioResult{c.Occupy, c.Rent}
	if c.RentOut != nil {
		results = append(results, c.RentOut)
	}
	return results
}

// ByStrategy returns the result for a strategy, or nil if it was not modeled.
func (c *Comparison) ByStrategy(s Strategy) *ScenarioResult {
	for _, r := range c.Active() {
		if r.Strategy == s {
			return r
		}
	}
	return nil
}
