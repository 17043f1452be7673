package domain

import (
	"github.com/shopspring/decimal"
)

// PropertyType distinguishes co-ops from condos. The property type governs how
// the annual property tax is derived (co-ops bundle it into maintenance) and
// whether the buy-and-rent-out strategy is offered at all.
type PropertyType string

const (
	PropertyCoop  PropertyType = "coop"
	PropertyCondo PropertyType = "condo"
)

// IsValid reports whether the property type is one of the known values.
func (pt PropertyType) IsValid() bool {
	return pt == PropertyCoop || pt == PropertyCondo
}

// RentOutAssumptions holds the landlord-phase inputs for the buy-and-rent-out
// strategy. Present only when that strategy should be modeled.
type RentOutAssumptions struct {
	YearsOccupied      int             `yaml:"years_occupied" json:"yearsOccupied"`
	VacancyRate        decimal.Decimal `yaml:"vacancy_rate" json:"vacancyRate"`
	ManagementFeeRate  decimal.Decimal `yaml:"management_fee_rate" json:"managementFeeRate"`
	AnnualLandlordCost decimal.Decimal `yaml:"annual_landlord_cost" json:"annualLandlordCost"` // year-1 level
	LandValueFraction  decimal.Decimal `yaml:"land_value_fraction" json:"landValueFraction"`   // excluded from depreciation basis
}

// AssumptionSet is the single immutable input record the engine consumes.
// All rates are decimals (0.06 = 6%); converting to and from percentages is a
// presentation concern. Structural validity (positive price, horizon range,
// rate floors) is enforced by the config loader before the engine ever sees
// the record.
type AssumptionSet struct {
	PropertyType PropertyType `yaml:"property_type" json:"propertyType"`

	// Purchase and loan
	HomePrice       decimal.Decimal `yaml:"home_price" json:"homePrice"`
	DownPaymentRate decimal.Decimal `yaml:"down_payment_rate" json:"downPaymentRate"`
	MortgageRate    decimal.Decimal `yaml:"mortgage_rate" json:"mortgageRate"`
	LoanTermYears   int             `yaml:"loan_term_years" json:"loanTermYears"`
	MonthlyFees     decimal.Decimal `yaml:"monthly_fees" json:"monthlyFees"` // maintenance or common charges, year-1
	ClosingCostRate decimal.Decimal `yaml:"closing_cost_rate" json:"closingCostRate"`

	// Rental market
	MonthlyRent decimal.Decimal `yaml:"monthly_rent" json:"monthlyRent"` // equivalent unit, year-1

	// Market and time
	TimeHorizonYears     int             `yaml:"time_horizon_years" json:"timeHorizonYears"`
	AppreciationRate     decimal.Decimal `yaml:"appreciation_rate" json:"appreciationRate"`
	InvestmentReturnRate decimal.Decimal `yaml:"investment_return_rate" json:"investmentReturnRate"`
	RentGrowthRate       decimal.Decimal `yaml:"rent_growth_rate" json:"rentGrowthRate"`
	FeeGrowthRate        decimal.Decimal `yaml:"fee_growth_rate" json:"feeGrowthRate"`
	SellingCostRate      decimal.Decimal `yaml:"selling_cost_rate" json:"sellingCostRate"`

	// Taxes
	PropertyTaxPortionRate decimal.Decimal `yaml:"property_tax_portion_rate" json:"propertyTaxPortionRate"` // co-op: share of fees that is property tax
	AnnualPropertyTax      decimal.Decimal `yaml:"annual_property_tax" json:"annualPropertyTax"`            // condo bill, or co-op override
	MarginalTaxRate        decimal.Decimal `yaml:"marginal_tax_rate" json:"marginalTaxRate"`
	LTCGRate               decimal.Decimal `yaml:"ltcg_rate" json:"ltcgRate"`
	RecaptureRate          decimal.Decimal `yaml:"recapture_rate" json:"recaptureRate"`
	StandardDeduction      decimal.Decimal `yaml:"standard_deduction" json:"standardDeduction"`
	MortgageInterestCap    decimal.Decimal `yaml:"mortgage_interest_cap" json:"mortgageInterestCap"`
	SALTCap                decimal.Decimal `yaml:"salt_cap" json:"saltCap"`

	// Optional landlord phase (condo only)
	RentOut *RentOutAssumptions `yaml:"rent_out,omitempty" json:"rentOut,omitempty"`
}

// DownPaymentAmount returns the cash down payment.
func (a *AssumptionSet) DownPaymentAmount() decimal.Decimal {
	return a.HomePrice.Mul(a.DownPaymentRate)
}

// LoanAmount returns the original mortgage principal.
func (a *AssumptionSet) LoanAmount() decimal.Decimal {
	return a.HomePrice.Sub(a.DownPaymentAmount())
}

// ClosingCosts returns the buyer closing costs paid at purchase.
func (a *AssumptionSet) ClosingCosts() decimal.Decimal {
	return a.HomePrice.Mul(a.ClosingCostRate)
}

// InitialOutlay returns the total cash required to buy: down payment plus
// closing costs. The rent-and-invest strategy invests this same amount.
func (a *AssumptionSet) InitialOutlay() decimal.Decimal {
	return a.DownPaymentAmount().Add(a.ClosingCosts())
}

// CostBasis returns the purchase cost basis used for the capital gain at sale.
func (a *AssumptionSet) CostBasis() decimal.Decimal {
	return a.HomePrice.Add(a.ClosingCosts())
}

// PropertyTaxYear1 derives the first-year annual property tax. Co-ops carve it
// out of the monthly fees unless a separate annual figure overrides that;
// condos always bill it separately and ignore the portion rate.
func (a *AssumptionSet) PropertyTaxYear1() decimal.Decimal {
	if a.PropertyType == PropertyCondo {
		return a.AnnualPropertyTax
	}
	if a.AnnualPropertyTax.GreaterThan(decimal.Zero) {
		return a.AnnualPropertyTax
	}
	return a.MonthlyFees.Mul(decimal.NewFromInt(12)).Mul(a.PropertyTaxPortionRate)
}

// PropertyTaxBilledSeparately reports whether the property tax is a cash cost
// on top of the monthly fees (condo) rather than already inside them (co-op).
func (a *AssumptionSet) PropertyTaxBilledSeparately() bool {
	return a.PropertyType == PropertyCondo
}

// ModelsRentOut reports whether the buy-and-rent-out strategy applies.
// It is offered for condos only, and only when landlord assumptions are given.
func (a *AssumptionSet) ModelsRentOut() bool {
	return a.PropertyType == PropertyCondo && a.RentOut != nil
}
