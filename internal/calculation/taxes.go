package calculation

import (
	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX MODEL ASSUMPTIONS:
//
// 1. One marginal ordinary-income rate covers federal + state + local combined.
//    No bracket progression, no inflation indexing of the standard deduction.
// 2. The SALT deduction is modeled as min(property tax, cap): property tax is
//    assumed to be the binding constraint within the capped bucket.
// 3. Rental losses offset ordinary income at the marginal rate with no
//    passive-activity-loss limitation.
// 4. Residential depreciation is straight-line over 27.5 years on the building
//    portion of the purchase price, rental years only.
// 5. The primary-residence exclusion is a fixed $500,000 (married filing
//    jointly), gated by the 2-of-last-5-years occupancy test.

// PrimaryResidenceExclusion is the capital-gain amount excluded at sale when
// the occupancy test is met.
var PrimaryResidenceExclusion = decimal.NewFromInt(500000)

// DepreciationLifeYears is the straight-line recovery period for residential
// rental property.
var DepreciationLifeYears = decimal.NewFromFloat(27.5)

// OwnerTaxCalculator computes the yearly itemized-vs-standard deduction
// benefit for an owner-occupant. It is recomputed every projection year since
// the itemized total declines as the loan amortizes.
type OwnerTaxCalculator struct {
	MarginalRate        decimal.Decimal
	StandardDeduction   decimal.Decimal
	MortgageInterestCap decimal.Decimal
	SALTCap             decimal.Decimal
	LoanPrincipal       decimal.Decimal
}

// NewOwnerTaxCalculator builds the owner-occupant calculator from the
// assumption record.
func NewOwnerTaxCalculator(a *domain.AssumptionSet) OwnerTaxCalculator {
	return OwnerTaxCalculator{
		MarginalRate:        a.MarginalTaxRate,
		StandardDeduction:   a.StandardDeduction,
		MortgageInterestCap: a.MortgageInterestCap,
		SALTCap:             a.SALTCap,
		LoanPrincipal:       a.LoanAmount(),
	}
}

// DeductibleInterest caps the deductible share of the year's mortgage interest
// by the ratio of the interest-deduction principal limit to the original loan.
func (o OwnerTaxCalculator) DeductibleInterest(interestPaid decimal.Decimal) decimal.Decimal {
	if o.MortgageInterestCap.LessThanOrEqual(decimal.Zero) || o.LoanPrincipal.LessThanOrEqual(o.MortgageInterestCap) {
		return interestPaid
	}
	ratio := o.MortgageInterestCap.Div(o.LoanPrincipal)
	if ratio.GreaterThan(decimalOne) {
		ratio = decimalOne
	}
	return interestPaid.Mul(ratio)
}

// YearlySaving returns the tax saved this year by itemizing over the standard
// deduction, floored at zero: itemizing never costs more than taking the
// standard deduction.
func (o OwnerTaxCalculator) YearlySaving(interestPaid, propertyTax decimal.Decimal) decimal.Decimal {
	itemized := o.DeductibleInterest(interestPaid).Add(decimal.Min(propertyTax, o.SALTCap))
	excess := itemized.Sub(o.StandardDeduction)
	if excess.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return excess.Mul(o.MarginalRate)
}

// RentalYear is one landlord year's tax assessment. TaxableIncome may be
// negative (a loss), and Tax follows its sign: a loss produces a negative tax,
// a benefit against other ordinary income.
type RentalYear struct {
	EffectiveRent      decimal.Decimal
	ManagementFee      decimal.Decimal
	Depreciation       decimal.Decimal
	DeductibleExpenses decimal.Decimal
	TaxableIncome      decimal.Decimal
	Tax                decimal.Decimal
	AfterTaxCashFlow   decimal.Decimal
}

// RentalTaxCalculator computes a landlord year: effective rent after vacancy,
// the deductible expense schedule, the signed rental tax, and the after-tax
// cash flow.
type RentalTaxCalculator struct {
	MarginalRate      decimal.Decimal
	VacancyRate       decimal.Decimal
	ManagementFeeRate decimal.Decimal
}

// NewRentalTaxCalculator builds the landlord calculator from the assumption
// record. Callers must only use it when rent-out assumptions are present.
func NewRentalTaxCalculator(a *domain.AssumptionSet) RentalTaxCalculator {
	return RentalTaxCalculator{
		MarginalRate:      a.MarginalTaxRate,
		VacancyRate:       a.RentOut.VacancyRate,
		ManagementFeeRate: a.RentOut.ManagementFeeRate,
	}
}

// EffectiveRent discounts the scheduled gross rent by the vacancy rate.
func (r RentalTaxCalculator) EffectiveRent(grossAnnualRent decimal.Decimal) decimal.Decimal {
	return grossAnnualRent.Mul(decimalOne.Sub(r.VacancyRate))
}

// Assess computes one rental year. debtService is the full cash mortgage
// outlay for the year; interest is its deductible component. Depreciation is
// deductible but not a cash cost, and principal is a cash cost but not
// deductible, so taxable income and cash flow legitimately diverge.
func (r RentalTaxCalculator) Assess(grossAnnualRent, interest, propertyTax, fees, extraCosts, depreciation, debtService decimal.Decimal) RentalYear {
	effectiveRent := r.EffectiveRent(grossAnnualRent)
	managementFee := effectiveRent.Mul(r.ManagementFeeRate)

	deductible := interest.
		Add(propertyTax).
		Add(fees).
		Add(managementFee).
		Add(extraCosts).
		Add(depreciation)
	taxable := effectiveRent.Sub(deductible)
	tax := taxable.Mul(r.MarginalRate)

	cashOut := debtService.Add(fees).Add(propertyTax).Add(managementFee).Add(extraCosts)
	cashFlow := effectiveRent.Sub(cashOut).Sub(tax)

	return RentalYear{
		EffectiveRent:      effectiveRent,
		ManagementFee:      managementFee,
		Depreciation:       depreciation,
		DeductibleExpenses: deductible,
		TaxableIncome:      taxable,
		Tax:                tax,
		AfterTaxCashFlow:   cashFlow,
	}
}

// AnnualDepreciation returns the straight-line yearly depreciation on the
// building portion of the purchase price.
func AnnualDepreciation(homePrice, landValueFraction decimal.Decimal) decimal.Decimal {
	building := homePrice.Mul(decimalOne.Sub(landValueFraction))
	if building.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return building.Div(DepreciationLifeYears)
}

// SaleTaxCalculator computes the taxes due when the property is sold:
// depreciation recapture and capital gains with the primary-residence
// exclusion.
type SaleTaxCalculator struct {
	LTCGRate      decimal.Decimal
	RecaptureRate decimal.Decimal
}

// NewSaleTaxCalculator builds the sale calculator from the assumption record.
func NewSaleTaxCalculator(a *domain.AssumptionSet) SaleTaxCalculator {
	return SaleTaxCalculator{
		LTCGRate:      a.LTCGRate,
		RecaptureRate: a.RecaptureRate,
	}
}

// RecaptureTax taxes the cumulative depreciation taken at the recapture rate.
func (s SaleTaxCalculator) RecaptureTax(depreciationTaken decimal.Decimal) decimal.Decimal {
	if depreciationTaken.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return depreciationTaken.Mul(s.RecaptureRate)
}

// CapitalGain returns the taxable gain before the exclusion: sale price net of
// selling costs and the purchase cost basis, floored at zero, less the
// depreciation already taxed as recapture, floored again. No floor is ever
// allowed to turn a loss into a phantom benefit.
func CapitalGain(salePrice, sellingCosts, costBasis, depreciationTaken decimal.Decimal) decimal.Decimal {
	gain := salePrice.Sub(sellingCosts).Sub(costBasis)
	if gain.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	gain = gain.Sub(depreciationTaken)
	if gain.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return gain
}

// OccupancyExclusionEligible applies the 2-of-last-5-years test. The occupied
// span is years [1, yearsOccupied] of the horizon; the lookback window is the
// trailing five years, or the whole horizon when it is shorter than five. The
// overlap is computed explicitly rather than assumed.
func OccupancyExclusionEligible(yearsOccupied, horizonYears int) bool {
	if yearsOccupied <= 0 || horizonYears <= 0 {
		return false
	}
	windowStart := horizonYears - 4
	if windowStart < 1 {
		windowStart = 1
	}
	occupiedEnd := yearsOccupied
	if occupiedEnd > horizonYears {
		occupiedEnd = horizonYears
	}
	overlap := occupiedEnd - windowStart + 1
	return overlap >= 2
}

// CapitalGainsTax taxes the gain at the LTCG rate after subtracting the
// primary-residence exclusion when the occupancy test is met.
func (s SaleTaxCalculator) CapitalGainsTax(gain decimal.Decimal, exclusionEligible bool) decimal.Decimal {
	if exclusionEligible {
		gain = gain.Sub(PrimaryResidenceExclusion)
	}
	if gain.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return gain.Mul(s.LTCGRate)
}
