package config

import (
	"fmt"
	"os"

	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser loads and validates assumption files. Structural validation
// happens here, on the collector side of the engine boundary: the engine
// assumes every record it receives already satisfies these invariants.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an AssumptionSet from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.AssumptionSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var assumptions domain.AssumptionSet
	if err := yaml.Unmarshal(data, &assumptions); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateAssumptions(&assumptions); err != nil {
		return nil, fmt.Errorf("assumption validation failed: %w", err)
	}
	return &assumptions, nil
}

// minusOne is the floor for growth-style rates: anything at or below -100%
// has no meaning as a compounding rate.
var minusOne = decimal.NewFromInt(-1)

// ValidateAssumptions enforces the structural invariants of the assumption
// record. Degenerate-but-valid values (zero rates, 100% down payment) pass;
// the engine handles those explicitly.
func (ip *InputParser) ValidateAssumptions(a *domain.AssumptionSet) error {
	if !a.PropertyType.IsValid() {
		return fmt.Errorf("property_type must be %q or %q, got %q", domain.PropertyCoop, domain.PropertyCondo, a.PropertyType)
	}
	if a.HomePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("home_price must be positive")
	}
	if a.DownPaymentRate.LessThan(decimal.Zero) || a.DownPaymentRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("down_payment_rate must be between 0 and 1")
	}
	if a.LoanTermYears <= 0 {
		return fmt.Errorf("loan_term_years must be positive")
	}
	if a.TimeHorizonYears < 1 || a.TimeHorizonYears > 30 {
		return fmt.Errorf("time_horizon_years must be between 1 and 30, got %d", a.TimeHorizonYears)
	}
	if a.MonthlyRent.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly_rent cannot be negative")
	}
	if a.MonthlyFees.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly_fees cannot be negative")
	}
	if a.InvestmentReturnRate.LessThan(decimal.Zero) {
		return fmt.Errorf("investment_return_rate cannot be negative")
	}
	// Appreciation may be negative, but not past a total loss per year.
	for name, rate := range map[string]decimal.Decimal{
		"appreciation_rate": a.AppreciationRate,
		"rent_growth_rate":  a.RentGrowthRate,
		"fee_growth_rate":   a.FeeGrowthRate,
		"mortgage_rate":     a.MortgageRate,
	} {
		if rate.LessThanOrEqual(minusOne) {
			return fmt.Errorf("%s must be greater than -100%%", name)
		}
	}
	for name, rate := range map[string]decimal.Decimal{
		"closing_cost_rate":         a.ClosingCostRate,
		"selling_cost_rate":         a.SellingCostRate,
		"property_tax_portion_rate": a.PropertyTaxPortionRate,
		"marginal_tax_rate":         a.MarginalTaxRate,
		"ltcg_rate":                 a.LTCGRate,
		"recapture_rate":            a.RecaptureRate,
	} {
		if rate.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	if a.AnnualPropertyTax.LessThan(decimal.Zero) {
		return fmt.Errorf("annual_property_tax cannot be negative")
	}
	if a.StandardDeduction.LessThan(decimal.Zero) {
		return fmt.Errorf("standard_deduction cannot be negative")
	}

	if a.RentOut != nil {
		if err := ip.validateRentOut(a); err != nil {
			return fmt.Errorf("rent_out validation failed: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateRentOut(a *domain.AssumptionSet) error {
	if a.PropertyType != domain.PropertyCondo {
		return fmt.Errorf("rent-out strategy is only offered for condos")
	}
	ro := a.RentOut
	if ro.YearsOccupied < 1 || ro.YearsOccupied >= a.TimeHorizonYears {
		return fmt.Errorf("years_occupied must be at least 1 and less than the time horizon (%d), got %d", a.TimeHorizonYears, ro.YearsOccupied)
	}
	one := decimal.NewFromInt(1)
	if ro.VacancyRate.LessThan(decimal.Zero) || ro.VacancyRate.GreaterThan(one) {
		return fmt.Errorf("vacancy_rate must be between 0 and 1")
	}
	if ro.ManagementFeeRate.LessThan(decimal.Zero) || ro.ManagementFeeRate.GreaterThan(one) {
		return fmt.Errorf("management_fee_rate must be between 0 and 1")
	}
	if ro.AnnualLandlordCost.LessThan(decimal.Zero) {
		return fmt.Errorf("annual_landlord_cost cannot be negative")
	}
	if ro.LandValueFraction.LessThan(decimal.Zero) || ro.LandValueFraction.GreaterThanOrEqual(one) {
		return fmt.Errorf("land_value_fraction must be at least 0 and below 1")
	}
	return nil
}
