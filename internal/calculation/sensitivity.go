package calculation

import (
	"fmt"

	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityParameter names a rate assumption the sweep can vary.
type SensitivityParameter string

const (
	SensitivityAppreciation     SensitivityParameter = "appreciation"
	SensitivityInvestmentReturn SensitivityParameter = "investment_return"
	SensitivityRentGrowth       SensitivityParameter = "rent_growth"
	SensitivityFeeGrowth        SensitivityParameter = "fee_growth"
	SensitivityMortgageRate     SensitivityParameter = "mortgage_rate"
)

// SensitivityPoint is one step of the sweep: the parameter value tried and
// the resulting net gains per strategy. RentOutNetGain is nil when the
// strategy is not modeled.
type SensitivityPoint struct {
	Value          decimal.Decimal  `json:"value"`
	OccupyNetGain  decimal.Decimal  `json:"occupyNetGain"`
	RentNetGain    decimal.Decimal  `json:"rentNetGain"`
	RentOutNetGain *decimal.Decimal `json:"rentOutNetGain,omitempty"`
}

// SensitivityResult holds a completed one-parameter sweep.
type SensitivityResult struct {
	Parameter SensitivityParameter `json:"parameter"`
	BaseValue decimal.Decimal      `json:"baseValue"`
	Points    []SensitivityPoint   `json:"points"`
}

// RunSensitivity recomputes the comparison across steps evenly spaced values
// of one parameter, from base-spread to base+spread inclusive. An odd step
// count lands one point exactly on the base value.
func (e *Engine) RunSensitivity(a *domain.AssumptionSet, param SensitivityParameter, spread decimal.Decimal, steps int) (*SensitivityResult, error) {
	if a == nil {
		return nil, fmt.Errorf("assumption set is required")
	}
	if steps < 2 {
		return nil, fmt.Errorf("sensitivity sweep needs at least 2 steps, got %d", steps)
	}
	if spread.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("sensitivity spread must be positive, got %s", spread)
	}

	base, err := sensitivityValue(a, param)
	if err != nil {
		return nil, err
	}

	result := &SensitivityResult{Parameter: param, BaseValue: base}
	stepSize := spread.Mul(decimal.NewFromInt(2)).Div(decimal.NewFromInt(int64(steps - 1)))
	for i := 0; i < steps; i++ {
		value := base.Sub(spread).Add(stepSize.Mul(decimal.NewFromInt(int64(i))))
		varied := *a
		if err := setSensitivityValue(&varied, param, value); err != nil {
			return nil, err
		}

		cmp, err := e.ComputeComparison(&varied)
		if err != nil {
			return nil, fmt.Errorf("sweep step %d (%s=%s): %w", i, param, value, err)
		}
		point := SensitivityPoint{
			Value:         value,
			OccupyNetGain: cmp.Occupy.NetGain,
			RentNetGain:   cmp.Rent.NetGain,
		}
		if cmp.RentOut != nil {
			gain := cmp.RentOut.NetGain
			point.RentOutNetGain = &gain
		}
		result.Points = append(result.Points, point)
	}
	return result, nil
}

func sensitivityValue(a *domain.AssumptionSet, param SensitivityParameter) (decimal.Decimal, error) {
	switch param {
	case SensitivityAppreciation:
		return a.AppreciationRate, nil
	case SensitivityInvestmentReturn:
		return a.InvestmentReturnRate, nil
	case SensitivityRentGrowth:
		return a.RentGrowthRate, nil
	case SensitivityFeeGrowth:
		return a.FeeGrowthRate, nil
	case SensitivityMortgageRate:
		return a.MortgageRate, nil
	}
	return decimal.Zero, fmt.Errorf("unknown sensitivity parameter %q", param)
}

func setSensitivityValue(a *domain.AssumptionSet, param SensitivityParameter, value decimal.Decimal) error {
	switch param {
	case SensitivityAppreciation:
		a.AppreciationRate = value
	case SensitivityInvestmentReturn:
		a.InvestmentReturnRate = value
	case SensitivityRentGrowth:
		a.RentGrowthRate = value
	case SensitivityFeeGrowth:
		a.FeeGrowthRate = value
	case SensitivityMortgageRate:
		a.MortgageRate = value
	default:
		return fmt.Errorf("unknown sensitivity parameter %q", param)
	}
	return nil
}
