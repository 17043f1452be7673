package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausgo/housing-calculator/internal/domain"
)

func TestRunSensitivity(t *testing.T) {
	engine := NewEngine()
	a := condoAssumptions()

	t.Run("sweep spans base plus and minus the spread", func(t *testing.T) {
		result, err := engine.RunSensitivity(a, SensitivityAppreciation, decimal.NewFromFloat(0.02), 5)
		require.NoError(t, err)
		assert.Equal(t, SensitivityAppreciation, result.Parameter)
		require.Len(t, result.Points, 5)

		assert.InDelta(t, 0.01, result.Points[0].Value.InexactFloat64(), 1e-9)
		assert.InDelta(t, 0.05, result.Points[4].Value.InexactFloat64(), 1e-9)
		// Odd step count lands the middle point on the base value.
		assert.True(t, result.Points[2].Value.Equal(result.BaseValue))
	})

	t.Run("occupy gain rises with appreciation across the sweep", func(t *testing.T) {
		result, err := engine.RunSensitivity(a, SensitivityAppreciation, decimal.NewFromFloat(0.02), 5)
		require.NoError(t, err)
		for i := 1; i < len(result.Points); i++ {
			assert.True(t, result.Points[i].OccupyNetGain.GreaterThan(result.Points[i-1].OccupyNetGain),
				"step %d not increasing", i)
		}
	})

	t.Run("rent-out column tracks the modeled strategies", func(t *testing.T) {
		result, err := engine.RunSensitivity(a, SensitivityRentGrowth, decimal.NewFromFloat(0.01), 3)
		require.NoError(t, err)
		for _, p := range result.Points {
			assert.Nil(t, p.RentOutNetGain)
		}

		withLandlord := condoAssumptions()
		withLandlord.RentOut = &domain.RentOutAssumptions{
			YearsOccupied:      3,
			VacancyRate:        decimal.NewFromFloat(0.05),
			ManagementFeeRate:  decimal.NewFromFloat(0.10),
			AnnualLandlordCost: decimal.NewFromInt(2000),
			LandValueFraction:  decimal.NewFromFloat(0.20),
		}
		result, err = engine.RunSensitivity(withLandlord, SensitivityRentGrowth, decimal.NewFromFloat(0.01), 3)
		require.NoError(t, err)
		for _, p := range result.Points {
			require.NotNil(t, p.RentOutNetGain)
		}
	})

	t.Run("invalid inputs are rejected", func(t *testing.T) {
		_, err := engine.RunSensitivity(nil, SensitivityAppreciation, decimal.NewFromFloat(0.02), 5)
		assert.Error(t, err)

		_, err = engine.RunSensitivity(a, SensitivityAppreciation, decimal.NewFromFloat(0.02), 1)
		assert.Error(t, err)

		_, err = engine.RunSensitivity(a, SensitivityAppreciation, decimal.Zero, 5)
		assert.Error(t, err)

		_, err = engine.RunSensitivity(a, SensitivityParameter("cap_rate"), decimal.NewFromFloat(0.02), 5)
		assert.Error(t, err)
	})

	t.Run("the sweep leaves the input record untouched", func(t *testing.T) {
		before := a.AppreciationRate
		_, err := engine.RunSensitivity(a, SensitivityAppreciation, decimal.NewFromFloat(0.02), 5)
		require.NoError(t, err)
		assert.True(t, a.AppreciationRate.Equal(before))
	})
}
