package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValueAtYear(t *testing.T) {
	initial := decimal.NewFromInt(1000)

	t.Run("zero years is identity", func(t *testing.T) {
		got := ValueAtYear(initial, decimal.NewFromFloat(0.05), 0)
		assert.True(t, got.Equal(initial))
	})

	t.Run("zero growth is identity", func(t *testing.T) {
		got := ValueAtYear(initial, decimal.Zero, 10)
		assert.True(t, got.Equal(initial))
	})

	t.Run("compounds annually", func(t *testing.T) {
		got := ValueAtYear(initial, decimal.NewFromFloat(0.05), 10)
		assert.InDelta(t, 1000*math.Pow(1.05, 10), got.InexactFloat64(), 0.01)
	})

	t.Run("negative growth shrinks", func(t *testing.T) {
		got := ValueAtYear(initial, decimal.NewFromFloat(-0.10), 5)
		assert.InDelta(t, 1000*math.Pow(0.90, 5), got.InexactFloat64(), 0.01)
	})
}

func TestMonthlyGrowthRate(t *testing.T) {
	t.Run("round-trips to the annual rate", func(t *testing.T) {
		monthly := MonthlyGrowthRate(decimal.NewFromFloat(0.06))
		annual := math.Pow(1+monthly.InexactFloat64(), 12) - 1
		assert.InDelta(t, 0.06, annual, 1e-9)
	})

	t.Run("zero annual is zero monthly", func(t *testing.T) {
		assert.True(t, MonthlyGrowthRate(decimal.Zero).IsZero())
	})

	t.Run("total-loss rate collapses to zero", func(t *testing.T) {
		assert.True(t, MonthlyGrowthRate(decimal.NewFromInt(-1)).IsZero())
	})
}

func TestAverageMonthlyValue(t *testing.T) {
	initial := decimal.NewFromInt(3000)

	t.Run("zero growth is the initial value", func(t *testing.T) {
		got := AverageMonthlyValue(initial, decimal.Zero, 10)
		assert.True(t, got.Equal(initial))
	})

	t.Run("zero horizon is the initial value", func(t *testing.T) {
		got := AverageMonthlyValue(initial, decimal.NewFromFloat(0.03), 0)
		assert.True(t, got.Equal(initial))
	})

	t.Run("positive growth averages above initial and below terminal", func(t *testing.T) {
		rate := decimal.NewFromFloat(0.03)
		avg := AverageMonthlyValue(initial, rate, 10)
		terminal := ValueAtYear(initial, rate, 10)
		assert.True(t, avg.GreaterThan(initial), "avg %s", avg)
		assert.True(t, avg.LessThan(terminal), "avg %s terminal %s", avg, terminal)
	})

	t.Run("matches brute-force monthly sum", func(t *testing.T) {
		rate := decimal.NewFromFloat(0.03)
		m := math.Pow(1.03, 1.0/12.0) - 1
		sum := 0.0
		value := 3000.0
		for i := 0; i < 120; i++ {
			sum += value
			value *= 1 + m
		}
		got := AverageMonthlyValue(initial, rate, 10)
		assert.InDelta(t, sum/120, got.InexactFloat64(), 0.01)
	})
}
