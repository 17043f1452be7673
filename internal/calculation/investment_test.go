package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFutureValueLumpSum(t *testing.T) {
	pv := decimal.NewFromInt(230000)

	t.Run("zero horizon returns present value", func(t *testing.T) {
		got := FutureValueLumpSum(pv, decimal.NewFromFloat(0.07), 0)
		assert.True(t, got.Equal(pv))
	})

	t.Run("compounds annually", func(t *testing.T) {
		got := FutureValueLumpSum(pv, decimal.NewFromFloat(0.07), 10)
		assert.InDelta(t, 230000*math.Pow(1.07, 10), got.InexactFloat64(), 0.01)
	})

	t.Run("zero rate is identity", func(t *testing.T) {
		got := FutureValueLumpSum(pv, decimal.Zero, 10)
		assert.True(t, got.Equal(pv))
	})
}

func TestFutureValueAnnuity(t *testing.T) {
	pmt := decimal.NewFromInt(1500)

	t.Run("zero rate sums contributions", func(t *testing.T) {
		got := FutureValueAnnuity(pmt, decimal.Zero, 10)
		assert.True(t, got.Equal(decimal.NewFromInt(180000)), "got %s", got)
	})

	t.Run("zero horizon", func(t *testing.T) {
		assert.True(t, FutureValueAnnuity(pmt, decimal.NewFromFloat(0.07), 0).IsZero())
	})

	t.Run("rate below -100% yields zero", func(t *testing.T) {
		assert.True(t, FutureValueAnnuity(pmt, decimal.NewFromFloat(-1.5), 10).IsZero())
	})

	t.Run("matches textbook formula", func(t *testing.T) {
		got := FutureValueAnnuity(pmt, decimal.NewFromFloat(0.07), 10)
		i := 0.07 / 12
		want := 1500 * (math.Pow(1+i, 120) - 1) / i
		assert.InDelta(t, want, got.InexactFloat64(), 0.01)
	})

	t.Run("compounding beats the plain sum", func(t *testing.T) {
		got := FutureValueAnnuity(pmt, decimal.NewFromFloat(0.07), 10)
		assert.True(t, got.GreaterThan(decimal.NewFromInt(180000)))
	})
}
