package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausgo/housing-calculator/internal/calculation"
	"github.com/hausgo/housing-calculator/internal/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func chartComparison(t *testing.T) *domain.Comparison {
	t.Helper()
	a := &domain.AssumptionSet{
		PropertyType:         domain.PropertyCoop,
		HomePrice:            decimal.NewFromInt(1000000),
		DownPaymentRate:      decimal.NewFromFloat(0.20),
		MortgageRate:         decimal.NewFromFloat(0.06),
		LoanTermYears:        30,
		MonthlyFees:          decimal.NewFromInt(1500),
		MonthlyRent:          decimal.NewFromInt(4000),
		TimeHorizonYears:     10,
		AppreciationRate:     decimal.NewFromFloat(0.03),
		InvestmentReturnRate: decimal.NewFromFloat(0.07),
		RentGrowthRate:       decimal.NewFromFloat(0.02),
		FeeGrowthRate:        decimal.NewFromFloat(0.02),
		SellingCostRate:      decimal.NewFromFloat(0.06),
	}
	cmp, err := calculation.NewEngine().ComputeComparison(a)
	require.NoError(t, err)
	return cmp
}

func TestRenderComparisonChart(t *testing.T) {
	buf, err := RenderComparisonChart(chartComparison(t))
	require.NoError(t, err)
	require.Greater(t, len(buf), len(pngMagic))
	assert.Equal(t, pngMagic, buf[:len(pngMagic)], "output is a PNG")
}

func TestWriteComparisonChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.png")
	require.NoError(t, WriteComparisonChart(chartComparison(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}
