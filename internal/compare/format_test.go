package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausgo/housing-calculator/internal/calculation"
	"github.com/hausgo/housing-calculator/internal/domain"
)

func testComparisonSet(t *testing.T) *ComparisonSet {
	t.Helper()
	a := &domain.AssumptionSet{
		PropertyType:         domain.PropertyCondo,
		HomePrice:            decimal.NewFromInt(1000000),
		DownPaymentRate:      decimal.NewFromFloat(0.20),
		MortgageRate:         decimal.NewFromFloat(0.06),
		LoanTermYears:        30,
		MonthlyFees:          decimal.NewFromInt(800),
		ClosingCostRate:      decimal.NewFromFloat(0.03),
		MonthlyRent:          decimal.NewFromInt(4000),
		TimeHorizonYears:     10,
		AppreciationRate:     decimal.NewFromFloat(0.03),
		InvestmentReturnRate: decimal.NewFromFloat(0.07),
		RentGrowthRate:       decimal.NewFromFloat(0.02),
		FeeGrowthRate:        decimal.NewFromFloat(0.02),
		SellingCostRate:      decimal.NewFromFloat(0.06),
		AnnualPropertyTax:    decimal.NewFromInt(9000),
		MarginalTaxRate:      decimal.NewFromFloat(0.35),
		LTCGRate:             decimal.NewFromFloat(0.15),
		RecaptureRate:        decimal.NewFromFloat(0.25),
		StandardDeduction:    decimal.NewFromInt(29200),
		MortgageInterestCap:  decimal.NewFromInt(750000),
		SALTCap:              decimal.NewFromInt(10000),
		RentOut: &domain.RentOutAssumptions{
			YearsOccupied:      3,
			VacancyRate:        decimal.NewFromFloat(0.05),
			ManagementFeeRate:  decimal.NewFromFloat(0.10),
			AnnualLandlordCost: decimal.NewFromInt(2000),
			LandValueFraction:  decimal.NewFromFloat(0.20),
		},
	}
	cmp, err := calculation.NewEngine().ComputeComparison(a)
	require.NoError(t, err)
	return NewComparisonSet(cmp, "assumptions.yaml")
}

func TestTableFormatter(t *testing.T) {
	out, err := (&TableFormatter{}).Format(testComparisonSet(t))
	require.NoError(t, err)

	assert.Contains(t, out, "HOUSING STRATEGY COMPARISON")
	assert.Contains(t, out, "Configuration: assumptions.yaml")
	assert.Contains(t, out, "Buy & Occupy")
	assert.Contains(t, out, "Rent & Invest")
	assert.Contains(t, out, "Buy & Rent Out")
	assert.Contains(t, out, "VERDICT")
	assert.Contains(t, out, " *", "the winner carries the marker")
	assert.Contains(t, out, "Depreciation taken:")
	assert.Contains(t, out, "Investment value:")
}

func TestTableFormatterDecimals(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "1.34M", tf.formatDecimal(decimal.NewFromInt(1343916)))
	assert.Equal(t, "266.7K", tf.formatDecimal(decimal.NewFromFloat(266666.67)))
	assert.Equal(t, "950", tf.formatDecimal(decimal.NewFromInt(950)))
	assert.Equal(t, "-1.20M", tf.formatDecimal(decimal.NewFromInt(-1200000)))
}

func TestCSVFormatter(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(testComparisonSet(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus three strategies")
	assert.Equal(t, "Strategy", records[0][0])
	assert.Equal(t, "Best", records[0][len(records[0])-1])

	bestCount := 0
	for _, row := range records[1:] {
		require.Len(t, row, len(records[0]))
		if row[len(row)-1] == "yes" {
			bestCount++
		}
	}
	assert.Equal(t, 1, bestCount)
}

func TestJSONFormatter(t *testing.T) {
	out, err := (&JSONFormatter{Pretty: true}).Format(testComparisonSet(t))
	require.NoError(t, err)

	var decoded struct {
		Comparison struct {
			Occupy  *domain.ScenarioResult `json:"occupy"`
			Rent    *domain.ScenarioResult `json:"rent"`
			RentOut *domain.ScenarioResult `json:"rentOut"`
		} `json:"comparison"`
		Verdict Verdict `json:"verdict"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.NotNil(t, decoded.Comparison.Occupy)
	require.NotNil(t, decoded.Comparison.RentOut)
	assert.Equal(t, domain.StrategyBuyOccupy, decoded.Comparison.Occupy.Strategy)
	assert.NotEmpty(t, decoded.Verdict.Best)
}
