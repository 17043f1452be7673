package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hausgo/housing-calculator/internal/domain"
)

func result(s domain.Strategy, netGain int64) *domain.ScenarioResult {
	return &domain.ScenarioResult{Strategy: s, NetGain: decimal.NewFromInt(netGain)}
}

func TestDecideVerdict(t *testing.T) {
	t.Run("picks the highest net gain", func(t *testing.T) {
		v := DecideVerdict([]*domain.ScenarioResult{
			result(domain.StrategyBuyOccupy, 300000),
			result(domain.StrategyRentInvest, 150000),
			result(domain.StrategyBuyRentOut, 250000),
		})
		assert.Equal(t, domain.StrategyBuyOccupy, v.Best)
		assert.True(t, v.Margin.Equal(decimal.NewFromInt(50000)), "margin %s", v.Margin)
		assert.False(t, v.Close)
	})

	t.Run("runner-up within five percent is close", func(t *testing.T) {
		v := DecideVerdict([]*domain.ScenarioResult{
			result(domain.StrategyBuyOccupy, 300000),
			result(domain.StrategyRentInvest, 290000),
		})
		assert.Equal(t, domain.StrategyBuyOccupy, v.Best)
		assert.True(t, v.Close)
	})

	t.Run("just outside the band is decisive", func(t *testing.T) {
		v := DecideVerdict([]*domain.ScenarioResult{
			result(domain.StrategyBuyOccupy, 300000),
			result(domain.StrategyRentInvest, 284000),
		})
		assert.False(t, v.Close, "gap 16000 exceeds 5%% of 300000")
	})

	t.Run("zero best uses the absolute band", func(t *testing.T) {
		tied := DecideVerdict([]*domain.ScenarioResult{
			result(domain.StrategyBuyOccupy, 0),
			result(domain.StrategyRentInvest, -900),
		})
		assert.True(t, tied.Close)

		decisive := DecideVerdict([]*domain.ScenarioResult{
			result(domain.StrategyBuyOccupy, 0),
			result(domain.StrategyRentInvest, -5000),
		})
		assert.False(t, decisive.Close)
	})

	t.Run("negative outcomes still rank", func(t *testing.T) {
		v := DecideVerdict([]*domain.ScenarioResult{
			result(domain.StrategyBuyOccupy, -50000),
			result(domain.StrategyRentInvest, -20000),
		})
		assert.Equal(t, domain.StrategyRentInvest, v.Best)
	})

	t.Run("empty input", func(t *testing.T) {
		v := DecideVerdict(nil)
		assert.Empty(t, v.Best)
	})
}

func TestGetFormatterByName(t *testing.T) {
	assert.IsType(t, &TableFormatter{}, GetFormatterByName("table"))
	assert.IsType(t, &TableFormatter{}, GetFormatterByName(""))
	assert.IsType(t, &CSVFormatter{}, GetFormatterByName("csv"))
	assert.IsType(t, &JSONFormatter{}, GetFormatterByName("json"))
	assert.Nil(t, GetFormatterByName("html"))
}
