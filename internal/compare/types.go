package compare

import (
	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// closeRelativeBand and closeAbsoluteBand define when an outcome is reported
// as "close" rather than decisive: any other active scenario within 5% of the
// best, or within an absolute 1000 when the best is exactly zero. These
// thresholds are part of the contract and covered by tests.
var (
	closeRelativeBand = decimal.NewFromFloat(0.05)
	closeAbsoluteBand = decimal.NewFromInt(1000)
)

// Verdict identifies the winning strategy and whether the race was close.
type Verdict struct {
	Best        domain.Strategy `json:"best"`
	BestNetGain decimal.Decimal `json:"bestNetGain"`
	Margin      decimal.Decimal `json:"margin"` // distance to the runner-up
	Close       bool            `json:"close"`
}

// DecideVerdict picks the scenario with the highest net gain and flags the
// outcome as close when any other scenario falls inside the band.
func DecideVerdict(results []*domain.ScenarioResult) Verdict {
	if len(results) == 0 {
		return Verdict{}
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.NetGain.GreaterThan(best.NetGain) {
			best = r
		}
	}

	verdict := Verdict{Best: best.Strategy, BestNetGain: best.NetGain}
	first := true
	for _, r := range results {
		if r == best {
			continue
		}
		gap := best.NetGain.Sub(r.NetGain).Abs()
		if first || gap.LessThan(verdict.Margin) {
			verdict.Margin = gap
			first = false
		}
		if withinCloseBand(best.NetGain, gap) {
			verdict.Close = true
		}
	}
	return verdict
}

func withinCloseBand(best, gap decimal.Decimal) bool {
	if best.IsZero() {
		return gap.LessThanOrEqual(closeAbsoluteBand)
	}
	return gap.LessThanOrEqual(best.Abs().Mul(closeRelativeBand))
}

// ComparisonSet wraps an engine run with its verdict for the formatters.
type ComparisonSet struct {
	Comparison *domain.Comparison `json:"comparison"`
	Verdict    Verdict            `json:"verdict"`
	ConfigPath string             `json:"configPath,omitempty"`
}

// NewComparisonSet computes the verdict for a comparison.
func NewComparisonSet(cmp *domain.Comparison, configPath string) *ComparisonSet {
	return &ComparisonSet{
		Comparison: cmp,
		Verdict:    DecideVerdict(cmp.Active()),
		ConfigPath: configPath,
	}
}

// Formatter renders a comparison set for output.
type Formatter interface {
	Format(compSet *ComparisonSet) (string, error)
}

// GetFormatterByName returns the formatter for a format name, or nil for an
// unknown name.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "table", "":
		return &TableFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	}
	return nil
}
