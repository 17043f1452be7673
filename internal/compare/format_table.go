package compare

import (
	"fmt"
	"strings"

	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats a comparison as a console table.
type TableFormatter struct{}

// Format generates the table output.
func (tf *TableFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	a := &compSet.Comparison.Assumptions

	sb.WriteString("HOUSING STRATEGY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Property: %s at $%s, %d-year horizon\n",
		a.PropertyType, tf.formatDecimal(a.HomePrice), a.TimeHorizonYears))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 18
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Strategy",
		numWidth, "Net Gain",
		numWidth, "Initial Outlay",
		numWidth, "Avg Monthly"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, r := range compSet.Comparison.Active() {
		marker := ""
		if r.Strategy == compSet.Verdict.Best {
			marker = " *"
		}
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s%s\n",
			nameWidth, r.Strategy.DisplayName(),
			numWidth, "$"+tf.formatDecimal(r.NetGain),
			numWidth, "$"+tf.formatDecimal(r.InitialOutlay),
			numWidth, "$"+tf.formatDecimal(r.AverageMonthlyCost),
			marker))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	for _, r := range compSet.Comparison.Active() {
		tf.writeDetail(&sb, r)
	}

	sb.WriteString("VERDICT\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	if compSet.Verdict.Close {
		sb.WriteString(fmt.Sprintf("Close call: %s leads by $%s, within the reporting band.\n",
			compSet.Verdict.Best.DisplayName(), tf.formatDecimal(compSet.Verdict.Margin)))
	} else {
		sb.WriteString(fmt.Sprintf("%s is ahead by $%s.\n",
			compSet.Verdict.Best.DisplayName(), tf.formatDecimal(compSet.Verdict.Margin)))
	}

	return sb.String(), nil
}

// writeDetail prints the supporting sub-totals for one scenario.
func (tf *TableFormatter) writeDetail(sb *strings.Builder, r *domain.ScenarioResult) {
	sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(r.Strategy.DisplayName())))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	switch r.Strategy {
	case domain.StrategyRentInvest:
		sb.WriteString(fmt.Sprintf("  Average monthly rent:      $%s\n", tf.formatDecimal(r.AverageMonthlyCost)))
		sb.WriteString(fmt.Sprintf("  Investment value:          $%s\n", tf.formatDecimal(r.InvestmentValue)))
		sb.WriteString(fmt.Sprintf("  Investment tax:            $%s\n", tf.formatDecimal(r.InvestmentTax)))
	default:
		sb.WriteString(fmt.Sprintf("  Average monthly cost:      $%s\n", tf.formatDecimal(r.AverageMonthlyCost)))
		sb.WriteString(fmt.Sprintf("  Terminal property value:   $%s\n", tf.formatDecimal(r.TerminalPropertyValue)))
		sb.WriteString(fmt.Sprintf("  Remaining loan balance:    $%s\n", tf.formatDecimal(r.RemainingLoanBalance)))
		sb.WriteString(fmt.Sprintf("  Selling costs:             $%s\n", tf.formatDecimal(r.SellingCosts)))
		sb.WriteString(fmt.Sprintf("  Capital gains tax:         $%s\n", tf.formatDecimal(r.CapitalGainsTax)))
		if !r.TotalTaxSavings.IsZero() {
			sb.WriteString(fmt.Sprintf("  Itemized tax savings:      $%s\n", tf.formatDecimal(r.TotalTaxSavings)))
		}
		if r.Strategy == domain.StrategyBuyRentOut {
			sb.WriteString(fmt.Sprintf("  Rental cash flow:          $%s\n", tf.formatDecimal(r.TotalRentalCashFlow)))
			sb.WriteString(fmt.Sprintf("  Depreciation taken:        $%s\n", tf.formatDecimal(r.DepreciationTaken)))
			sb.WriteString(fmt.Sprintf("  Recapture tax:             $%s\n", tf.formatDecimal(r.RecaptureTax)))
		}
	}
	sb.WriteString(fmt.Sprintf("  Net financial gain:        $%s\n", tf.formatDecimal(r.NetGain)))

	if r.Degraded() {
		for _, d := range r.Degradations {
			sb.WriteString(fmt.Sprintf("  (degraded: %s - %s)\n", d.Op, d.Reason))
		}
	}
	sb.WriteString("\n")
}

// formatDecimal formats a decimal for display (in thousands/millions).
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}
