package compare

import (
	"encoding/csv"
	"strings"

	"github.com/hausgo/housing-calculator/internal/domain"
)

// CSVFormatter formats a comparison as CSV, one row per strategy.
type CSVFormatter struct{}

// Format generates CSV output.
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Strategy",
		"Net Gain",
		"Initial Outlay",
		"Avg Monthly Cost",
		"Tax Savings",
		"Rental Cash Flow",
		"Terminal Property Value",
		"Remaining Loan Balance",
		"Selling Costs",
		"Capital Gains Tax",
		"Recapture Tax",
		"Investment Value",
		"Investment Tax",
		"Best",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, r := range compSet.Comparison.Active() {
		if err := writer.Write(cf.formatRow(r, r.Strategy == compSet.Verdict.Best)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(r *domain.ScenarioResult, best bool) []string {
	bestStr := ""
	if best {
		bestStr = "yes"
	}
	return []string{
		string(r.Strategy),
		r.NetGain.StringFixed(2),
		r.InitialOutlay.StringFixed(2),
		r.AverageMonthlyCost.StringFixed(2),
		r.TotalTaxSavings.StringFixed(2),
		r.TotalRentalCashFlow.StringFixed(2),
		r.TerminalPropertyValue.StringFixed(2),
		r.RemainingLoanBalance.StringFixed(2),
		r.SellingCosts.StringFixed(2),
		r.CapitalGainsTax.StringFixed(2),
		r.RecaptureTax.StringFixed(2),
		r.InvestmentValue.StringFixed(2),
		r.InvestmentTax.StringFixed(2),
		bestStr,
	}
}
