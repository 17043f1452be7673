package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Slider is an adjustable assumption bound to a field of the assumption set.
// Values are plain floats for display; Apply writes the decimal image back.
type Slider struct {
	Label  string
	Value  float64
	Min    float64
	Max    float64
	Step   float64
	Unit   string // e.g. "%", "$"
	Format string // e.g. "%.1f"
	Apply  func(a *domain.AssumptionSet, value float64)
}

// Increment raises the value by one step, clamped to the range.
func (s *Slider) Increment() {
	s.SetValue(s.Value + s.Step)
}

// Decrement lowers the value by one step, clamped to the range.
func (s *Slider) Decrement() {
	s.SetValue(s.Value - s.Step)
}

// SetValue clamps and stores a value.
func (s *Slider) SetValue(value float64) {
	s.Value = math.Max(s.Min, math.Min(s.Max, value))
}

// percentage returns the position of the value within the range.
func (s *Slider) percentage() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Render draws the slider as a single line: label, value, and bar.
func (s *Slider) Render(width int, focused bool) string {
	labelStyle := ParameterLabelStyle
	valueStyle := ParameterValueStyle
	thumbStyle := SliderThumbStyle
	if focused {
		labelStyle = labelStyle.Foreground(ColorAccent)
		valueStyle = valueStyle.Foreground(ColorAccent)
		thumbStyle = thumbStyle.Foreground(ColorAccent)
	}

	valueStr := fmt.Sprintf(s.Format, s.Value)
	if s.Unit != "" {
		valueStr += s.Unit
	}

	filled := int(math.Round(float64(width) * s.percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(SliderTrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")

	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(fmt.Sprintf("%-22s", s.Label)),
		bar.String(),
		valueStyle.Render(valueStr))
}

// defaultSliders builds the adjustable parameters from the loaded assumptions.
func defaultSliders(a *domain.AssumptionSet) []*Slider {
	pct := func(d decimal.Decimal) float64 { return d.InexactFloat64() * 100 }
	return []*Slider{
		{
			Label: "Mortgage rate", Value: pct(a.MortgageRate), Min: 1, Max: 15, Step: 0.125, Unit: "%", Format: "%.3f",
			Apply: func(a *domain.AssumptionSet, v float64) { a.MortgageRate = decimal.NewFromFloat(v / 100) },
		},
		{
			Label: "Down payment", Value: pct(a.DownPaymentRate), Min: 0, Max: 100, Step: 2.5, Unit: "%", Format: "%.1f",
			Apply: func(a *domain.AssumptionSet, v float64) { a.DownPaymentRate = decimal.NewFromFloat(v / 100) },
		},
		{
			Label: "Appreciation", Value: pct(a.AppreciationRate), Min: -5, Max: 15, Step: 0.25, Unit: "%", Format: "%.2f",
			Apply: func(a *domain.AssumptionSet, v float64) { a.AppreciationRate = decimal.NewFromFloat(v / 100) },
		},
		{
			Label: "Investment return", Value: pct(a.InvestmentReturnRate), Min: 0, Max: 15, Step: 0.25, Unit: "%", Format: "%.2f",
			Apply: func(a *domain.AssumptionSet, v float64) { a.InvestmentReturnRate = decimal.NewFromFloat(v / 100) },
		},
		{
			Label: "Rent growth", Value: pct(a.RentGrowthRate), Min: 0, Max: 10, Step: 0.25, Unit: "%", Format: "%.2f",
			Apply: func(a *domain.AssumptionSet, v float64) { a.RentGrowthRate = decimal.NewFromFloat(v / 100) },
		},
		{
			Label: "Monthly rent", Value: a.MonthlyRent.InexactFloat64(), Min: 500, Max: 30000, Step: 100, Unit: "$", Format: "%.0f",
			Apply: func(a *domain.AssumptionSet, v float64) { a.MonthlyRent = decimal.NewFromFloat(v) },
		},
	}
}
