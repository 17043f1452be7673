package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/hausgo/housing-calculator/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("hausgo — what-if explorer"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	var params strings.Builder
	for i, s := range m.sliders {
		params.WriteString(s.Render(24, i == m.focus))
		params.WriteString("\n")
	}

	left := PanelStyle.Render(strings.TrimRight(params.String(), "\n"))
	right := PanelStyle.Render(m.renderResults())

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑↓ select • ←→ adjust • q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderResults draws the live comparison panel.
func (m Model) renderResults() string {
	if m.comparison == nil {
		return "computing..."
	}

	var b strings.Builder
	for _, r := range m.comparison.Active() {
		marker := "  "
		if r.Strategy == m.verdict.Best {
			marker = "▸ "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			MetricLabelStyle.Render(fmt.Sprintf("%-14s", r.Strategy.DisplayName())),
			styleGain(r.NetGain)))
	}

	b.WriteString("\n")
	if m.verdict.Close {
		b.WriteString(VerdictStyle.Render("Too close to call"))
	} else {
		b.WriteString(VerdictStyle.Render(m.verdict.Best.DisplayName() + " wins"))
	}

	if degraded(m.comparison) {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("some figures degraded to zero; see compare --debug"))
	}
	return b.String()
}

func styleGain(gain decimal.Decimal) string {
	text := "$" + gain.StringFixed(0)
	if gain.IsNegative() {
		return MetricNegativeStyle.Render(text)
	}
	return MetricPositiveStyle.Render(text)
}

func degraded(cmp *domain.Comparison) bool {
	for _, r := range cmp.Active() {
		if r.Degraded() {
			return true
		}
	}
	return false
}
