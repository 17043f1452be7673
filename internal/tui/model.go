package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hausgo/housing-calculator/internal/calculation"
	"github.com/hausgo/housing-calculator/internal/compare"
	"github.com/hausgo/housing-calculator/internal/domain"
)

// Model is the interactive what-if screen: a stack of parameter sliders on
// the left, the live comparison on the right. Every adjustment recomputes the
// engine synchronously; a full run is a few hundred decimal operations, well
// under a frame.
type Model struct {
	engine  *calculation.Engine
	base    domain.AssumptionSet
	sliders []*Slider
	focus   int

	comparison *domain.Comparison
	verdict    compare.Verdict

	width  int
	height int
	err    error
}

// NewModel builds the screen from validated assumptions.
func NewModel(a *domain.AssumptionSet) Model {
	m := Model{
		engine:  calculation.NewEngine(),
		base:    *a,
		sliders: defaultSliders(a),
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// recompute applies the slider values to a copy of the base assumptions and
// reruns the comparison.
func (m *Model) recompute() {
	assumptions := m.base
	for _, s := range m.sliders {
		s.Apply(&assumptions, s.Value)
	}

	cmp, err := m.engine.ComputeComparison(&assumptions)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.comparison = cmp
	m.verdict = compare.DecideVerdict(cmp.Active())
}
