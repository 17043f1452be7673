package breakeven

import (
	"github.com/shopspring/decimal"
)

// Target selects the assumption the solver varies until the buy-and-occupy
// and rent-and-invest outcomes meet.
type Target string

const (
	// TargetRent solves for the year-1 monthly rent. Raising the rent makes
	// renting strictly worse, so the gap crosses zero at most once.
	TargetRent Target = "rent"
	// TargetAppreciation solves for the annual property appreciation rate.
	// Raising it makes buying strictly better.
	TargetAppreciation Target = "appreciation"
)

// Options configures the bisection.
type Options struct {
	Tolerance     decimal.Decimal // net-gain gap considered converged, in dollars
	MaxIterations int
}

// DefaultOptions returns the default solver configuration.
func DefaultOptions() Options {
	return Options{
		Tolerance:     decimal.NewFromInt(100),
		MaxIterations: 60,
	}
}

// Result holds a completed solve.
type Result struct {
	Target     Target          `json:"target"`
	Value      decimal.Decimal `json:"value"`      // solved parameter value
	Gap        decimal.Decimal `json:"gap"`        // buy minus rent net gain at Value
	Iterations int             `json:"iterations"`
	Converged  bool            `json:"converged"`
}

// SolveError represents errors from the break-even solver.
type SolveError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolveError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolveError) Unwrap() error {
	return e.Cause
}
