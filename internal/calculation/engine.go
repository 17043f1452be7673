package calculation

import (
	"errors"
	"fmt"

	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine orchestrates the three strategy projections. It owns no state across
// runs: every call to ComputeComparison is a pure function of the assumption
// record, so identical inputs always produce identical results.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a logger. A nil logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// ComputeComparison runs all applicable strategies against one assumption
// record. Buy & Occupy and Rent & Invest are always produced; Buy & Rent Out
// only when the assumptions model it (condo with landlord inputs). The engine
// assumes the record already passed structural validation; degenerate numeric
// inputs degrade to neutral zeros rather than aborting, and each such
// degradation is recorded on the affected result.
func (e *Engine) ComputeComparison(a *domain.AssumptionSet) (*domain.Comparison, error) {
	if a == nil {
		return nil, fmt.Errorf("assumption set is required")
	}

	cmp := &domain.Comparison{
		Assumptions: *a,
		Occupy:      e.computeBuyOccupy(a),
		Rent:        e.computeRentInvest(a),
	}
	if a.ModelsRentOut() {
		cmp.RentOut = e.computeBuyRentOut(a)
	}

	if e.Debug {
		for _, r := range cmp.Active() {
			e.Logger.Debugf("%s: net gain %s (outlay %s)", r.Strategy, r.NetGain.StringFixed(2), r.InitialOutlay.StringFixed(2))
		}
	}
	return cmp, nil
}

// guard implements the best-effort policy: an invalid-domain sub-computation
// collapses to zero, gets logged, and is recorded on the result so the
// breakdown can distinguish a true zero from a masked failure.
func (e *Engine) guard(res *domain.ScenarioResult, value decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		return value
	}
	var degraded *DegradedInputError
	if errors.As(err, &degraded) {
		e.Logger.Warnf("%s degraded to zero: %s", degraded.Op, degraded.Reason)
		res.Degradations = append(res.Degradations, domain.Degradation{Op: degraded.Op, Reason: degraded.Reason})
	} else {
		e.Logger.Warnf("sub-computation degraded to zero: %v", err)
		res.Degradations = append(res.Degradations, domain.Degradation{Op: "unknown", Reason: err.Error()})
	}
	return decimal.Zero
}
