package breakeven

import (
	"github.com/hausgo/housing-calculator/internal/calculation"
	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solve bisects the target parameter until the Buy & Occupy and Rent & Invest
// net gains meet within the tolerance. Both supported targets move the gap
// monotonically (see Target docs), so a sign change over the initial bracket
// guarantees a crossing.
func Solve(engine *calculation.Engine, a *domain.AssumptionSet, target Target, opts Options) (*Result, error) {
	if engine == nil || a == nil {
		return nil, &SolveError{Operation: "solve", Message: "engine and assumptions are required"}
	}
	if opts.MaxIterations <= 0 {
		opts = DefaultOptions()
	}

	lo, hi, err := bracket(engine, a, target)
	if err != nil {
		return nil, err
	}

	result := &Result{Target: target}
	for i := 0; i < opts.MaxIterations; i++ {
		mid := lo.Add(hi).Div(two)
		gap, err := gapAt(engine, a, target, mid)
		if err != nil {
			return nil, &SolveError{Operation: "solve", Message: "evaluating candidate", Cause: err}
		}

		result.Value = mid
		result.Gap = gap
		result.Iterations = i + 1

		if gap.Abs().LessThanOrEqual(opts.Tolerance) {
			result.Converged = true
			return result, nil
		}
		if gap.IsNegative() {
			// Buying trails renting; push the parameter up.
			lo = mid
		} else {
			hi = mid
		}
	}
	return result, nil
}

// gapAt evaluates buy-minus-rent net gain with the target parameter set.
func gapAt(engine *calculation.Engine, a *domain.AssumptionSet, target Target, value decimal.Decimal) (decimal.Decimal, error) {
	varied := *a
	switch target {
	case TargetRent:
		varied.MonthlyRent = value
	case TargetAppreciation:
		varied.AppreciationRate = value
	default:
		return decimal.Zero, &SolveError{Operation: "gap", Message: "unknown target " + string(target)}
	}
	cmp, err := engine.ComputeComparison(&varied)
	if err != nil {
		return decimal.Zero, err
	}
	return cmp.Occupy.NetGain.Sub(cmp.Rent.NetGain), nil
}

// bracket finds [lo, hi] with gap(lo) < 0 <= gap(hi). For rent it starts at
// zero rent and doubles the upper bound; for appreciation it uses the sane
// modeling range and gives up if the gap never changes sign inside it.
func bracket(engine *calculation.Engine, a *domain.AssumptionSet, target Target) (decimal.Decimal, decimal.Decimal, error) {
	var lo, hi decimal.Decimal
	switch target {
	case TargetRent:
		lo = decimal.Zero
		hi = a.MonthlyRent
		if hi.LessThanOrEqual(decimal.Zero) {
			hi = decimal.NewFromInt(1000)
		}
	case TargetAppreciation:
		lo = decimal.NewFromFloat(-0.10)
		hi = decimal.NewFromFloat(0.20)
	default:
		return decimal.Zero, decimal.Zero, &SolveError{Operation: "bracket", Message: "unknown target " + string(target)}
	}

	gapLo, err := gapAt(engine, a, target, lo)
	if err != nil {
		return decimal.Zero, decimal.Zero, &SolveError{Operation: "bracket", Message: "evaluating lower bound", Cause: err}
	}
	if !gapLo.IsNegative() {
		return decimal.Zero, decimal.Zero, &SolveError{
			Operation: "bracket",
			Message:   "buying already wins at the lower bound; no crossing to solve for",
		}
	}

	gapHi, err := gapAt(engine, a, target, hi)
	if err != nil {
		return decimal.Zero, decimal.Zero, &SolveError{Operation: "bracket", Message: "evaluating upper bound", Cause: err}
	}
	if target == TargetRent {
		for expand := 0; gapHi.IsNegative() && expand < 20; expand++ {
			hi = hi.Mul(two)
			gapHi, err = gapAt(engine, a, target, hi)
			if err != nil {
				return decimal.Zero, decimal.Zero, &SolveError{Operation: "bracket", Message: "expanding upper bound", Cause: err}
			}
		}
	}
	if gapHi.IsNegative() {
		return decimal.Zero, decimal.Zero, &SolveError{
			Operation: "bracket",
			Message:   "renting still wins at the upper bound; no crossing in range",
		}
	}
	return lo, hi, nil
}
