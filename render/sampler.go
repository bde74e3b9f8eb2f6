package render

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/specfit/curve"
)

// SampleCurve evaluates f at `points` evenly spaced positions across its
// stored display range and returns the (xs, ys) arrays, for plotting
// surfaces that consume sampled data instead of evaluable curves.
//
// The stored parameter block is used; call SetParameters (or let the fit
// driver do it) first.  Returns ErrNilCurve on a nil function and
// ErrBadPointCount for points < 2.
func SampleCurve(f *curve.Function, points int) (xs, ys []float64, err error) {
	if f == nil {
		return nil, nil, ErrNilCurve
	}
	if points < 2 {
		return nil, nil, ErrBadPointCount
	}

	lo, hi := f.Range()
	xs = floats.Span(make([]float64, points), lo, hi)
	ys = make([]float64, points)
	for i, x := range xs {
		ys[i] = f.EvalAt(x)
	}

	return xs, ys, nil
}
