package fit

import (
	"errors"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/specfit/peakmodel"
)

// Objective is the weighted least-squares objective over a model and a
// sample set.  It is what an external optimizer evaluates; it never mutates
// the model.
type Objective struct {
	model   *peakmodel.Model
	samples []Sample
}

// NewObjective validates and binds the model and samples.
// Returns ErrModelUndefined on a model with no parameters and ErrNoSamples
// on an empty sample set.
func NewObjective(m *peakmodel.Model, samples []Sample) (*Objective, error) {
	if m.NParameters() == 0 {
		return nil, ErrModelUndefined
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	return &Objective{model: m, samples: samples}, nil
}

// Chi2 returns the weighted sum of squared residuals at par.
// This is the hot path of the enclosing fit; it performs no allocation.
func (o *Objective) Chi2(par []float64) float64 {
	var sum float64
	for _, s := range o.samples {
		w := s.Weight
		if w <= 0 {
			w = 1
		}
		d := s.Y - o.model.Eval(s.X, par)
		sum += w * d * d
	}

	return sum
}

// Problem exposes the objective as a gonum optimize.Problem.  Derivatives
// are left nil; gonum fills them with finite differences when the chosen
// method needs them.
func (o *Objective) Problem() optimize.Problem {
	return optimize.Problem{Func: o.Chi2}
}

// Fit minimizes the weighted least-squares objective for m over samples and,
// on success, writes the minimizing parameters back into the model's total
// function (and into the cached background function, if one was built).
//
// The solver is gonum's; this driver only supplies the objective and the
// starting point.  A failed solve leaves the model untouched.
func Fit(m *peakmodel.Model, samples []Sample, opts Options) (Result, error) {
	obj, err := NewObjective(m, samples)
	if err != nil {
		return Result{}, err
	}

	init := opts.InitialParams
	if init == nil {
		init = m.Parameters()
	}
	if len(init) != m.NParameters() {
		return Result{}, ErrBadInitialParams
	}

	var settings *optimize.Settings
	if opts.MaxIterations > 0 {
		settings = &optimize.Settings{MajorIterations: opts.MaxIterations}
	}

	res, err := optimize.Minimize(obj.Problem(), init, settings, opts.Method.toGonum())
	if err != nil {
		return Result{}, err
	}

	if err = m.SetParameters(res.X...); err != nil {
		return Result{}, err
	}
	// Keep a previously built background overlay in sync with the new fit.
	if err = m.UpdateBackgroundParameters(); err != nil && !errors.Is(err, peakmodel.ErrNotInitialized) {
		return Result{}, err
	}

	return Result{
		Params:      res.X,
		Chi2:        res.F,
		Evaluations: res.FuncEvaluations,
		Status:      res.Status.String(),
	}, nil
}
