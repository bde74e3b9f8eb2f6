// Package fit: samples, methods, options and sentinel errors.
package fit

import (
	"errors"

	"gonum.org/v1/gonum/optimize"
)

// Sentinel errors for objective construction and the fit driver.
var (
	// ErrNoSamples indicates an empty sample set.
	ErrNoSamples = errors.New("fit: at least one sample is required")

	// ErrModelUndefined indicates a model whose total function is not
	// constructed (NParameters reports the 0 sentinel).
	ErrModelUndefined = errors.New("fit: model has no parameters to fit")

	// ErrBadInitialParams indicates an initial vector whose length differs
	// from the model's parameter count.
	ErrBadInitialParams = errors.New("fit: initial parameter length mismatch")
)

// Sample is one measured spectral point.  Weight scales the squared residual;
// values <= 0 count as 1 (unweighted).  For counting statistics use
// Weight = 1/variance.
type Sample struct {
	X      float64
	Y      float64
	Weight float64
}

// Method selects the gonum optimizer driven by Fit.
type Method int

const (
	// NelderMead is the derivative-free simplex method (default).
	NelderMead Method = iota

	// LBFGS is limited-memory BFGS with finite-difference gradients.
	LBFGS

	// GradientDescent with finite-difference gradients.
	GradientDescent
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case NelderMead:
		return "nelder-mead"
	case LBFGS:
		return "lbfgs"
	case GradientDescent:
		return "gradient-descent"
	default:
		return "unknown"
	}
}

// toGonum maps the enum onto a gonum optimize.Method instance.
func (m Method) toGonum() optimize.Method {
	switch m {
	case LBFGS:
		return &optimize.LBFGS{}
	case GradientDescent:
		return &optimize.GradientDescent{}
	default:
		return &optimize.NelderMead{}
	}
}

// Options configures the Fit driver.
//
// Fields:
//   - Method         — which gonum optimizer to drive.
//   - MaxIterations  — cap on major iterations; 0 means the method default.
//   - InitialParams  — starting vector; nil uses the model's current values.
type Options struct {
	Method        Method
	MaxIterations int
	InitialParams []float64
}

// DefaultOptions returns NelderMead with method-default iteration limits,
// starting from the model's current parameters.
func DefaultOptions() Options {
	return Options{Method: NelderMead}
}

// Result reports a completed solve.
type Result struct {
	// Params is the minimizing parameter vector.
	Params []float64

	// Chi2 is the weighted sum of squared residuals at Params.
	Chi2 float64

	// Evaluations is the number of objective evaluations spent.
	Evaluations int

	// Status is gonum's convergence status string.
	Status string
}
