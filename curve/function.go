package curve

// Body is the raw evaluation signature a Function wraps: a pure function of
// the independent variable and a flat parameter vector.
type Body func(x float64, par []float64) float64

// Function is an Evaluable bound to its own parameter block, display range
// and line cosmetics.  It is the unit the external optimizer fits against
// and the unit a plotting surface draws.
//
// The parameter count is fixed at construction and never changes; the stored
// range is cosmetic metadata only and is never enforced during evaluation.
//
// A Function is not safe for concurrent mutation; see the concurrency notes
// in package peakmodel.
type Function struct {
	body Body
	npar int
	par  []float64
	lo   float64
	hi   float64

	// Line carries the cosmetic draw attributes handed to a plotting surface.
	Line LineAttributes
}

// New constructs a Function with the given body and parameter count.
// The parameter block starts zeroed, the display range at [0, 1], and the
// cosmetics at DefaultLineAttributes.
//
// Returns ErrNilBody if body is nil, ErrBadParameterCount if npar < 1.
func New(body Body, npar int) (*Function, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if npar < 1 {
		return nil, ErrBadParameterCount
	}

	return &Function{
		body: body,
		npar: npar,
		par:  make([]float64, npar),
		lo:   0,
		hi:   1,
		Line: DefaultLineAttributes(),
	}, nil
}

// Wrap constructs a Function around an existing Evaluable, forwarding its
// parameter count.  Returns ErrNilBody if e is nil.
func Wrap(e Evaluable) (*Function, error) {
	if e == nil {
		return nil, ErrNilBody
	}

	return New(e.Eval, e.NPar())
}

// Eval evaluates the body at x with the supplied parameter vector, ignoring
// the stored block.  The caller guarantees len(par) >= NPar(); this is the
// hot path and performs no validation.
func (f *Function) Eval(x float64, par []float64) float64 {
	return f.body(x, par)
}

// EvalAt evaluates the body at x with the stored parameter block.
func (f *Function) EvalAt(x float64) float64 {
	return f.body(x, f.par)
}

// NPar returns the fixed parameter count.
func (f *Function) NPar() int {
	return f.npar
}

// SetParameters replaces the stored parameter block.
// Returns ErrParameterCount unless exactly NPar values are supplied.
func (f *Function) SetParameters(par ...float64) error {
	if len(par) != f.npar {
		return ErrParameterCount
	}
	copy(f.par, par)

	return nil
}

// SetParameter sets a single stored parameter.
// Returns ErrParameterIndex if i is outside [0, NPar).
func (f *Function) SetParameter(i int, v float64) error {
	if i < 0 || i >= f.npar {
		return ErrParameterIndex
	}
	f.par[i] = v

	return nil
}

// Parameter returns a single stored parameter value.
// Returns ErrParameterIndex if i is outside [0, NPar).
func (f *Function) Parameter(i int) (float64, error) {
	if i < 0 || i >= f.npar {
		return 0, ErrParameterIndex
	}

	return f.par[i], nil
}

// Parameters returns a copy of the stored parameter block.
func (f *Function) Parameters() []float64 {
	out := make([]float64, f.npar)
	copy(out, f.par)

	return out
}

// SetRange stores the display range.  The range is cosmetic: evaluation never
// clamps to it.
func (f *Function) SetRange(lo, hi float64) {
	f.lo, f.hi = lo, hi
}

// Range returns the stored display range.
func (f *Function) Range() (lo, hi float64) {
	return f.lo, f.hi
}
