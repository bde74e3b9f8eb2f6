package peakmodel

import (
	"github.com/katalvlaran/specfit/curve"
)

// peakReporter is the optional capability of peak shapes that report their
// centroid and area (shape.Peak satisfies it).
type peakReporter interface {
	Centroid(par []float64) float64
	Area(par []float64) float64
}

// Model composes a peak shape and a background shape into one total function
// over a flat parameter vector, and owns the classification that maps each
// flat index to its role.
//
// The zero value is an unconstructed model: NParameters reports 0 and every
// classification fails with ErrIndexOutOfRange.  Use New.
type Model struct {
	peak       curve.Evaluable
	background curve.Evaluable

	// roles classifies every index of the total parameter vector.
	roles []Role

	// peakIdx / bgIdx map compact shape-parameter slots to flat indices.
	peakIdx []int
	bgIdx   []int

	// scratch buffers for subset gathering; evaluation must not allocate.
	peakBuf []float64
	bgBuf   []float64

	// total holds the current fitted parameters and the fit-curve cosmetics.
	total *curve.Function

	// bg is the lazily built, cached isolated-background display function.
	bg *curve.Function

	// global is a non-owning reference to a shared background; globalNPar
	// records its parameter count as seen at attach time.
	global     *curve.Function
	globalNPar int
}

// New constructs a Model from a peak shape and a background shape.
//
// The default parameter layout places the peak's parameters at [0, p) and
// the background's at [p, N); WithLayout interleaves them differently.
// Returns ErrNilShape on a nil shape and ErrLayoutMismatch on a custom
// layout that disagrees with the shape arities.
func New(peak, background curve.Evaluable, opts ...Option) (*Model, error) {
	if peak == nil || background == nil {
		return nil, ErrNilShape
	}

	p, q := peak.NPar(), background.NPar()
	n := p + q

	m := &Model{
		peak:       peak,
		background: background,
		peakBuf:    make([]float64, p),
		bgBuf:      make([]float64, q),
	}
	for _, opt := range opts {
		opt(m)
	}

	// Default layout: peak parameters first, background parameters after.
	if m.roles == nil {
		m.roles = make([]Role, n)
		for i := p; i < n; i++ {
			m.roles[i] = Background
		}
	}
	if len(m.roles) != n {
		return nil, ErrLayoutMismatch
	}
	for i, r := range m.roles {
		switch r {
		case Peak:
			m.peakIdx = append(m.peakIdx, i)
		case Background:
			m.bgIdx = append(m.bgIdx, i)
		default:
			return nil, ErrLayoutMismatch
		}
	}
	if len(m.peakIdx) != p || len(m.bgIdx) != q {
		return nil, ErrLayoutMismatch
	}

	total, err := curve.New(m.Eval, n)
	if err != nil {
		return nil, err
	}
	m.total = total

	return m, nil
}

// NParameters returns the total function's parameter count N, or 0 when the
// model was never constructed.  Callers must check for the 0 sentinel before
// sizing a parameter vector off it.
func (m *Model) NParameters() int {
	if m == nil || m.total == nil {
		return 0
	}

	return m.total.NPar()
}

// Classify reports the role of flat parameter index i.
// Returns ErrIndexOutOfRange for i outside [0, NParameters).
func (m *Model) Classify(i int) (Role, error) {
	if m == nil || i < 0 || i >= len(m.roles) {
		return 0, ErrIndexOutOfRange
	}

	return m.roles[i], nil
}

// IsBackgroundParameter reports whether flat index i belongs to the
// background shape.  Returns ErrIndexOutOfRange for invalid indices —
// never a default classification.
func (m *Model) IsBackgroundParameter(i int) (bool, error) {
	r, err := m.Classify(i)
	if err != nil {
		return false, err
	}

	return r == Background, nil
}

// IsPeakParameter is the exact logical negation of IsBackgroundParameter and
// fails with the same error for the same invalid indices.
func (m *Model) IsPeakParameter(i int) (bool, error) {
	bg, err := m.IsBackgroundParameter(i)
	if err != nil {
		return false, err
	}

	return !bg, nil
}

// PeakEval evaluates the peak contribution alone at x.  par is the full
// N-length vector; only the indices classified Peak are read.
func (m *Model) PeakEval(x float64, par []float64) float64 {
	for k, i := range m.peakIdx {
		m.peakBuf[k] = par[i]
	}

	return m.peak.Eval(x, m.peakBuf)
}

// BackgroundEval evaluates the background contribution alone at x.  par is
// the full N-length vector; only the indices classified Background are read.
func (m *Model) BackgroundEval(x float64, par []float64) float64 {
	for k, i := range m.bgIdx {
		m.bgBuf[k] = par[i]
	}

	return m.background.Eval(x, m.bgBuf)
}

// Eval is the total function the external optimizer fits against:
// exactly PeakEval(x, par) + BackgroundEval(x, par), no cross term.
func (m *Model) Eval(x float64, par []float64) float64 {
	return m.PeakEval(x, par) + m.BackgroundEval(x, par)
}

// TotalFunction returns the optimizer-facing function object holding the
// current fitted parameters and the fit-curve cosmetics.  Nil on an
// unconstructed model.
func (m *Model) TotalFunction() *curve.Function {
	if m == nil {
		return nil
	}

	return m.total
}

// SetParameters stores fitted values into the total function.
// Exactly NParameters values are required.
func (m *Model) SetParameters(par ...float64) error {
	if m == nil || m.total == nil {
		return ErrNotInitialized
	}

	return m.total.SetParameters(par...)
}

// Parameters returns a copy of the total function's current parameter values,
// or nil on an unconstructed model.
func (m *Model) Parameters() []float64 {
	if m == nil || m.total == nil {
		return nil
	}

	return m.total.Parameters()
}

// Centroid reports the peak position at the current fitted parameters.
// Returns ErrNoPeakReport when the peak shape has no centroid notion.
func (m *Model) Centroid() (float64, error) {
	rep, ok := m.peak.(peakReporter)
	if !ok {
		return 0, ErrNoPeakReport
	}
	m.gatherPeak()

	return rep.Centroid(m.peakBuf), nil
}

// Area reports the peak integral at the current fitted parameters.
// Returns ErrNoPeakReport when the peak shape has no area notion.
func (m *Model) Area() (float64, error) {
	rep, ok := m.peak.(peakReporter)
	if !ok {
		return 0, ErrNoPeakReport
	}
	m.gatherPeak()

	return rep.Area(m.peakBuf), nil
}

// gatherPeak loads the peak subset of the current fitted parameters into the
// scratch buffer.
func (m *Model) gatherPeak() {
	par := m.total.Parameters()
	for k, i := range m.peakIdx {
		m.peakBuf[k] = par[i]
	}
}
