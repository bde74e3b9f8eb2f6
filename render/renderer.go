package render

import (
	"github.com/katalvlaran/specfit/peakmodel"
)

// Renderer draws overlay curves from fitted models onto a Surface.
// It holds no per-model state: every Draw call reads current model state and
// releases whatever it builds.
type Renderer struct {
	surface Surface
	opts    Options
}

// NewRenderer constructs a Renderer over the given surface.
// Returns ErrNilSurface if surface is nil.
func NewRenderer(surface Surface, opts Options) (*Renderer, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}

	return &Renderer{surface: surface, opts: opts}, nil
}

// DrawTotal draws the fitted total function over its own display range with
// its own cosmetics.
func (r *Renderer) DrawTotal(m *peakmodel.Model) error {
	total := m.TotalFunction()
	if total == nil {
		return peakmodel.ErrNotInitialized
	}
	lo, hi := total.Range()
	r.surface.Draw(total, lo, hi, total.Line, r.title("total"))

	return nil
}

// DrawBackground refreshes the cached background function from the current
// fitted parameters and draws it, dashed, over the total function's range.
// Building the background function on first use is part of the contract.
func (r *Renderer) DrawBackground(m *peakmodel.Model) error {
	bg, err := m.BackgroundFunction()
	if err != nil {
		return err
	}
	if err = m.UpdateBackgroundParameters(); err != nil {
		return err
	}

	lo, hi := m.TotalFunction().Range()
	r.surface.Draw(bg, lo, hi, bg.Line, r.title("background"))

	return nil
}

// DrawComposite draws the peak sitting on the shared global background.
//
// With no global background attached this is a silent no-op: there is
// nothing meaningful to overlay beyond the already-rendered total.
// Otherwise the composite's range comes from the global background, a
// temporary function over the concatenated [0, N+M) vector is built, the
// first N parameter values are copied from the total function and the next
// M from the global (order preserved), the total's cosmetics are copied
// onto the overlay, and the overlay is drawn and released.
func (r *Renderer) DrawComposite(m *peakmodel.Model) error {
	global := m.GlobalBackground()
	if global == nil {
		return nil
	}

	tmp, err := m.PeakOnGlobalFunction()
	if err != nil {
		return err
	}

	total := m.TotalFunction()
	n := total.NPar()
	for i, v := range total.Parameters() {
		if err = tmp.SetParameter(i, v); err != nil {
			return err
		}
	}
	for i, v := range global.Parameters() {
		if err = tmp.SetParameter(n+i, v); err != nil {
			return err
		}
	}

	tmp.Line = total.Line

	lo, hi := global.Range()
	tmp.SetRange(lo, hi)
	r.surface.Draw(tmp, lo, hi, tmp.Line, r.title("peak on global background"))

	// tmp goes out of scope here; composites carry no retained identity.
	return nil
}

// title prefixes the per-curve label with the configured title and run
// metadata.
func (r *Renderer) title(kind string) string {
	prefix := r.opts.Title
	if prefix == "" {
		prefix = kind
	} else {
		prefix = prefix + " " + kind
	}

	return Title(prefix, r.opts.Info)
}
