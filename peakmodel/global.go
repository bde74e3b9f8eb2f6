package peakmodel

import "github.com/katalvlaran/specfit/curve"

// SetGlobalBackground attaches a shared, externally owned background
// function.  The model records the global's parameter count M as seen now;
// the concatenated peak-on-global vector is then [0, N+M) with the global
// reading the trailing M entries.
//
// Passing nil detaches.  The model never frees or mutates the global — it
// may be shared by several models and must outlive them all.
func (m *Model) SetGlobalBackground(g *curve.Function) {
	m.global = g
	if g == nil {
		m.globalNPar = 0

		return
	}
	m.globalNPar = g.NPar()
}

// GlobalBackground returns the attached shared background, or nil.
func (m *Model) GlobalBackground() *curve.Function {
	if m == nil {
		return nil
	}

	return m.global
}

// PeakOnGlobalEval evaluates the peak contribution plus the shared global
// background over the concatenated parameter vector: the local N entries
// first, the global's M entries after.
//
// With no global attached it returns exactly 0 — a defined neutral value the
// renderer can treat as a drawable degenerate case.
func (m *Model) PeakOnGlobalEval(x float64, par []float64) float64 {
	if m.global == nil {
		return 0
	}

	return m.PeakEval(x, par) + m.global.Eval(x, par[m.total.NPar():])
}

// ComposeOnGlobal builds a fresh display function over the concatenated
// vector, validating the caller-declared parameter count against local N +
// global M.
//
// Returns ErrNotInitialized with no global attached, and ErrMisconfigured
// when npar differs from N+M (or the attached global's count changed since
// attach time).
func (m *Model) ComposeOnGlobal(npar int) (*curve.Function, error) {
	if m == nil || m.total == nil || m.global == nil {
		return nil, ErrNotInitialized
	}
	if m.global.NPar() != m.globalNPar || npar != m.total.NPar()+m.globalNPar {
		return nil, ErrMisconfigured
	}

	return curve.New(m.PeakOnGlobalEval, npar)
}

// PeakOnGlobalFunction builds the peak-on-global display function with the
// count the engine derives itself: N + M queried from the attached global.
func (m *Model) PeakOnGlobalFunction() (*curve.Function, error) {
	if m == nil || m.total == nil || m.global == nil {
		return nil, ErrNotInitialized
	}

	return m.ComposeOnGlobal(m.total.NPar() + m.globalNPar)
}
