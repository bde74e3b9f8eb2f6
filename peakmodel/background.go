package peakmodel

import "github.com/katalvlaran/specfit/curve"

// BackgroundFunction returns the isolated-background display function:
// a Function with the same parameter count as the total function whose body
// evaluates only the background contribution.
//
// The first call constructs and caches it — dashed stroke, cosmetic [0, 1]
// range (the actual evaluation range always comes from the caller) — and
// every later call returns the identical cached instance.
// Returns ErrNotInitialized on an unconstructed model.
func (m *Model) BackgroundFunction() (*curve.Function, error) {
	if m == nil || m.total == nil {
		return nil, ErrNotInitialized
	}
	if m.bg == nil {
		f, err := curve.New(m.BackgroundEval, m.total.NPar())
		if err != nil {
			return nil, err
		}
		f.Line = m.total.Line
		f.Line.Style = curve.Dashed
		m.bg = f
	}

	return m.bg, nil
}

// UpdateBackgroundParameters copies the total function's current parameter
// values into the cached background function, so that a rendered background
// curve reflects the most recent fit.
//
// Returns ErrNotInitialized if BackgroundFunction was never called — a
// silent skip here would render stale or default parameters.
func (m *Model) UpdateBackgroundParameters() error {
	if m == nil || m.bg == nil {
		return ErrNotInitialized
	}

	return m.bg.SetParameters(m.total.Parameters()...)
}
