// Package render prepares overlay curves from a fitted peak model — the
// total fit, the isolated background, and the peak riding a shared global
// background — and hands them to an external plotting surface.
//
// The renderer never touches pixels and never mutates model state beyond the
// documented background-parameter refresh: every call reads the current
// fitted parameters, synthesizes display-only function objects on demand,
// draws them, and discards them.  Because each call reconstructs its curves
// from current state, the renderer cannot go stale as long as it runs after
// each parameter update.
//
// Collaborator boundaries:
//   - Surface     — the external plotting surface: receives an evaluable
//     curve, a range, line cosmetics and a title
//   - RunInfo     — run-level metadata (run number, calibration file) used
//     for display titles only; the math core never reads it
//
// Usage:
//
//	r, err := render.NewRenderer(mySurface, render.DefaultOptions())
//	_ = r.DrawTotal(m)
//	_ = r.DrawBackground(m)
//	_ = r.DrawComposite(m) // silent no-op without a global background
package render
