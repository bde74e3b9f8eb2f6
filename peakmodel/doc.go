// Package peakmodel composes parametric peak and background shapes into the
// single evaluable model an external nonlinear optimizer fits against a
// measured energy spectrum.
//
// 🚀 What is peakmodel?
//
//	A fitted spectral line is a sum of two independently defined pieces —
//	a peak shape and a background shape — evaluated over one flat parameter
//	vector.  peakmodel owns the bookkeeping that makes this composition
//	bug-free:
//	  • Parameter classification — every index in [0, N) is exactly one of
//	    Peak or Background; out-of-range indices are errors, never a silent
//	    default
//	  • Total composition — Eval(x, par) is exactly
//	    PeakEval(x, par) + BackgroundEval(x, par), no cross term
//	  • Lazy background function — an isolated, dashed display curve built
//	    at most once and cached for the model's lifetime
//	  • Global background linkage — an externally owned, shared background
//	    whose M parameters are appended after the local N; the model never
//	    frees it
//	  • Peak-on-global composition — the display curve of a peak riding a
//	    shared background, evaluated over the concatenated [0, N+M) vector
//
// ✨ Guarantees:
//   - IsPeakParameter(i) == !IsBackgroundParameter(i) for every valid i,
//     and both fail identically (ErrIndexOutOfRange) for invalid i
//   - NParameters() returns 0 on an unconstructed model, the fixed N
//     otherwise — callers size optimizer vectors off this value
//   - BackgroundFunction() is identity-stable: every call returns the same
//     cached instance
//   - PeakOnGlobalEval returns exactly 0 while no global background is
//     attached — a drawable degenerate case, not an error
//
// ⚙️ Usage:
//
//	m, err := peakmodel.New(shape.Gaussian{}, shape.Linear{})
//	// layout: [height, centroid, sigma, b0, b1] — peak first, background after
//	y := m.Eval(661.66, []float64{1200, 661.66, 1.1, 40, -0.02})
//
// Concurrency: evaluation is pure but the model reuses internal scratch
// buffers, so a single Model must not be evaluated from multiple goroutines.
// A shared global background Function may be read by many models at once as
// long as nobody mutates its parameters mid-fit; the package provides no
// locking.  Construct BackgroundFunction() during single-threaded setup if
// worker goroutines will render afterwards.
//
// See example_test.go for the full fit-then-render flow.
package peakmodel
