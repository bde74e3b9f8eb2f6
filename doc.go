// Package specfit models measured energy spectra as parametric peak shapes
// on smooth backgrounds, and composes them into the evaluable functions an
// external nonlinear optimizer fits and a plotting surface draws.
//
// 🚀 What is specfit?
//
//	A small, fast library for gamma-ray (and similar) spectroscopy fitting:
//		• Shapes: Gaussian & skewed-Gaussian peaks; flat, linear,
//		  quadratic and step backgrounds
//		• Composition: total = peak + background over one flat parameter
//		  vector, with total, mutually-exclusive index classification
//		• Shared backgrounds: an externally owned global background spanning
//		  several peaks, composed over a concatenated parameter vector
//		• Overlays: total, isolated background and peak-on-global curves,
//		  rebuilt from current fit state on every draw
//		• Fitting: a thin least-squares boundary onto gonum's optimizers
//
// ✨ Why choose specfit?
//
//   - Precise bookkeeping – every parameter index maps to exactly one role;
//     invalid indices are errors, never silent defaults
//   - Fit-loop friendly – pure, allocation-free evaluation bodies
//   - Extensible – any type with Eval(x, par) + NPar() plugs in as a shape
//
// Everything is organized under five subpackages:
//
//	curve/     — evaluable Function objects, parameter blocks, line cosmetics
//	shape/     — peak & background shape implementations
//	peakmodel/ — classification, composition, global-background linkage
//	render/    — overlay preparation for an external plotting surface
//	fit/       — weighted least-squares boundary onto gonum/optimize
//
// Quick ASCII example:
//
//	counts
//	  │        ╭╮
//	  │       ╱  ╲        total = peak + background
//	  │ ─────╱    ╲──────
//	  └──────────────────── energy
//
// Dive into the per-package doc.go files for contracts, error taxonomies
// and runnable examples.
//
//	go get github.com/katalvlaran/specfit
package specfit
