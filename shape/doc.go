// Package shape provides the built-in peak and background shapes used to
// assemble spectral models: Gaussian and skewed-Gaussian peaks, and flat,
// linear, quadratic and step backgrounds.
//
// 🚀 What is shape?
//
//	A spectral model is "some peak shape sitting on some background shape".
//	Both sides are expressed as implementations of curve.Evaluable — a pure
//	function of x and a compact parameter subset — selected at construction
//	time instead of through an inheritance chain:
//	  • Peaks:       Gaussian, SkewedGaussian, FixedCentroid
//	  • Backgrounds: Flat, Linear, Quadratic, Step
//
// ✨ Key properties:
//   - every shape documents its exact parameter layout (order matters —
//     the flat fit vector is the contract with the optimizer)
//   - peak shapes additionally implement Peak, exposing Centroid and Area
//     at a given parameter set
//   - width parameters are evaluated through |sigma|, so an optimizer
//     wandering through negative widths never produces NaNs
//
// ⚙️ Usage:
//
//	peak := shape.Gaussian{}                  // par: [height, centroid, sigma]
//	bg := shape.Linear{}                      // par: [b0, b1]
//	y := peak.Eval(661.7, []float64{1200, 661.66, 1.1})
//
// See example_test.go for a full peak-plus-background composition.
package shape
