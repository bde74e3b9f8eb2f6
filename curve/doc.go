// Package curve defines the evaluable-function primitives shared by all
// specfit packages: the Evaluable capability, the parameterized Function
// object, and cosmetic line attributes for plotting surfaces.
//
// 🚀 What is curve?
//
//	Every model component in specfit — peak shapes, background shapes,
//	composed totals, display-only overlays — is "a function of an
//	independent variable x and a flat parameter vector".  curve captures
//	exactly that:
//	  • Evaluable    — the minimal capability: Eval(x, par) + NPar()
//	  • Function     — an Evaluable bound to its own parameter block,
//	                   display range and line cosmetics
//	  • LineAttributes — color / style / width handed to a plotting surface
//
// ✨ Key properties:
//   - Function's parameter count is fixed at construction and authoritative
//   - SetParameters / SetParameter validate lengths and indices with
//     sentinel errors (ErrParameterCount, ErrParameterIndex)
//   - the stored display range is cosmetic metadata only — Eval and EvalAt
//     never clamp or reject x outside of it
//   - evaluation is pure: no locks, no allocation, safe for tight fit loops
//
// ⚙️ Usage:
//
//	body := func(x float64, par []float64) float64 { return par[0] + par[1]*x }
//	f, err := curve.New(body, 2)
//	if err != nil { ... }
//	_ = f.SetParameters(2, 0.5)
//	y := f.EvalAt(3) // 3.5
//
// See example_test.go for runnable examples.
package curve
