// Package fit is the optimizer boundary of specfit: it turns a peak model
// plus measured (x, y) samples into the weighted least-squares objective an
// external nonlinear optimizer minimizes, and drives gonum's optimizers
// against it.
//
// The engine's contract with the solver is deliberately thin — evaluate and
// parameter count — so the solver's algorithm, step size and convergence
// tolerances all stay on gonum's side:
//
//	obj, _ := fit.NewObjective(m, samples)
//	problem := obj.Problem() // hand to any gonum optimize.Method
//
// or the convenience driver, which writes the minimizing parameters back
// into the model's total function when the solve succeeds:
//
//	res, err := fit.Fit(m, samples, fit.DefaultOptions())
//
// Missing derivatives are filled in by gonum with finite differences, so
// gradient-based methods work against the derivative-free model body.
package fit
