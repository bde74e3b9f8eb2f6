// Package shape: background shapes.
//
// This file declares the built-in continuum shapes: Flat, Linear, Quadratic
// and Step.
package shape

import "math"

// Flat is a constant continuum.
//
// Parameter layout: [b0].
type Flat struct{}

// Eval returns b0.
func (Flat) Eval(_ float64, par []float64) float64 { return par[0] }

// NPar returns 1.
func (Flat) NPar() int { return 1 }

// Linear is a first-order continuum.
//
// Parameter layout: [b0, b1].
type Linear struct{}

// Eval returns b0 + b1*x.
func (Linear) Eval(x float64, par []float64) float64 { return par[0] + par[1]*x }

// NPar returns 2.
func (Linear) NPar() int { return 2 }

// Quadratic is a second-order continuum.
//
// Parameter layout: [b0, b1, b2].
type Quadratic struct{}

// Eval returns b0 + b1*x + b2*x^2.
func (Quadratic) Eval(x float64, par []float64) float64 {
	return par[0] + x*(par[1]+x*par[2])
}

// NPar returns 3.
func (Quadratic) NPar() int { return 3 }

// Step is a smoothed step under a peak, modeling the Compton shelf on the
// low-energy side of a photopeak.  The transition is centered on the peak
// centroid and shares its width.
//
// Parameter layout: [stepHeight, centroid, sigma].
type Step struct{}

// Eval returns (stepHeight/2) * erfc((x-centroid) / (sigma*sqrt(2))) with
// sigma evaluated through |sigma|.  A zero width degenerates to a sharp step.
func (Step) Eval(x float64, par []float64) float64 {
	sigma := math.Abs(par[2])
	if sigma == 0 {
		if x < par[1] {
			return par[0]
		}

		return 0
	}

	return 0.5 * par[0] * math.Erfc((x-par[1])/(sigma*math.Sqrt2))
}

// NPar returns 3.
func (Step) NPar() int { return 3 }
