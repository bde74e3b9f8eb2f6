// Package shape: peak shapes.
//
// This file declares the Peak capability and the built-in peak shapes:
// Gaussian, SkewedGaussian and FixedCentroid.
package shape

import (
	"errors"
	"math"

	"github.com/katalvlaran/specfit/curve"
)

// Sentinel errors for shape construction.
var (
	// ErrNonPositiveSigma indicates a fixed width that is zero or negative.
	ErrNonPositiveSigma = errors.New("shape: sigma must be positive")
)

// sqrt2Pi is the Gaussian area normalization constant.
var sqrt2Pi = math.Sqrt(2 * math.Pi)

// Peak extends curve.Evaluable with the two quantities every fitted line is
// reported by: its centroid and its area at a given parameter set.
type Peak interface {
	curve.Evaluable

	// Centroid returns the peak position for the given parameters.
	Centroid(par []float64) float64

	// Area returns the integral of the peak shape for the given parameters.
	Area(par []float64) float64
}

// Gaussian is the standard 3-parameter photopeak shape.
//
// Parameter layout: [height, centroid, sigma].
type Gaussian struct{}

// Eval returns height * exp(-(x-centroid)^2 / (2 sigma^2)).
// A zero width contributes nothing (the limit of an infinitely narrow line
// sampled off-centroid).
func (Gaussian) Eval(x float64, par []float64) float64 {
	sigma := math.Abs(par[2])
	if sigma == 0 {
		return 0
	}
	d := (x - par[1]) / sigma

	return par[0] * math.Exp(-0.5*d*d)
}

// NPar returns 3.
func (Gaussian) NPar() int { return 3 }

// Centroid returns the centroid parameter.
func (Gaussian) Centroid(par []float64) float64 { return par[1] }

// Area returns height * sigma * sqrt(2*pi).
func (Gaussian) Area(par []float64) float64 {
	return par[0] * math.Abs(par[2]) * sqrt2Pi
}

// FWHM returns the full width at half maximum, 2*sqrt(2*ln 2)*sigma.
func (Gaussian) FWHM(par []float64) float64 {
	return 2 * math.Sqrt(2*math.Ln2) * math.Abs(par[2])
}

// SkewedGaussian is a Gaussian core with a low-side exponential tail, the
// usual shape for photopeaks with incomplete charge collection.
//
// Parameter layout: [height, centroid, sigma, beta, tailFraction], where
// beta is the tail decay constant and tailFraction in [0,1] is the share of
// the height carried by the tail term.
type SkewedGaussian struct{}

// Eval returns
//
//	height * ((1-R)*exp(-(x-c)^2/2s^2) + (R/2)*exp((x-c)/b)*erfc((x-c)/(s√2) + s/(b√2)))
//
// with s = |sigma| and b = |beta|.  A zero sigma or beta contributes nothing.
func (SkewedGaussian) Eval(x float64, par []float64) float64 {
	height, centroid := par[0], par[1]
	sigma, beta, frac := math.Abs(par[2]), math.Abs(par[3]), par[4]
	if sigma == 0 || beta == 0 {
		return 0
	}
	d := x - centroid
	g := math.Exp(-0.5 * (d / sigma) * (d / sigma))
	tail := math.Exp(d/beta) * math.Erfc(d/(sigma*math.Sqrt2)+sigma/(beta*math.Sqrt2))

	return height * ((1-frac)*g + 0.5*frac*tail)
}

// NPar returns 5.
func (SkewedGaussian) NPar() int { return 5 }

// Centroid returns the centroid parameter.
func (SkewedGaussian) Centroid(par []float64) float64 { return par[1] }

// Area numerically integrates the shape over centroid ± 10*(sigma+beta)
// using Simpson's rule.  The tail term has no convenient closed form.
func (s SkewedGaussian) Area(par []float64) float64 {
	sigma, beta := math.Abs(par[2]), math.Abs(par[3])
	span := 10 * (sigma + beta)

	return simpson(func(x float64) float64 { return s.Eval(x, par) }, par[1]-span, par[1]+span, 2000)
}

// FixedCentroid is a 1-parameter amplitude-only peak: a Gaussian whose
// centroid and width are frozen at construction.  Useful when the line
// position is known from calibration and only the intensity is fit.
//
// Parameter layout: [height].
type FixedCentroid struct {
	centroid float64
	sigma    float64
}

// NewFixedCentroid constructs a FixedCentroid peak at the given position and
// width.  Returns ErrNonPositiveSigma if sigma <= 0.
func NewFixedCentroid(centroid, sigma float64) (FixedCentroid, error) {
	if sigma <= 0 {
		return FixedCentroid{}, ErrNonPositiveSigma
	}

	return FixedCentroid{centroid: centroid, sigma: sigma}, nil
}

// Eval returns height * exp(-(x-centroid)^2 / (2 sigma^2)) with the frozen
// centroid and width.
func (p FixedCentroid) Eval(x float64, par []float64) float64 {
	d := (x - p.centroid) / p.sigma

	return par[0] * math.Exp(-0.5*d*d)
}

// NPar returns 1.
func (FixedCentroid) NPar() int { return 1 }

// Centroid returns the frozen centroid.
func (p FixedCentroid) Centroid([]float64) float64 { return p.centroid }

// Area returns height * sigma * sqrt(2*pi) with the frozen width.
func (p FixedCentroid) Area(par []float64) float64 {
	return par[0] * p.sigma * sqrt2Pi
}

// simpson integrates fn over [a, b] with n panels (n is rounded up to even).
func simpson(fn func(float64) float64, a, b float64, n int) float64 {
	if n%2 == 1 {
		n++
	}
	h := (b - a) / float64(n)
	sum := fn(a) + fn(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * fn(x)
		} else {
			sum += 2 * fn(x)
		}
	}

	return sum * h / 3
}
