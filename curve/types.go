// Package curve: shared types for evaluable functions and their cosmetics.
//
// This file declares the Evaluable capability, line-style cosmetics, and the
// sentinel errors used across the package.
package curve

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
)

// Sentinel errors for curve operations.
var (
	// ErrNilBody indicates a Function was constructed without an evaluation body.
	ErrNilBody = errors.New("curve: function body is nil")

	// ErrBadParameterCount indicates a non-positive parameter count at construction.
	ErrBadParameterCount = errors.New("curve: parameter count must be positive")

	// ErrParameterCount indicates a parameter vector whose length does not match NPar.
	ErrParameterCount = errors.New("curve: parameter vector length mismatch")

	// ErrParameterIndex indicates a parameter index outside [0, NPar).
	ErrParameterIndex = errors.New("curve: parameter index out of range")
)

// Evaluable is the minimal capability every model component implements:
// a pure function of the independent variable x and a flat parameter vector.
//
// Implementations must be side-effect-free; Eval may be called millions of
// times per fit and must not allocate.  NPar reports how many leading entries
// of par the implementation reads.
type Evaluable interface {
	// Eval returns the amplitude contribution at x for the given parameters.
	Eval(x float64, par []float64) float64

	// NPar returns the number of parameters the shape consumes.
	NPar() int
}

// LineStyle enumerates the cosmetic stroke styles a plotting surface may honor.
type LineStyle int

const (
	// Solid is the default stroke.
	Solid LineStyle = iota

	// Dashed is the conventional style for isolated background overlays.
	Dashed

	// Dotted stroke.
	Dotted

	// DashDotted stroke.
	DashDotted
)

// String returns the human-readable name of the style.
func (s LineStyle) String() string {
	switch s {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	case DashDotted:
		return "dash-dotted"
	default:
		return "unknown"
	}
}

// LineAttributes carries the cosmetic draw attributes of a curve.
// They are metadata for the external plotting surface; evaluation ignores them.
type LineAttributes struct {
	// Color is the stroke color.
	Color colorful.Color

	// Style is the stroke style.
	Style LineStyle

	// Width is the stroke width in surface units; 0 means surface default.
	Width float64
}

// DefaultLineAttributes returns a solid red stroke of default width,
// the conventional cosmetics for a fitted total curve.
func DefaultLineAttributes() LineAttributes {
	return LineAttributes{
		Color: colorful.Color{R: 0.84, G: 0.16, B: 0.16},
		Style: Solid,
	}
}
