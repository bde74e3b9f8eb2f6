// Package render: collaborator interfaces, options and sentinel errors.
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/specfit/curve"
)

// Sentinel errors for renderer construction and sampling.
var (
	// ErrNilSurface indicates a Renderer was constructed without a surface.
	ErrNilSurface = errors.New("render: surface must not be nil")

	// ErrNilCurve indicates sampling was requested on a nil function.
	ErrNilCurve = errors.New("render: curve must not be nil")

	// ErrBadPointCount indicates a sample request with fewer than two points.
	ErrBadPointCount = errors.New("render: need at least two sample points")
)

// Surface is the external plotting collaborator.  It accepts a prepared
// evaluable curve, an x range, cosmetic line attributes and a display title,
// and draws — the engine never touches pixels.
//
// The curve handed to Draw is exclusively owned by that call; surfaces must
// not retain it past the call.
type Surface interface {
	Draw(f *curve.Function, lo, hi float64, attrs curve.LineAttributes, title string)
}

// RunInfo is the run-metadata collaborator: contextual labels consumed for
// display titles only.
type RunInfo interface {
	// RunNumber returns the acquisition run number.
	RunNumber() int

	// SubRunNumber returns the sub-run within the run.
	SubRunNumber() int

	// CalibrationFile returns the identity of the calibration applied.
	CalibrationFile() string
}

// Options configures a Renderer.
//
// Fields:
//   - Title — a free-form prefix prepended to every drawn curve's title.
//   - Info  — optional run metadata appended to the title; nil omits it.
type Options struct {
	Title string
	Info  RunInfo
}

// DefaultOptions returns an empty title and no run metadata.
func DefaultOptions() Options {
	return Options{}
}

// Title composes the display title from a prefix and optional run metadata,
// e.g. "fit, run 29038/003 [cal.cal]".
func Title(prefix string, info RunInfo) string {
	if info == nil {
		return prefix
	}
	if prefix == "" {
		return fmt.Sprintf("run %d/%03d [%s]", info.RunNumber(), info.SubRunNumber(), info.CalibrationFile())
	}

	return fmt.Sprintf("%s, run %d/%03d [%s]", prefix, info.RunNumber(), info.SubRunNumber(), info.CalibrationFile())
}
