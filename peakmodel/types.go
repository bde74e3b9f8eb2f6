// Package peakmodel: roles, options and sentinel errors.
package peakmodel

import "errors"

// Sentinel errors for model construction, classification and composition.
var (
	// ErrNilShape indicates a nil peak or background shape at construction.
	ErrNilShape = errors.New("peakmodel: shape must not be nil")

	// ErrIndexOutOfRange indicates a parameter index outside [0, NParameters).
	ErrIndexOutOfRange = errors.New("peakmodel: parameter index out of range")

	// ErrNotInitialized indicates an operation whose prerequisite construction
	// step has not happened (e.g. the background function was never built, or
	// no global background is attached).
	ErrNotInitialized = errors.New("peakmodel: prerequisite not initialized")

	// ErrMisconfigured indicates a peak-on-global composition whose declared
	// parameter count does not match local N + global M.
	ErrMisconfigured = errors.New("peakmodel: composed parameter count mismatch")

	// ErrLayoutMismatch indicates a custom layout whose length or role counts
	// disagree with the shape arities.
	ErrLayoutMismatch = errors.New("peakmodel: layout does not match shape arities")

	// ErrNoPeakReport indicates the peak shape does not report centroid/area.
	ErrNoPeakReport = errors.New("peakmodel: peak shape reports no centroid/area")
)

// Role classifies a single parameter index of the total function.
type Role int

const (
	// Peak marks a parameter consumed by the peak shape.
	Peak Role = iota

	// Background marks a parameter consumed by the background shape.
	Background
)

// String returns the human-readable role name.
func (r Role) String() string {
	switch r {
	case Peak:
		return "peak"
	case Background:
		return "background"
	default:
		return "unknown"
	}
}

// Option configures a Model before construction completes.
type Option func(m *Model)

// WithLayout overrides the default peak-first parameter layout with an
// explicit role per index.  The layout must contain exactly as many Peak
// roles as the peak shape consumes and as many Background roles as the
// background shape consumes, in any order; New fails with ErrLayoutMismatch
// otherwise.
func WithLayout(roles ...Role) Option {
	return func(m *Model) {
		m.roles = append([]Role(nil), roles...)
	}
}
