package render_test

import (
	"testing"

	"github.com/katalvlaran/specfit/curve"
	"github.com/katalvlaran/specfit/peakmodel"
	"github.com/katalvlaran/specfit/render"
	"github.com/katalvlaran/specfit/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawCall records one Surface.Draw invocation.
type drawCall struct {
	f     *curve.Function
	lo    float64
	hi    float64
	attrs curve.LineAttributes
	title string
}

// fakeSurface is a recording Surface for assertions.
type fakeSurface struct {
	calls []drawCall
}

func (s *fakeSurface) Draw(f *curve.Function, lo, hi float64, attrs curve.LineAttributes, title string) {
	s.calls = append(s.calls, drawCall{f: f, lo: lo, hi: hi, attrs: attrs, title: title})
}

// fakeRunInfo is a stub run-metadata collaborator.
type fakeRunInfo struct{}

func (fakeRunInfo) RunNumber() int          { return 29038 }
func (fakeRunInfo) SubRunNumber() int       { return 3 }
func (fakeRunInfo) CalibrationFile() string { return "cal.cal" }

// newFittedModel builds a fixed-centroid-on-linear model with fitted
// parameters [A=10, b0=2, b1=0.5] and display range [0, 10].
func newFittedModel(t *testing.T) *peakmodel.Model {
	t.Helper()

	peak, err := shape.NewFixedCentroid(3, 1)
	require.NoError(t, err)
	m, err := peakmodel.New(peak, shape.Linear{})
	require.NoError(t, err)
	require.NoError(t, m.SetParameters(10, 2, 0.5))
	m.TotalFunction().SetRange(0, 10)

	return m
}

// TestNewRenderer_NilSurface verifies the surface is mandatory.
func TestNewRenderer_NilSurface(t *testing.T) {
	_, err := render.NewRenderer(nil, render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrNilSurface)
}

// TestDrawTotal verifies the total curve is drawn over its own range with
// its own cosmetics.
func TestDrawTotal(t *testing.T) {
	surf := &fakeSurface{}
	r, err := render.NewRenderer(surf, render.DefaultOptions())
	require.NoError(t, err)

	m := newFittedModel(t)
	require.NoError(t, r.DrawTotal(m))

	require.Len(t, surf.calls, 1, "exactly one draw")
	call := surf.calls[0]
	assert.Same(t, m.TotalFunction(), call.f, "the total function itself is handed over")
	assert.Equal(t, 0.0, call.lo)
	assert.Equal(t, 10.0, call.hi)
	assert.Equal(t, curve.Solid, call.attrs.Style, "total draws solid")
	assert.Equal(t, "total", call.title)

	var zero peakmodel.Model
	assert.ErrorIs(t, r.DrawTotal(&zero), peakmodel.ErrNotInitialized, "unconstructed model cannot be drawn")
}

// TestDrawBackground verifies lazy construction, parameter refresh and the
// dashed overlay.
func TestDrawBackground(t *testing.T) {
	surf := &fakeSurface{}
	r, err := render.NewRenderer(surf, render.DefaultOptions())
	require.NoError(t, err)

	m := newFittedModel(t)
	require.NoError(t, r.DrawBackground(m))

	require.Len(t, surf.calls, 1)
	call := surf.calls[0]
	assert.Equal(t, curve.Dashed, call.attrs.Style, "background draws dashed")
	assert.Equal(t, 0.0, call.lo, "background spans the total's range")
	assert.Equal(t, 10.0, call.hi)
	assert.Equal(t, 3.5, call.f.EvalAt(3), "drawn background reflects the fitted parameters")

	// A later fit update is picked up by the next draw.
	require.NoError(t, m.SetParameters(10, 4, 0.5))
	require.NoError(t, r.DrawBackground(m))
	assert.Equal(t, 5.5, surf.calls[1].f.EvalAt(3), "refresh precedes every draw")
}

// TestDrawComposite_NoGlobal verifies the silent no-op contract.
func TestDrawComposite_NoGlobal(t *testing.T) {
	surf := &fakeSurface{}
	r, err := render.NewRenderer(surf, render.DefaultOptions())
	require.NoError(t, err)

	m := newFittedModel(t)
	require.NoError(t, r.DrawComposite(m), "no global background means no error")
	assert.Empty(t, surf.calls, "and no draw either")
}

// TestDrawComposite verifies range, parameter concatenation, cosmetics and
// the unretained temporary overlay.
func TestDrawComposite(t *testing.T) {
	surf := &fakeSurface{}
	r, err := render.NewRenderer(surf, render.DefaultOptions())
	require.NoError(t, err)

	m := newFittedModel(t)

	g, err := curve.New(shape.Linear{}.Eval, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetParameters(1, 1))
	g.SetRange(2, 8)
	m.SetGlobalBackground(g)

	require.NoError(t, r.DrawComposite(m))
	require.Len(t, surf.calls, 1)
	call := surf.calls[0]

	assert.Equal(t, 2.0, call.lo, "composite range comes from the global background")
	assert.Equal(t, 8.0, call.hi)
	assert.Equal(t, []float64{10, 2, 0.5, 1, 1}, call.f.Parameters(),
		"first N values from the total, next M from the global, order preserved")
	assert.Equal(t, m.TotalFunction().Line, call.attrs, "cosmetics copied from the total")
	assert.Equal(t, 14.0, call.f.EvalAt(3), "peak(3) + global(3) = 10 + 4")

	// Each render reconstructs the overlay from current state.
	require.NoError(t, r.DrawComposite(m))
	assert.NotSame(t, surf.calls[0].f, surf.calls[1].f, "composites carry no retained identity")
}

// TestTitle verifies title composition with and without run metadata.
func TestTitle(t *testing.T) {
	assert.Equal(t, "fit", render.Title("fit", nil))
	assert.Equal(t, "run 29038/003 [cal.cal]", render.Title("", fakeRunInfo{}))
	assert.Equal(t, "fit, run 29038/003 [cal.cal]", render.Title("fit", fakeRunInfo{}))
}

// TestRenderer_TitledDraws verifies the configured prefix and run metadata
// reach the surface.
func TestRenderer_TitledDraws(t *testing.T) {
	surf := &fakeSurface{}
	r, err := render.NewRenderer(surf, render.Options{Title: "137Cs", Info: fakeRunInfo{}})
	require.NoError(t, err)

	m := newFittedModel(t)
	require.NoError(t, r.DrawTotal(m))
	assert.Equal(t, "137Cs total, run 29038/003 [cal.cal]", surf.calls[0].title)
}

// TestSampleCurve verifies span, values and validation.
func TestSampleCurve(t *testing.T) {
	_, _, err := render.SampleCurve(nil, 10)
	assert.ErrorIs(t, err, render.ErrNilCurve)

	f, err := curve.New(shape.Linear{}.Eval, 2)
	require.NoError(t, err)
	require.NoError(t, f.SetParameters(2, 0.5))
	f.SetRange(0, 10)

	_, _, err = render.SampleCurve(f, 1)
	assert.ErrorIs(t, err, render.ErrBadPointCount)

	xs, ys, err := render.SampleCurve(f, 11)
	require.NoError(t, err)
	require.Len(t, xs, 11)
	require.Len(t, ys, 11)
	assert.Equal(t, 0.0, xs[0], "span starts at the range low")
	assert.Equal(t, 10.0, xs[10], "span ends at the range high")
	assert.Equal(t, 2.0, ys[0], "f(0)")
	assert.Equal(t, 7.0, ys[10], "f(10)")
	assert.InDelta(t, 4.5, ys[5], 1e-12, "f(5)")
}
