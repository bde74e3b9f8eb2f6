package render_test

import (
	"fmt"

	"github.com/katalvlaran/specfit/curve"
	"github.com/katalvlaran/specfit/peakmodel"
	"github.com/katalvlaran/specfit/render"
	"github.com/katalvlaran/specfit/shape"
)

// printSurface is a minimal plotting collaborator that logs each draw.
type printSurface struct{}

func (printSurface) Draw(_ *curve.Function, lo, hi float64, attrs curve.LineAttributes, title string) {
	fmt.Printf("draw %q [%g, %g] %s\n", title, lo, hi, attrs.Style)
}

// ExampleRenderer draws the three standard overlays of a fitted model:
// the total, the isolated background, and the peak on a shared global
// background.
func ExampleRenderer() {
	m, err := peakmodel.New(shape.Gaussian{}, shape.Linear{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = m.SetParameters(1200, 661.66, 1.1, 40, -0.02)
	m.TotalFunction().SetRange(640, 680)

	global, err := curve.New(shape.Quadratic{}.Eval, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = global.SetParameters(45, -0.03, 0)
	global.SetRange(600, 700)
	m.SetGlobalBackground(global)

	r, err := render.NewRenderer(printSurface{}, render.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = r.DrawTotal(m)
	_ = r.DrawBackground(m)
	_ = r.DrawComposite(m)
	// Output:
	// draw "total" [640, 680] solid
	// draw "background" [640, 680] dashed
	// draw "peak on global background" [600, 700] solid
}
