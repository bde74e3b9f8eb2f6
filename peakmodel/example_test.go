package peakmodel_test

import (
	"fmt"

	"github.com/katalvlaran/specfit/peakmodel"
	"github.com/katalvlaran/specfit/shape"
)

// //////////////////////////////////////////////////////////////////////////////
// Example_gaussianOnLinear
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 137Cs photopeak modeled as a Gaussian on a linear continuum.
//	Flat parameter vector (peak first, background after):
//	  [height, centroid, sigma, b0, b1]
//
// The optimizer has already fit the vector; here we store it, query the
// classification, and read the decomposed amplitudes at the line position.
func Example_gaussianOnLinear() {
	m, err := peakmodel.New(shape.Gaussian{}, shape.Linear{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = m.SetParameters(1200, 661.66, 1.1, 40, -0.02); err != nil {
		fmt.Println("error:", err)

		return
	}

	role0, _ := m.Classify(0)
	role3, _ := m.Classify(3)
	fmt.Printf("N=%d role[0]=%s role[3]=%s\n", m.NParameters(), role0, role3)

	par := m.Parameters()
	x := 661.66
	fmt.Printf("peak=%.2f background=%.2f total=%.2f\n",
		m.PeakEval(x, par), m.BackgroundEval(x, par), m.Eval(x, par))

	bg, _ := m.BackgroundFunction()
	fmt.Printf("background overlay: npar=%d style=%s\n", bg.NPar(), bg.Line.Style)
	// Output:
	// N=5 role[0]=peak role[3]=background
	// peak=1200.00 background=26.77 total=1226.77
	// background overlay: npar=5 style=dashed
}
