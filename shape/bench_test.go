package shape_test

import (
	"testing"

	"github.com/katalvlaran/specfit/shape"
)

// benchmarkEval sweeps a shape across a window around x=50 to defeat
// constant folding while staying allocation-free.
func benchmarkEval(b *testing.B, e interface {
	Eval(x float64, par []float64) float64
}, par []float64) {
	var sink float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += e.Eval(45+float64(i%10), par)
	}
	_ = sink
}

// BenchmarkGaussian_Eval measures the plain photopeak body.
func BenchmarkGaussian_Eval(b *testing.B) {
	benchmarkEval(b, shape.Gaussian{}, []float64{100, 50, 2})
}

// BenchmarkSkewedGaussian_Eval measures the tailed photopeak body.
func BenchmarkSkewedGaussian_Eval(b *testing.B) {
	benchmarkEval(b, shape.SkewedGaussian{}, []float64{100, 50, 2, 3, 0.2})
}

// BenchmarkStep_Eval measures the Compton shelf body.
func BenchmarkStep_Eval(b *testing.B) {
	benchmarkEval(b, shape.Step{}, []float64{10, 50, 2})
}
