package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// naiveLagrange evaluates the three-point Lagrange formula directly, as an
// independent check on the barycentric evaluation.
func naiveLagrange(xs, ys []float64, x float64) float64 {
	l0 := (x - xs[1]) * (x - xs[2]) / ((xs[0] - xs[1]) * (xs[0] - xs[2]))
	l1 := (x - xs[0]) * (x - xs[2]) / ((xs[1] - xs[0]) * (xs[1] - xs[2]))
	l2 := (x - xs[0]) * (x - xs[1]) / ((xs[2] - xs[0]) * (xs[2] - xs[1]))
	return ys[0]*l0 + ys[1]*l1 + ys[2]*l2
}

func TestLagrangePassThrough(t *testing.T) {
	lag := NewLagrange(exXs, exYs)
	for i := range exXs {
		assert.Equal(t, exYs[i], lag.Eval(exXs[i]))
	}
}

func TestLagrangeEval(t *testing.T) {
	lag := NewLagrange(exXs, exYs)

	exp := naiveLagrange(exXs, exYs, 251)
	got := lag.Eval(251)
	assert.InDelta(t, exp, got, 1e-9)
	assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))

	// The quadratic disagrees with the piecewise-linear value away from the
	// sample points.
	lin := NewLinear(exXs, exYs)
	assert.Greater(t, math.Abs(got-lin.Eval(251)), 1e-6)
}

func TestLagrangeReproducesQuadratics(t *testing.T) {
	// A degree-2 interpolant through samples of x^2 is x^2 everywhere,
	// including outside the sample range.
	xs := []float64{0, 1, 3}
	ys := []float64{0, 1, 9}
	lag := NewLagrange(xs, ys)

	for _, x := range []float64{-1, 0.5, 2, 2.5, 4} {
		assert.InDelta(t, x*x, lag.Eval(x), 1e-9)
	}
}

func TestLagrangeEvalAll(t *testing.T) {
	lag := NewLagrange([]float64{0, 1, 3}, []float64{0, 1, 9})
	xs := []float64{0.5, 2}
	assert.InDeltaSlice(t, []float64{0.25, 4}, lag.EvalAll(xs), 1e-9)

	out := make([]float64, 2)
	lag.EvalAll(xs, out)
	assert.InDeltaSlice(t, []float64{0.25, 4}, out, 1e-9)
}

func TestLagrangeNearNode(t *testing.T) {
	lag := NewLagrange(exXs, exYs)
	// Within a few ulps of a node the barycentric form is abandoned for the
	// node's value itself.
	assert.InDelta(t, 902.0, lag.Eval(205*(1+machEps)), 1e-9)
	assert.InDelta(t, 902.0, lag.Eval(205*(1-machEps)), 1e-9)
}

func TestLagrangeDeriv(t *testing.T) {
	lag := NewLagrange([]float64{0, 1, 3}, []float64{0, 1, 9})

	// d/dx x^2 = 2x, away from and at the nodes.
	assert.InDelta(t, 4.0, lag.Deriv(2), 1e-9)
	assert.InDelta(t, 5.0, lag.Deriv(2.5), 1e-9)
	assert.InDelta(t, 2.0, lag.Deriv(1), 1e-9)
	assert.InDelta(t, 0.0, lag.Deriv(0), 1e-9)
	assert.InDelta(t, 6.0, lag.Deriv(3), 1e-9)
}

func TestLagrangeMorePoints(t *testing.T) {
	// Four points determine a cubic.
	xs := []float64{-1, 0, 2, 3}
	ys := make([]float64, len(xs))
	f := func(x float64) float64 { return x*x*x - 2*x + 1 }
	for i, x := range xs {
		ys[i] = f(x)
	}

	lag := NewLagrange(xs, ys)
	for _, x := range []float64{-0.5, 1, 1.5, 2.71} {
		assert.InDelta(t, f(x), lag.Eval(x), 1e-9)
	}
}
