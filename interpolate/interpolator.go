package interpolate

// Interpolator is a 1D interpolator over a fixed Table of samples.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates the interpolator at all the given x values. If an
	// output array is given, the output is written to that array (the array
	// is still returned as a convenience).
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Linear{}
	_ Interpolator = &Lagrange{}
)
