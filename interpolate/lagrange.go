package interpolate

import (
	"math"
)

/////////////////////////////
// Lagrange Implementation //
/////////////////////////////

// Lagrange is the unique polynomial of degree n-1 passing through all n
// points of a table, evaluated in barycentric form. Three points give the
// familiar quadratic Lagrange interpolant.
//
// Unlike Linear, queries outside the table's range extrapolate along the
// polynomial, since the polynomial is defined everywhere.
//
// References: J-P. Berrut and L.N. Trefethen, Barycentric Lagrange
// interpolation, SIAM Review, 46(3):501-517, 2004.
// https://people.maths.ox.ac.uk/trefethen/barycentric.pdf
type Lagrange struct {
	t *Table

	// lambda[i] = 1 / prod_{j != i} (X(i) - X(j)). Finite and non-zero
	// because the table's x values are strictly increasing.
	lambda []float64
}

// NewLagrange creates a Lagrange interpolator for the samples (xs, ys).
//
// NewLagrange panics if CheckTable rejects the input.
func NewLagrange(xs, ys []float64) *Lagrange {
	return NewTableLagrange(NewTable(xs, ys))
}

// NewTableLagrange creates a Lagrange interpolator over an existing Table.
func NewTableLagrange(t *Table) *Lagrange {
	lg := &Lagrange{t: t, lambda: make([]float64, t.Len())}

	for i := range lg.lambda {
		lg.lambda[i] = 1
		for j := 0; j < t.Len(); j++ {
			if i != j {
				lg.lambda[i] /= t.X(i) - t.X(j)
			}
		}
	}

	return lg
}

// Table returns the sample table backing the interpolator.
func (lg *Lagrange) Table() *Table { return lg.t }

// Eval returns the polynomial's value at x.
//
// Queries at (or within floating point epsilon of) a sample point return that
// sample's y value directly, since the barycentric form is singular there.
func (lg *Lagrange) Eval(x float64) float64 {
	t := lg.t
	eps := 10 * machEps * math.Abs(x)
	for i := 0; i < t.Len(); i++ {
		if math.Abs(x-t.X(i)) <= eps {
			return t.Y(i)
		}
	}

	n, d := 0.0, 0.0
	for i := 0; i < t.Len(); i++ {
		alpha := lg.lambda[i] / (x - t.X(i))
		n += alpha * t.Y(i)
		d += alpha
	}
	return n / d
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lg *Lagrange) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lg.Eval(x)
	}
	return out[0]
}

// Deriv returns the polynomial's derivative at x, using the derivative of the
// barycentric form. Queries at a sample point use the node form of the
// derivative instead, which is regular there.
func (lg *Lagrange) Deriv(x float64) float64 {
	t := lg.t
	n, d, nd, dd := 0.0, 0.0, 0.0, 0.0
	for i := 0; i < t.Len(); i++ {
		xi := t.X(i)
		if close(x, xi) {
			p := 0.0
			for j := 0; j < t.Len(); j++ {
				if i != j {
					p += lg.lambda[j] / (x - t.X(j)) * (t.Y(j) - t.Y(i))
				}
			}
			return p / lg.lambda[i]
		}

		alpha := lg.lambda[i] / (x - xi)
		alphad := -alpha / (x - xi)
		n += alpha * t.Y(i)
		d += alpha
		nd += alphad * t.Y(i)
		dd += alphad
	}
	return (nd*d - n*dd) / (d * d)
}
