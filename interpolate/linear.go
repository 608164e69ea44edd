package interpolate

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a piecewise-linear interpolator. Query points outside the table's
// x range clamp to the nearest endpoint's y value instead of extrapolating.
type Linear struct {
	t *Table

	// s[i] is the slope of segment i and prim[i] is the integral of the
	// interpolant from XMin to X(i), with prim[0] = 0.
	s, prim []float64
}

// NewLinear creates a piecewise-linear interpolator for the samples (xs, ys).
//
// NewLinear panics if CheckTable rejects the input.
func NewLinear(xs, ys []float64) *Linear {
	return NewTableLinear(NewTable(xs, ys))
}

// NewTableLinear creates a piecewise-linear interpolator over an existing
// Table.
func NewTableLinear(t *Table) *Linear {
	n := t.Len()
	lin := &Linear{
		t:    t,
		s:    make([]float64, n-1),
		prim: make([]float64, n),
	}

	for i := 0; i < n-1; i++ {
		dx := t.X(i+1) - t.X(i)
		lin.s[i] = (t.Y(i+1) - t.Y(i)) / dx
		lin.prim[i+1] = lin.prim[i] + dx*(t.Y(i)+0.5*dx*lin.s[i])
	}

	return lin
}

// Table returns the sample table backing the interpolator.
func (lin *Linear) Table() *Table { return lin.t }

// Eval returns the interpolated value at x. Values of x below XMin return
// Y(0) and values above XMax return Y(n-1).
func (lin *Linear) Eval(x float64) float64 {
	t := lin.t
	if x <= t.XMin() {
		return t.Y(0)
	} else if x >= t.XMax() {
		return t.Y(t.Len() - 1)
	}

	i := t.Locate(x)
	return t.Y(i) + (x-t.X(i))*lin.s[i]
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

// Deriv returns the slope of the interpolant at x. The clamped regions
// outside the table are flat, so their slope is 0.
func (lin *Linear) Deriv(x float64) float64 {
	t := lin.t
	if x < t.XMin() || x > t.XMax() {
		return 0
	}
	return lin.s[t.Locate(x)]
}

// Primitive returns the integral of the clamped interpolant from XMin to x.
// Since the interpolant is defined (and constant) outside the table's range,
// so is its primitive.
func (lin *Linear) Primitive(x float64) float64 {
	t := lin.t
	if x <= t.XMin() {
		return (x - t.XMin()) * t.Y(0)
	} else if x >= t.XMax() {
		return lin.prim[t.Len()-1] + (x-t.XMax())*t.Y(t.Len()-1)
	}

	i := t.Locate(x)
	dx := x - t.X(i)
	return lin.prim[i] + dx*(t.Y(i)+0.5*dx*lin.s[i])
}

// Integrate returns the exact integral of the interpolant from a to b.
// Reversing the bounds negates the result.
func (lin *Linear) Integrate(a, b float64) float64 {
	return lin.Primitive(b) - lin.Primitive(a)
}
