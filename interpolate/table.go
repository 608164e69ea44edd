/*package interpolate implements 1D interpolators over tables of sampled
function values.
*/
package interpolate

import (
	"fmt"
	"math"
	"sort"
)

const (
	machEps = 2.220446049250313e-16

	// closeTol is the relative tolerance used when deciding whether a query
	// point sits on the edge of a table's range.
	closeTol = 42 * machEps
)

// Table is an immutable set of (x, y) samples sorted by strictly increasing x.
// All the interpolators in this package are built on top of a Table, so code
// constructing one can rely on the sortedness invariant without rechecking it.
type Table struct {
	xs, ys []float64
}

// CheckTable returns a descriptive error if xs and ys cannot form a valid
// Table: the slices must be the same length, contain at least two points, and
// xs must be strictly increasing.
func CheckTable(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf(
			"Table has len(xs) = %d, but len(ys) = %d.", len(xs), len(ys),
		)
	}
	if len(xs) < 2 {
		return fmt.Errorf(
			"Table needs at least 2 points, but was given %d.", len(xs),
		)
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			return fmt.Errorf(
				"Table xs not strictly increasing: xs[%d] = %g, xs[%d] = %g.",
				i, xs[i], i+1, xs[i+1],
			)
		}
	}
	return nil
}

// NewTable creates a Table from xs and ys. The slices are copied, so the
// caller may reuse them.
//
// NewTable panics if CheckTable rejects the input. Callers handling untrusted
// data should run CheckTable themselves first.
func NewTable(xs, ys []float64) *Table {
	if err := CheckTable(xs, ys); err != nil {
		panic(err.Error())
	}

	t := &Table{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(t.xs, xs)
	copy(t.ys, ys)
	return t
}

// Len returns the number of samples in the table.
func (t *Table) Len() int { return len(t.xs) }

// X returns the x value of sample i.
func (t *Table) X(i int) float64 { return t.xs[i] }

// Y returns the y value of sample i.
func (t *Table) Y(i int) float64 { return t.ys[i] }

// XMin returns the smallest x value in the table.
func (t *Table) XMin() float64 { return t.xs[0] }

// XMax returns the largest x value in the table.
func (t *Table) XMax() float64 { return t.xs[len(t.xs)-1] }

// Locate returns the index i of the segment [X(i), X(i+1)] bracketing x.
// Points outside the table's range clamp to the first or last segment.
// Lookups are O(log n).
func (t *Table) Locate(x float64) int {
	if x <= t.xs[0] {
		return 0
	} else if x >= t.xs[len(t.xs)-1] {
		return len(t.xs) - 2
	}
	// Smallest i with xs[i] >= x. x is strictly interior here, so i >= 1.
	i := sort.SearchFloat64s(t.xs, x)
	return i - 1
}

// In returns whether x is inside the table's x range, up to floating point
// tolerance at the edges.
func (t *Table) In(x float64) bool {
	x1, x2 := t.XMin(), t.XMax()
	return (x >= x1 && x <= x2) || close(x, x1) || close(x, x2)
}

func close(x, y float64) bool {
	if x == y {
		return true
	}
	diff := math.Abs(x - y)
	return diff <= closeTol*math.Abs(x) && diff <= closeTol*math.Abs(y)
}
