/*package io contains routines for reading evaluator config files and sample
tables.
*/
package io

import (
	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/tabfunc/interpolate"
)

const ExampleEvalFile = `[Eval]

#######################
# Optional Parameters #
#######################

# PointFile is a text file containing the sample table, one point per line,
# with x in the first column and y in the second. x values must be strictly
# increasing. If PointFile isn't set, the built-in example table is used.
# PointFile = path/to/points.txt

# Query is the point the interpolants are evaluated at.
# Query = 251

# IntegralStart and IntegralEnd are the bounds the piecewise-linear
# interpolant is integrated between.
# IntegralStart = 94
# IntegralEnd = 251`

// EvalConfig describes a single run of the evaluator: which sample table to
// use, where to evaluate the interpolants, and what range to integrate over.
type EvalConfig struct {
	PointFile     string
	Query         float64
	IntegralStart float64
	IntegralEnd   float64
}

type EvalWrapper struct {
	Eval EvalConfig
}

// DefaultEvalWrapper returns an EvalWrapper whose query point and integration
// bounds match the built-in example table.
func DefaultEvalWrapper() *EvalWrapper {
	return &EvalWrapper{EvalConfig{
		Query:         251,
		IntegralStart: 94,
		IntegralEnd:   251,
	}}
}

func (con *EvalConfig) ValidPointFile() bool {
	return con.PointFile != ""
}

// ReadPoints reads a two-column (x, y) sample table from the given text file.
// Unlike interpolate.NewTable, malformed tables are reported as errors, since
// the contents of a file aren't under the caller's control.
func ReadPoints(fname string) (*interpolate.Table, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys := cols[0], cols[1]
	if err := interpolate.CheckTable(xs, ys); err != nil {
		return nil, err
	}
	return interpolate.NewTable(xs, ys), nil
}
