package main

import (
	"flag"
	"fmt"
	"log"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/tabfunc/interpolate"
	"github.com/phil-mansfield/tabfunc/io"
	"github.com/phil-mansfield/tabfunc/quad"
)

// The built-in example table. Together with the defaults in io.EvalConfig it
// reproduces the reference output: the interpolants evaluated at 251 and the
// piecewise-linear interpolant integrated over [94, 251].
var (
	exampleXs = []float64{94, 205, 371}
	exampleYs = []float64{929, 902, 860}
)

func main() {
	var (
		configFile    string
		exampleConfig bool
	)
	flag.StringVar(
		&configFile, "ConfigFile", "",
		"Path to an Eval config file. If not given, the built-in example "+
			"table and default query point are used.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Print an example Eval config file to stdout and exit.",
	)
	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleEvalFile)
		return
	}

	wrap := io.DefaultEvalWrapper()
	if configFile != "" {
		if err := gcfg.ReadFileInto(wrap, configFile); err != nil {
			log.Fatal(err.Error())
		}
	}
	con := &wrap.Eval

	tab := interpolate.NewTable(exampleXs, exampleYs)
	if con.ValidPointFile() {
		var err error
		tab, err = io.ReadPoints(con.PointFile)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	lin := interpolate.NewTableLinear(tab)
	lag := interpolate.NewTableLagrange(tab)

	est, errEst := quad.Integrate(lin.Eval, con.IntegralStart, con.IntegralEnd)

	fmt.Println(lin.Eval(con.Query))
	fmt.Printf("(%v, %v)\n", est, errEst)
	fmt.Println(lag.Eval(con.Query))
}
