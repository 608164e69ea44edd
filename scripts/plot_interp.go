package main

import (
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/tabfunc/interpolate"
)

// plot_interp plots the piecewise-linear and Lagrange interpolants of a
// sample table against the raw points.

func main() {
	if len(os.Args) != 2 && len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s point_file [out.png]", os.Args[0])
	}

	cols, err := table.ReadTable(os.Args[1], []int{0, 1}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	xs, ys := cols[0], cols[1]
	if err := interpolate.CheckTable(xs, ys); err != nil {
		log.Fatal(err.Error())
	}
	tab := interpolate.NewTable(xs, ys)

	lin := interpolate.NewTableLinear(tab)
	lag := interpolate.NewTableLagrange(tab)

	evalXs := linspace(tab.XMin(), tab.XMax(), 200)
	linYs := lin.EvalAll(evalXs)
	lagYs := lag.EvalAll(evalXs)

	plt.Reset()
	plt.Plot(evalXs, linYs, "b", plt.LW(2))
	plt.Plot(evalXs, lagYs, "r", plt.LW(2))
	plt.Plot(xs, ys, "ok")
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))

	if len(os.Args) == 3 {
		plt.SaveFig(os.Args[2])
	} else {
		plt.Show()
	}
	plt.Execute()
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[n-1] = hi
	return xs
}
