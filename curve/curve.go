// Package curve plots power against the row axis of a grid, one line per
// column value.
package curve

import (
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/gwaspower/power"
	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

const (
	width  = 800
	height = 500
)

// Series converts each column of g into a line over the row labels, skipping
// undefined cells and ordering points by row label. Columns with fewer than
// two defined cells cannot be drawn as a line and are omitted.
func Series(g *power.Grid) []chart.Series {
	out := make([]chart.Series, 0, g.Cols())
	for j, col := range g.ColLabels {
		xs := make([]float64, 0, g.Rows())
		ys := make([]float64, 0, g.Rows())
		for i, row := range g.RowLabels {
			if p, ok := g.At(i, j); ok {
				xs = append(xs, row)
				ys = append(ys, p)
			}
		}

		if len(xs) < 2 {
			continue
		}

		// Row labels keep the caller's order; lines are drawn left to right.
		order := make([]int, len(xs))
		floats.Argsort(xs, order)
		sorted := make([]float64, len(ys))
		for k, idx := range order {
			sorted[k] = ys[idx]
		}
		ys = sorted

		out = append(out, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s=%s", g.ColName, strconv.FormatFloat(col, 'g', 6, 64)),
			XValues: xs,
			YValues: ys,
		})
	}

	return out
}

// Render writes a PNG line chart of g to w with xAxisLabel under the row axis.
func Render(g *power.Grid, xAxisLabel string, w io.Writer) error {
	if g == nil || g.Rows() < 2 {
		return pfx.Err(fmt.Errorf("power curves need at least two row values"))
	}

	series := Series(g)
	if len(series) == 0 {
		return pfx.Err(fmt.Errorf("no column of the %dx%d grid has two defined values", g.Rows(), g.Cols()))
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 180, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name: xAxisLabel,
		},
		YAxis: chart.YAxis{
			Name:  "Power",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	return pfx.Err(graph.Render(chart.PNG, w))
}
