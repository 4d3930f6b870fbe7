// Package heatmap renders power grids as raster heatmaps: columns along the
// x axis, rows along the y axis with the first row at the bottom, and a
// sequential color scale over the range of defined values. Undefined cells
// are left blank.
package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/carbocation/gwaspower/power"
	"github.com/carbocation/pfx"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/montanaflynn/stats"
	"golang.org/x/image/font/basicfont"
)

// Options controls the geometry and colors of a rendering. The zero value is
// usable.
type Options struct {
	// CellSize is the edge of each cell, in pixels.
	CellSize int

	// Colors are hex colors from lowest to highest power. Defaults to YlOrRd.
	Colors []string
}

const (
	defaultCellSize = 40
	marginTop       = 20
	marginLeft      = 100
	marginBottom    = 70
	legendWidth     = 150
	legendBox       = 14
	tickLength      = 4
)

var background = color.White

// Triples reshapes the grid into (row, column, value) form, as consumed by the
// renderer.
func Triples(g *power.Grid) []power.Cell {
	return g.LongForm()
}

func check(g *power.Grid) error {
	if g == nil {
		return fmt.Errorf("no grid to render")
	}
	if g.Rows() == 0 || g.Cols() == 0 {
		return fmt.Errorf("cannot render an empty %dx%d grid", g.Rows(), g.Cols())
	}
	if len(g.Cells) != g.Rows() {
		return fmt.Errorf("grid has %d row labels but %d rows of cells", g.Rows(), len(g.Cells))
	}
	for i, row := range g.Cells {
		if len(row) != g.Cols() {
			return fmt.Errorf("row %d has %d cells, expected %d", i, len(row), g.Cols())
		}
	}

	return nil
}

// ValueRange returns the smallest and largest defined values. ok is false when
// every cell is undefined.
func ValueRange(g *power.Grid) (min, max float64, ok bool) {
	defined := stats.Float64Data(g.Defined())
	if defined.Len() == 0 {
		return 0, 0, false
	}

	min, err := defined.Min()
	if err != nil {
		return 0, 0, false
	}
	max, err = defined.Max()
	if err != nil {
		return 0, 0, false
	}

	return min, max, true
}

// Render draws g with xAxisLabel under the columns and yAxisLabel beside the
// rows.
func Render(g *power.Grid, xAxisLabel, yAxisLabel string, opts Options) (image.Image, error) {
	if err := check(g); err != nil {
		return nil, pfx.Err(err)
	}

	cell := opts.CellSize
	if cell <= 0 {
		cell = defaultCellSize
	}
	hex := opts.Colors
	if len(hex) == 0 {
		hex = YlOrRd
	}

	min, max, anyDefined := ValueRange(g)
	palette, err := NewPalette(hex, min, max)
	if err != nil {
		return nil, pfx.Err(err)
	}

	plotW, plotH := g.Cols()*cell, g.Rows()*cell
	width := marginLeft + plotW + legendWidth
	height := marginTop + plotH + marginBottom
	if minHeight := marginTop + (len(palette.Colors)+2)*(legendBox+4) + marginBottom; height < minHeight {
		height = minHeight
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	// One pixel per cell, scaled up without interpolation so the cells stay
	// crisp. Undefined cells remain transparent and show the background.
	raster := image.NewNRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for i, row := range g.Cells {
		for j, c := range row {
			if !c.Valid {
				continue
			}
			raster.Set(j, g.Rows()-1-i, palette.Color(c.Float64))
		}
	}
	dc.DrawImage(imaging.Resize(raster, plotW, plotH, imaging.NearestNeighbor), marginLeft, marginTop)

	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(marginLeft, marginTop, float64(plotW), float64(plotH))
	dc.Stroke()

	drawColumnTicks(dc, g.ColLabels, cell, marginTop+plotH)
	drawRowTicks(dc, g.RowLabels, cell, marginTop+plotH)

	dc.DrawStringAnchored(xAxisLabel, float64(marginLeft)+float64(plotW)/2, float64(marginTop+plotH+marginBottom-12), 0.5, 0)

	yMid := float64(marginTop) + float64(plotH)/2
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 16, yMid)
	dc.DrawStringAnchored(yAxisLabel, 16, yMid, 0.5, 0.5)
	dc.Pop()

	drawLegend(dc, palette, anyDefined, len(g.Defined()) < g.Rows()*g.Cols(), marginLeft+plotW+20)

	return dc.Image(), nil
}

func formatLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// labelStride thins tick labels so that neighbors do not overlap.
func labelStride(dc *gg.Context, labels []float64, cell int) int {
	widest := 0.0
	for _, v := range labels {
		if w, _ := dc.MeasureString(formatLabel(v)); w > widest {
			widest = w
		}
	}

	return int(math.Max(1, math.Ceil((widest+6)/float64(cell))))
}

func drawColumnTicks(dc *gg.Context, labels []float64, cell, bottom int) {
	stride := labelStride(dc, labels, cell)
	for j := 0; j < len(labels); j += stride {
		x := float64(marginLeft) + (float64(j)+0.5)*float64(cell)
		dc.DrawLine(x, float64(bottom), x, float64(bottom+tickLength))
		dc.Stroke()
		dc.DrawStringAnchored(formatLabel(labels[j]), x, float64(bottom+tickLength+2), 0.5, 1)
	}
}

func drawRowTicks(dc *gg.Context, labels []float64, cell, bottom int) {
	// Text height, not width, limits row labels.
	stride := int(math.Max(1, math.Ceil(16/float64(cell))))
	for i := 0; i < len(labels); i += stride {
		y := float64(bottom) - (float64(i)+0.5)*float64(cell)
		dc.DrawLine(float64(marginLeft-tickLength), y, float64(marginLeft), y)
		dc.Stroke()
		dc.DrawStringAnchored(formatLabel(labels[i]), float64(marginLeft-tickLength-3), y, 1, 0.5)
	}
}

func drawLegend(dc *gg.Context, p Palette, anyDefined, anyUndefined bool, left int) {
	y := float64(marginTop)
	dc.SetColor(color.Black)
	dc.DrawString("Power", float64(left), y+10)
	y += legendBox + 6

	if anyDefined {
		// Highest values on top, as on the y axis.
		for i := len(p.Colors) - 1; i >= 0; i-- {
			lo, hi := p.Bounds(i)
			dc.SetColor(p.Colors[i])
			dc.DrawRectangle(float64(left), y, legendBox, legendBox)
			dc.Fill()
			dc.SetColor(color.Black)
			dc.DrawStringAnchored(fmt.Sprintf("%.3g-%.3g", lo, hi), float64(left+legendBox+6), y+legendBox/2, 0, 0.5)
			y += legendBox + 4
		}
	}

	if anyUndefined {
		dc.SetColor(color.Black)
		dc.DrawRectangle(float64(left), y, legendBox, legendBox)
		dc.Stroke()
		dc.DrawStringAnchored("undefined", float64(left+legendBox+6), y+legendBox/2, 0, 0.5)
	}
}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return pfx.Err(png.Encode(w, img))
}
