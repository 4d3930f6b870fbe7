package power

import (
	"gopkg.in/guregu/null.v3"
)

// Grid holds power values for every combination of a row axis and a column
// axis. Labels are the caller's input values, in the order they were supplied.
// Cells[i][j] is invalid (null) when the design at that position has no
// defined non-centrality parameter.
type Grid struct {
	RowName   string
	ColName   string
	RowLabels []float64
	ColLabels []float64
	Cells     [][]null.Float
}

func newGrid(rowName, colName string, rows, cols []float64) *Grid {
	g := &Grid{
		RowName:   rowName,
		ColName:   colName,
		RowLabels: append([]float64(nil), rows...),
		ColLabels: append([]float64(nil), cols...),
		Cells:     make([][]null.Float, len(rows)),
	}

	for i := range g.Cells {
		g.Cells[i] = make([]null.Float, len(cols))
	}

	return g
}

// Rows is the number of row labels.
func (g *Grid) Rows() int { return len(g.RowLabels) }

// Cols is the number of column labels.
func (g *Grid) Cols() int { return len(g.ColLabels) }

// At returns the power at row i and column j. ok is false for undefined cells.
func (g *Grid) At(i, j int) (p float64, ok bool) {
	c := g.Cells[i][j]
	return c.Float64, c.Valid
}

// Defined returns every defined cell value in row-major order.
func (g *Grid) Defined() []float64 {
	out := make([]float64, 0, g.Rows()*g.Cols())
	for _, row := range g.Cells {
		for _, c := range row {
			if c.Valid {
				out = append(out, c.Float64)
			}
		}
	}

	return out
}

// Cell is one grid position in long form.
type Cell struct {
	Row   float64
	Col   float64
	Power null.Float
}

// LongForm reshapes g into one Cell per position, in row-major order.
func (g *Grid) LongForm() []Cell {
	out := make([]Cell, 0, g.Rows()*g.Cols())
	for i, row := range g.Cells {
		for j, c := range row {
			out = append(out, Cell{Row: g.RowLabels[i], Col: g.ColLabels[j], Power: c})
		}
	}

	return out
}
