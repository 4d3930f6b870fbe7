package gwaspower

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/carbocation/gwaspower/power"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// MissingValue is written for undefined cells in delimited output.
const MissingValue = "NA"

type tsvLabel float64

func (l tsvLabel) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(l), 'g', -1, 64), nil
}

type tsvPower null.Float

func (p tsvPower) MarshalCSV() (string, error) {
	if !p.Valid {
		return MissingValue, nil
	}

	return strconv.FormatFloat(p.Float64, 'g', -1, 64), nil
}

type tsvRow struct {
	Row   tsvLabel `csv:"row"`
	Col   tsvLabel `csv:"col"`
	Power tsvPower `csv:"power"`
}

// WriteTSV writes g in long form, one tab-separated line per cell, under a
// header naming the grid's axes.
func WriteTSV(w io.Writer, g *power.Grid) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write([]string{g.RowName, g.ColName, "power"}); err != nil {
		return pfx.Err(err)
	}

	cells := g.LongForm()
	rows := make([]tsvRow, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, tsvRow{Row: tsvLabel(c.Row), Col: tsvLabel(c.Col), Power: tsvPower(c.Power)})
	}

	if err := gocsv.MarshalCSVWithoutHeaders(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	cw.Flush()

	return pfx.Err(cw.Error())
}

type jsonGrid struct {
	RowName   string         `json:"row_name"`
	ColName   string         `json:"col_name"`
	RowLabels []float64      `json:"rows"`
	ColLabels []float64      `json:"cols"`
	Power     [][]null.Float `json:"power"`
}

// WriteJSON writes g as a matrix. Undefined cells are null.
func WriteJSON(w io.Writer, g *power.Grid) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return pfx.Err(enc.Encode(jsonGrid{
		RowName:   g.RowName,
		ColName:   g.ColName,
		RowLabels: g.RowLabels,
		ColLabels: g.ColLabels,
		Power:     g.Cells,
	}))
}
