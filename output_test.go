package gwaspower

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/carbocation/gwaspower/power"
)

func TestWriteTSV(t *testing.T) {
	g, err := power.BySampleSizeAndVarianceExplained([]float64{1000, 0}, []float64{0.01, 1}, power.DefaultPValue)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteTSV(&buf, g); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected a header and 4 rows, got %q", buf.String())
	}
	if lines[0] != "n\tqsq\tpower" {
		t.Fatalf("Unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1000\t0.01\t0.0115") {
		t.Fatalf("Unexpected first row %q", lines[1])
	}
	if lines[2] != "1000\t1\t"+MissingValue {
		t.Fatalf("Unexpected undefined row %q", lines[2])
	}
	// n=0 with qsq=1 has no defined NCP either.
	if lines[4] != "0\t1\t"+MissingValue {
		t.Fatalf("Unexpected undefined row %q", lines[4])
	}
}

func TestWriteJSON(t *testing.T) {
	g, err := power.BySampleSizeAndVarianceExplained([]float64{1000}, []float64{0, 1}, 0.05)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, g); err != nil {
		t.Fatal(err)
	}

	var out struct {
		RowName string       `json:"row_name"`
		Rows    []float64    `json:"rows"`
		Power   [][]*float64 `json:"power"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}

	if out.RowName != "n" || len(out.Rows) != 1 || len(out.Power) != 1 || len(out.Power[0]) != 2 {
		t.Fatalf("Unexpected JSON %s", buf.String())
	}
	if out.Power[0][0] == nil || *out.Power[0][0] < 0.0499 || *out.Power[0][0] > 0.0501 {
		t.Fatalf("Expected power 0.05 for qsq=0, got %s", buf.String())
	}
	if out.Power[0][1] != nil {
		t.Fatalf("Expected null for qsq=1, got %v", *out.Power[0][1])
	}
}
