package gwaspower

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/BurntSushi/toml"
	"github.com/carbocation/gwaspower/power"
	"github.com/carbocation/pfx"
)

// Kind selects which pair of quantities varies across a power grid.
type Kind string

const (
	// VarianceExplained crosses sample sizes (rows) with qsq (columns).
	VarianceExplained Kind = "variance"
	// Heterozygosity crosses effect sizes (rows) with heterozygote frequency.
	Heterozygosity Kind = "het"
	// AlleleFrequency crosses effect sizes (rows) with minor allele frequency.
	AlleleFrequency Kind = "maf"
)

func (k Kind) Valid() bool {
	switch k {
	case VarianceExplained, Heterozygosity, AlleleFrequency:
		return true
	}

	return false
}

// RowAxis and ColAxis name the quantities on each axis of the grid for k.
func (k Kind) RowAxis() string {
	if k == VarianceExplained {
		return power.AxisSampleSize
	}

	return power.AxisEffectSize
}

func (k Kind) ColAxis() string {
	switch k {
	case VarianceExplained:
		return power.AxisVarianceExplained
	case Heterozygosity:
		return power.AxisHeterozygosity
	}

	return power.AxisAlleleFrequency
}

// Design is the textual description of a power grid, as read from flags or a
// TOML design file. Rows and Cols are sequences in ParseSequence syntax; N is
// the fixed sample size for the effect size designs.
type Design struct {
	Kind   Kind    `toml:"design"`
	Rows   string  `toml:"rows"`
	Cols   string  `toml:"cols"`
	N      string  `toml:"n"`
	PValue float64 `toml:"pval"`

	RowLabel string `toml:"row_label"`
	ColLabel string `toml:"col_label"`
}

// ReadDesignFile decodes a TOML design from a local path or a gs:// URL.
// PValue defaults to power.DefaultPValue when the file omits it.
func ReadDesignFile(ctx context.Context, path string, client *storage.Client) (Design, error) {
	d := Design{PValue: power.DefaultPValue}

	f, err := MaybeOpenFromGoogleStorage(ctx, path, client)
	if err != nil {
		return d, pfx.Err(err)
	}
	defer f.Close()

	md, err := toml.DecodeReader(f, &d)
	if err != nil {
		return d, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return d, pfx.Err(fmt.Errorf("%s: unrecognized keys %s", path, strings.Join(keys, ", ")))
	}

	return d, nil
}

// Compute parses the design's axes and evaluates its grid.
func (d Design) Compute() (*power.Grid, error) {
	if !d.Kind.Valid() {
		return nil, &power.InvalidParameterError{Param: "design", Value: string(d.Kind), Reason: fmt.Sprintf("must be one of %q, %q or %q", VarianceExplained, Heterozygosity, AlleleFrequency)}
	}

	rows, err := ParseSequence(d.Kind.RowAxis(), d.Rows)
	if err != nil {
		return nil, err
	}

	cols, err := ParseSequence(d.Kind.ColAxis(), d.Cols)
	if err != nil {
		return nil, err
	}

	var g *power.Grid
	switch d.Kind {
	case VarianceExplained:
		if strings.TrimSpace(d.N) != "" {
			return nil, &power.InvalidParameterError{Param: power.AxisSampleSize, Value: d.N, Reason: "is the row axis of this design; set rows instead"}
		}
		g, err = power.BySampleSizeAndVarianceExplained(rows, cols, d.PValue)
	default:
		n, nerr := ParseScalar(power.AxisSampleSize, d.N)
		if nerr != nil {
			return nil, nerr
		}
		if d.Kind == Heterozygosity {
			g, err = power.ByEffectSizeAndHeterozygosity(rows, cols, n, d.PValue)
		} else {
			g, err = power.ByEffectSizeAndAlleleFrequency(rows, cols, n, d.PValue)
		}
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Labels returns the axis titles for plots: the design's own labels when set,
// otherwise descriptive defaults.
func (d Design) Labels() (x, y string) {
	x, y = d.ColLabel, d.RowLabel

	defaults := map[string]string{
		power.AxisSampleSize:        "Sample size",
		power.AxisVarianceExplained: "Variance explained (q^2)",
		power.AxisEffectSize:        "Effect size (beta)",
		power.AxisHeterozygosity:    "Heterozygote frequency",
		power.AxisAlleleFrequency:   "Minor allele frequency",
	}

	if x == "" {
		x = defaults[d.Kind.ColAxis()]
	}
	if y == "" {
		y = defaults[d.Kind.RowAxis()]
	}

	return x, y
}
