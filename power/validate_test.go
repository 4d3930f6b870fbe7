package power

import (
	"errors"
	"math"
	"testing"
)

type invalidCall struct {
	Name  string
	Param string
	Call  func() (*Grid, error)
}

func TestInvalidParameters(t *testing.T) {
	n := []float64{1000, 2000}
	qsq := []float64{0.01, 0.02}
	beta := []float64{0.1, 0.2}
	het := []float64{0.1, 0.5}
	maf := []float64{0.1, 0.5}

	for _, v := range []invalidCall{
		{"missing n", "n", func() (*Grid, error) { return BySampleSizeAndVarianceExplained(nil, qsq, DefaultPValue) }},
		{"empty qsq", "qsq", func() (*Grid, error) { return BySampleSizeAndVarianceExplained(n, []float64{}, DefaultPValue) }},
		{"negative n", "n[1]", func() (*Grid, error) {
			return BySampleSizeAndVarianceExplained([]float64{10, -1}, qsq, DefaultPValue)
		}},
		{"qsq above 1", "qsq[0]", func() (*Grid, error) {
			return BySampleSizeAndVarianceExplained(n, []float64{1.5}, DefaultPValue)
		}},
		{"NaN qsq", "qsq[0]", func() (*Grid, error) {
			return BySampleSizeAndVarianceExplained(n, []float64{math.NaN()}, DefaultPValue)
		}},
		{"infinite n", "n[0]", func() (*Grid, error) {
			return BySampleSizeAndVarianceExplained([]float64{math.Inf(1)}, qsq, DefaultPValue)
		}},
		{"pval of 0", "pval", func() (*Grid, error) { return BySampleSizeAndVarianceExplained(n, qsq, 0) }},
		{"pval of 1", "pval", func() (*Grid, error) { return BySampleSizeAndVarianceExplained(n, qsq, 1) }},
		{"missing beta", "beta", func() (*Grid, error) { return ByEffectSizeAndHeterozygosity(nil, het, 5000, DefaultPValue) }},
		{"infinite beta", "beta[0]", func() (*Grid, error) {
			return ByEffectSizeAndHeterozygosity([]float64{math.Inf(-1)}, het, 5000, DefaultPValue)
		}},
		{"het above 1", "het[1]", func() (*Grid, error) {
			return ByEffectSizeAndHeterozygosity(beta, []float64{0.5, 1.1}, 5000, DefaultPValue)
		}},
		{"negative scalar n", "n", func() (*Grid, error) { return ByEffectSizeAndHeterozygosity(beta, het, -5, DefaultPValue) }},
		{"NaN scalar n", "n", func() (*Grid, error) {
			return ByEffectSizeAndAlleleFrequency(beta, maf, math.NaN(), DefaultPValue)
		}},
		{"maf of 0.6", "maf[0]", func() (*Grid, error) {
			return ByEffectSizeAndAlleleFrequency(beta, []float64{0.6}, 5000, DefaultPValue)
		}},
		{"negative maf", "maf[0]", func() (*Grid, error) {
			return ByEffectSizeAndAlleleFrequency(beta, []float64{-0.1}, 5000, DefaultPValue)
		}},
		{"missing maf", "maf", func() (*Grid, error) { return ByEffectSizeAndAlleleFrequency(beta, nil, 5000, DefaultPValue) }},
		{"pval above 1", "pval", func() (*Grid, error) { return ByEffectSizeAndAlleleFrequency(beta, maf, 5000, 2) }},
	} {
		g, err := v.Call()
		if g != nil {
			t.Fatalf("%s: expected no grid, got %+v", v.Name, g)
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: expected ErrInvalidParameter, got %v", v.Name, err)
		}

		var ipe *InvalidParameterError
		if !errors.As(err, &ipe) {
			t.Fatalf("%s: expected *InvalidParameterError, got %T", v.Name, err)
		}
		if ipe.Param != v.Param {
			t.Fatalf("%s: expected parameter %q to be reported, got %q (%v)", v.Name, v.Param, ipe.Param, err)
		}
	}
}

func TestBoundaryValuesAreValid(t *testing.T) {
	if _, err := BySampleSizeAndVarianceExplained([]float64{0}, []float64{0, 1}, 0.999); err != nil {
		t.Fatal(err)
	}
	if _, err := ByEffectSizeAndHeterozygosity([]float64{-10, 10}, []float64{0, 1}, 0, 1e-300); err != nil {
		t.Fatal(err)
	}
	if _, err := ByEffectSizeAndAlleleFrequency([]float64{0}, []float64{0, 0.5}, 1, DefaultPValue); err != nil {
		t.Fatal(err)
	}
}

func TestInvalidParameterMessages(t *testing.T) {
	_, errN := BySampleSizeAndVarianceExplained([]float64{-1}, []float64{0.1}, DefaultPValue)
	_, errP := BySampleSizeAndVarianceExplained([]float64{1}, []float64{0.1}, 0)
	if errN.Error() == errP.Error() {
		t.Fatalf("Different parameters produced the same message: %v", errN)
	}

	want := `invalid parameter "n[0]" (-1): must be in [0, +Inf)`
	if errN.Error() != want {
		t.Fatalf("Unexpected message %q, wanted %q", errN.Error(), want)
	}
}
