// Package power computes analytic power to detect the association of a single
// variant with a quantitative trait, using the 1 degree of freedom chi square
// test statistic of a linear regression.
package power

import (
	"gopkg.in/guregu/null.v3"
)

// DefaultPValue is the conventional genome-wide significance threshold.
const DefaultPValue = 5e-8

// Axis names carried on the grids produced here.
const (
	AxisSampleSize        = "n"
	AxisVarianceExplained = "qsq"
	AxisEffectSize        = "beta"
	AxisHeterozygosity    = "het"
	AxisAlleleFrequency   = "maf"
)

// BySampleSizeAndVarianceExplained returns power for every sample size in n
// (rows) crossed with every fraction of variance explained in qsq (columns).
func BySampleSizeAndVarianceExplained(n, qsq []float64, pval float64) (*Grid, error) {
	if err := checkVector(AxisSampleSize, n, nonNegative); err != nil {
		return nil, err
	}
	if err := checkVector(AxisVarianceExplained, qsq, unit); err != nil {
		return nil, err
	}
	if err := checkPValue(pval); err != nil {
		return nil, err
	}

	g := newGrid(AxisSampleSize, AxisVarianceExplained, n, qsq)
	fill(g,
		func(i int) float64 { return n[i] },
		func(i, j int) float64 { return qsq[j] },
		pval)

	return g, nil
}

// ByEffectSizeAndHeterozygosity returns power for every standardized effect
// size in beta (rows) crossed with every heterozygote frequency in het
// (columns), for a study of n samples.
func ByEffectSizeAndHeterozygosity(beta, het []float64, n, pval float64) (*Grid, error) {
	if err := checkVector(AxisEffectSize, beta, anyFinite); err != nil {
		return nil, err
	}
	if err := checkVector(AxisHeterozygosity, het, unit); err != nil {
		return nil, err
	}
	if err := checkScalar(AxisSampleSize, n, nonNegative); err != nil {
		return nil, err
	}
	if err := checkPValue(pval); err != nil {
		return nil, err
	}

	g := newGrid(AxisEffectSize, AxisHeterozygosity, beta, het)
	fill(g,
		func(int) float64 { return n },
		func(i, j int) float64 { return QSqFromHeterozygosity(beta[i], het[j]) },
		pval)

	return g, nil
}

// ByEffectSizeAndAlleleFrequency returns power for every standardized effect
// size in beta (rows) crossed with every minor allele frequency in maf
// (columns), for a study of n samples. Genotypes are assumed to be in
// Hardy-Weinberg equilibrium.
func ByEffectSizeAndAlleleFrequency(beta, maf []float64, n, pval float64) (*Grid, error) {
	if err := checkVector(AxisEffectSize, beta, anyFinite); err != nil {
		return nil, err
	}
	if err := checkVector(AxisAlleleFrequency, maf, minorAllele); err != nil {
		return nil, err
	}
	if err := checkScalar(AxisSampleSize, n, nonNegative); err != nil {
		return nil, err
	}
	if err := checkPValue(pval); err != nil {
		return nil, err
	}

	g := newGrid(AxisEffectSize, AxisAlleleFrequency, beta, maf)
	fill(g,
		func(int) float64 { return n },
		func(i, j int) float64 { return QSqFromAlleleFrequency(beta[i], maf[j]) },
		pval)

	return g, nil
}

// QSqFromHeterozygosity is the variance explained by a variant with
// standardized effect beta and heterozygote frequency het. It may exceed 1.
func QSqFromHeterozygosity(beta, het float64) float64 {
	return het * beta * beta
}

// QSqFromAlleleFrequency is the variance explained by a variant with
// standardized effect beta and minor allele frequency maf, under HWE.
func QSqFromAlleleFrequency(beta, maf float64) float64 {
	return QSqFromHeterozygosity(beta, 2*maf*(1-maf))
}

// StudyDesign is a single point of the sample size / variance explained grid.
type StudyDesign struct {
	N      float64
	QSq    float64
	PValue float64
}

// Power validates d and returns its power, which is null when qsq is 1.
func (d StudyDesign) Power() (null.Float, error) {
	if err := checkScalar(AxisSampleSize, d.N, nonNegative); err != nil {
		return null.Float{}, err
	}
	if err := checkScalar(AxisVarianceExplained, d.QSq, unit); err != nil {
		return null.Float{}, err
	}
	if err := checkPValue(d.PValue); err != nil {
		return null.Float{}, err
	}

	return UpperTail(Threshold(d.PValue), NCP(d.N, d.QSq)), nil
}
