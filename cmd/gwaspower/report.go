package main

import (
	"fmt"
	"log"
	"math"

	"github.com/carbocation/gwaspower"
	"github.com/carbocation/gwaspower/hwe"
	"github.com/carbocation/gwaspower/power"
)

// hweAlpha is the P value below which reference genotypes are reported as
// departing from Hardy-Weinberg equilibrium.
const hweAlpha = 1e-6

func reportGenotypes(counts string, kind gwaspower.Kind) error {
	g, err := hwe.ParseGenotypes(counts)
	if err != nil {
		return err
	}

	maf := g.MAF()
	log.Printf("Reference genotypes %d/%d/%d: MAF %.4g, heterozygosity %.4g observed vs %.4g expected under HWE\n",
		g.HomRef, g.Het, g.HomAlt, maf, g.Heterozygosity(), hwe.ExpectedHeterozygosity(maf))

	p := g.Fast(hweAlpha)
	log.Printf("Hardy-Weinberg equilibrium P value: %.3g\n", p)

	if p < hweAlpha && kind == gwaspower.AlleleFrequency {
		log.Printf("The reference genotypes depart from HWE; consider -design het with -cols %.4g\n", g.Heterozygosity())
	}

	return nil
}

// reportSampleSizes logs the sample size at which each design point reaches
// target power. For the variance design every column is one point; for the
// effect size designs every cell is.
func reportSampleSizes(grid *power.Grid, kind gwaspower.Kind, target, pval float64) error {
	if kind == gwaspower.VarianceExplained {
		for _, qsq := range grid.ColLabels {
			if err := reportSampleSize(fmt.Sprintf("%s=%g", grid.ColName, qsq), qsq, target, pval); err != nil {
				return err
			}
		}

		return nil
	}

	for _, beta := range grid.RowLabels {
		for _, col := range grid.ColLabels {
			qsq := power.QSqFromAlleleFrequency(beta, col)
			if kind == gwaspower.Heterozygosity {
				qsq = power.QSqFromHeterozygosity(beta, col)
			}

			label := fmt.Sprintf("%s=%g %s=%g", grid.RowName, beta, grid.ColName, col)
			if err := reportSampleSize(label, qsq, target, pval); err != nil {
				return err
			}
		}
	}

	return nil
}

func reportSampleSize(label string, qsq, target, pval float64) error {
	if qsq <= 0 || qsq >= 1 {
		log.Printf("%s: power %g is not attainable (qsq=%g)\n", label, target, qsq)
		return nil
	}

	n, err := power.SampleSizeForPower(qsq, target, pval)
	if err != nil {
		return err
	}

	log.Printf("%s: %.0f samples reach power %g at P < %g\n", label, math.Ceil(n), target, pval)

	return nil
}
