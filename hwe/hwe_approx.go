package hwe

import (
	"math"

	"github.com/tokenme/probab/dst"
)

// Approximate returns the 1 degree of freedom chi square P value for departure
// from Hardy-Weinberg equilibrium. Sites that are not biallelic in the sample
// yield 1.
func (g Genotypes) Approximate() (p float64) {
	defer func() {
		if r := recover(); r != nil {
			p = math.NaN()
		}
	}()

	return 1.0 - dst.ChiSquareCDF(1)(g.chiSquare())
}

// chiSquare compares observed genotype counts with those expected from the
// observed allele frequencies.
func (g Genotypes) chiSquare() float64 {
	ref, alt := g.alleles()

	// Monomorphic in this sample; no evidence against equilibrium.
	if ref == 0 || alt == 0 {
		return 0.0
	}

	N := float64(g.N())
	pRef := float64(ref) / float64(ref+alt)
	pAlt := float64(alt) / float64(ref+alt)

	eHomRef := pRef * pRef * N
	eHet := 2.0 * pRef * pAlt * N
	eHomAlt := pAlt * pAlt * N

	return math.Pow(eHomRef-float64(g.HomRef), 2)/eHomRef +
		math.Pow(eHet-float64(g.Het), 2)/eHet +
		math.Pow(eHomAlt-float64(g.HomAlt), 2)/eHomAlt
}
