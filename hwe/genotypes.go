// Package hwe summarizes genotype counts from a reference sample into the
// allele and heterozygote frequencies used by power calculations, and tests
// whether the Hardy-Weinberg assumption that links them holds.
package hwe

import (
	"fmt"
	"strconv"
	"strings"
)

// Genotypes holds counts of each biallelic genotype.
type Genotypes struct {
	HomRef int64
	Het    int64
	HomAlt int64
}

// ParseGenotypes reads "HomRef,Het,HomAlt" counts.
func ParseGenotypes(s string) (Genotypes, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Genotypes{}, fmt.Errorf("expected 3 comma-separated genotype counts, got %d in %q", len(parts), s)
	}

	var counts [3]int64
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return Genotypes{}, err
		}
		if v < 0 {
			return Genotypes{}, fmt.Errorf("genotype count %d is negative", v)
		}
		counts[i] = v
	}

	return Genotypes{HomRef: counts[0], Het: counts[1], HomAlt: counts[2]}, nil
}

func (g Genotypes) N() int64 {
	return g.HomRef + g.Het + g.HomAlt
}

func (g Genotypes) alleles() (ref, alt int64) {
	return 2*g.HomRef + g.Het, 2*g.HomAlt + g.Het
}

// MAF is the frequency of the less common allele. Zero for an empty sample.
func (g Genotypes) MAF() float64 {
	ref, alt := g.alleles()
	if ref+alt == 0 {
		return 0
	}

	if alt > ref {
		alt = ref
	}

	return float64(alt) / float64(2*g.N())
}

// Heterozygosity is the observed fraction of heterozygous samples.
func (g Genotypes) Heterozygosity() float64 {
	if g.N() == 0 {
		return 0
	}

	return float64(g.Het) / float64(g.N())
}

// ExpectedHeterozygosity is the heterozygote frequency implied by maf at
// equilibrium.
func ExpectedHeterozygosity(maf float64) float64 {
	return 2 * maf * (1 - maf)
}
