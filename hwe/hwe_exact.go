package hwe

import (
	"math"
	"math/big"

	"github.com/BenLubar/memoize"
)

var memoizedConfiguration = memoize.Memoize(configurationProbability)
var memoizedMulRange = memoize.Memoize(mulRange)

// Exact computes the exact Hardy-Weinberg equilibrium P value (Wigginton,
// Cutler and Abecasis 2005): the summed probability of every heterozygote
// count, at the observed allele counts, that is no more likely than the one
// observed. Safe for concurrent use.
func (g Genotypes) Exact() float64 {
	common, het, rare := g.HomRef, g.Het, g.HomAlt
	if rare > common {
		common, rare = rare, common
	}

	prob := memoizedConfiguration.(func(int64, int64, int64) float64)
	observed := prob(common, het, rare)
	sum := observed

	// Walk towards more heterozygotes, then towards fewer. Each step moves
	// one sample from each homozygote class into two heterozygotes or back.
	for _, step := range []int64{1, -1} {
		c, h, r := common-step, het+2*step, rare-step
		for climbed := false; c >= 0 && h >= 0 && r >= 0; c, h, r = c-step, h+2*step, r-step {
			p := prob(c, h, r)
			if p > observed {
				climbed = true
				continue
			}

			// Past the mode the remaining tail only shrinks.
			if climbed && p <= math.SmallestNonzeroFloat64 {
				break
			}

			sum += p
		}
	}

	return math.Min(sum, 1)
}

// Fast returns the chi square approximation unless it falls below cutoff, in
// which case the exact P value is computed.
func (g Genotypes) Fast(cutoff float64) float64 {
	if p := g.Approximate(); !(p < cutoff) {
		return p
	}

	return g.Exact()
}

// configurationProbability is the probability of observing exactly het
// heterozygotes among common+het+rare samples given the allele counts.
func configurationProbability(common, het, rare int64) float64 {
	A := 2*common + het
	a := 2*rare + het
	N := common + het + rare

	mul := memoizedMulRange.(func(int64, int64) *big.Int)

	var num, denom big.Int
	num.Exp(big.NewInt(2), big.NewInt(het), nil)
	num.Mul(&num, mul(1, A))
	num.Mul(&num, mul(1, a))

	denom.Set(mul(N+1, 2*N))
	denom.Mul(&denom, mul(1, common))
	denom.Mul(&denom, mul(1, het))
	denom.Mul(&denom, mul(1, rare))

	out, _ := new(big.Rat).SetFrac(&num, &denom).Float64()

	return out
}

func mulRange(a, b int64) *big.Int {
	return big.NewInt(1).MulRange(a, b)
}
