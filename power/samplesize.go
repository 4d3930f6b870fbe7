package power

import "math"

const bisectionSteps = 200

// SampleSizeForPower returns the smallest sample size at which a variant
// explaining qsq of the trait variance is detected with probability target at
// threshold pval. The result is not rounded up to a whole sample.
func SampleSizeForPower(qsq, target, pval float64) (float64, error) {
	if err := checkPValue(pval); err != nil {
		return 0, err
	}
	if err := checkScalar(AxisVarianceExplained, qsq, openUnit); err != nil {
		return 0, err
	}
	if err := checkScalar("target", target, interval{min: pval, max: 1, openMin: true, openMax: true}); err != nil {
		return 0, err
	}

	ncp := ncpForPower(Threshold(pval), target)

	return ncp * (1 - qsq) / qsq, nil
}

// ncpForPower inverts UpperTail in its ncp argument, which is monotone
// increasing from the central tail probability towards 1.
func ncpForPower(x, target float64) float64 {
	reaches := func(ncp float64) bool {
		return UpperTail(x, ncp).Float64 >= target
	}

	lo, hi := 0.0, 1.0
	for !reaches(hi) {
		lo, hi = hi, hi*2
		if math.IsInf(hi, 1) {
			return hi
		}
	}

	for i := 0; i < bisectionSteps && hi-lo > 1e-12*hi; i++ {
		mid := lo + (hi-lo)/2
		if reaches(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	return hi
}
