package power

import (
	"math"
	"runtime"
	"sync"

	"github.com/BenLubar/memoize"
	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/guregu/null.v3"
)

var memoizedThreshold = memoize.Memoize(threshold)

// Threshold returns the critical value x of a 1 degree of freedom chi square
// distribution with P(X > x) = pval. pval is assumed to be in (0, 1).
func Threshold(pval float64) float64 {
	return memoizedThreshold.(func(float64) float64)(pval)
}

// A chi square with 1 df is the square of a standard normal, so the upper
// quantile at pval is the square of the normal quantile at pval/2. Working in
// the normal tail keeps precision for genome-wide thresholds, where 1-pval
// would round.
func threshold(pval float64) float64 {
	z := distuv.UnitNormal.Quantile(pval / 2)
	return z * z
}

// NCP is the non-centrality parameter of the association test statistic for a
// variant explaining qsq of the trait variance in n samples.
func NCP(n, qsq float64) float64 {
	return n * qsq / (1 - qsq)
}

// UpperTail is P(Y > x) for Y ~ NonCentralChiSquare(df=1, ncp). The result is
// null when ncp is negative or not finite.
func UpperTail(x, ncp float64) null.Float {
	if math.IsNaN(ncp) || math.IsInf(ncp, 0) || ncp < 0 {
		return null.Float{}
	}

	// Y = (Z + sqrt(ncp))^2, so Y > x when Z > sqrt(x)-mu or Z < -sqrt(x)-mu.
	// Both tails go through CDF, which gonum builds on Erfc; Survival is
	// 1-Erf and loses everything past about 8 standard deviations.
	mu := math.Sqrt(ncp)
	s := math.Sqrt(x)
	p := distuv.UnitNormal.CDF(mu-s) + distuv.UnitNormal.CDF(-s-mu)

	return null.FloatFrom(math.Min(p, 1))
}

// qsqFunc yields the fraction of variance explained at grid position (i, j).
type qsqFunc func(i, j int) float64

// fill evaluates every cell of g. n may vary by row, which is how the sample
// size design is expressed; the other designs pass a constant.
func fill(g *Grid, n func(i int) float64, qsq qsqFunc, pval float64) {
	x := Threshold(pval)

	workers := runtime.GOMAXPROCS(0)
	if workers > g.Rows() {
		workers = g.Rows()
	}

	rows := make(chan int)
	var pool sync.WaitGroup
	for w := 0; w < workers; w++ {
		pool.Add(1)
		go func() {
			defer pool.Done()
			for i := range rows {
				ni := n(i)
				for j := range g.Cells[i] {
					g.Cells[i][j] = UpperTail(x, NCP(ni, qsq(i, j)))
				}
			}
		}()
	}

	for i := 0; i < g.Rows(); i++ {
		rows <- i
	}
	close(rows)
	pool.Wait()
}
