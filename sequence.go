package gwaspower

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/carbocation/gwaspower/power"
)

// maxSequenceLength bounds the values a from:to:by range may expand to.
const maxSequenceLength = 1 << 20

// ParseSequence reads an axis of values for the parameter named param. It
// accepts a comma-separated list ("0.1,0.2,0.5") or an inclusive range written
// from:to:by ("1000:5000:1000"). Values keep the order in which they are
// written. Only the syntax is checked here; domain checks happen in the power
// package.
func ParseSequence(param, s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &power.InvalidParameterError{Param: param, Reason: "is required"}
	}

	if strings.Contains(s, ":") {
		return parseRange(param, s)
	}

	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := parseFloat(param, field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func parseRange(param, s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, &power.InvalidParameterError{Param: param, Value: s, Reason: "ranges must be written from:to:by"}
	}

	var bounds [3]float64
	for i, part := range parts {
		v, err := parseFloat(param, part)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &power.InvalidParameterError{Param: param, Value: s, Reason: "range bounds and step must be finite"}
		}
		bounds[i] = v
	}
	from, to, by := bounds[0], bounds[1], bounds[2]

	if by == 0 || (to-from)/by < 0 {
		return nil, &power.InvalidParameterError{Param: param, Value: s, Reason: "step must be nonzero and move from the start towards the end"}
	}

	// Allow for accumulated rounding so the end point is included.
	steps := math.Floor((to-from)/by + 1e-9)
	if math.IsNaN(steps) || math.IsInf(steps, 0) || steps+1 > maxSequenceLength {
		return nil, &power.InvalidParameterError{Param: param, Value: s, Reason: fmt.Sprintf("range would produce more than %d values", maxSequenceLength)}
	}

	out := make([]float64, 0, int(steps)+1)
	for i := 0; i <= int(steps); i++ {
		// Multiplying rather than accumulating keeps 0.1:0.5:0.1 from
		// drifting past 0.5.
		out = append(out, roundTo(from+float64(i)*by, by))
	}

	return out, nil
}

// roundTo trims floating point noise below the precision of step.
func roundTo(v, step float64) float64 {
	digits := 12 - math.Floor(math.Log10(math.Abs(step)))
	if digits < 0 || digits > 300 {
		return v
	}
	scale := math.Pow(10, digits)

	return math.Round(v*scale) / scale
}

// ParseScalar reads a single value for the parameter named param. A sequence
// where a scalar is required is rejected.
func ParseScalar(param, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &power.InvalidParameterError{Param: param, Reason: "is required"}
	}
	if strings.ContainsAny(s, ",:") {
		return 0, &power.InvalidParameterError{Param: param, Value: s, Reason: "must be a single value, not a sequence"}
	}

	return parseFloat(param, s)
}

func parseFloat(param, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &power.InvalidParameterError{Param: param, Value: strings.TrimSpace(s), Reason: "is not a number"}
	}

	return v, nil
}
