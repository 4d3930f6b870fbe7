package power

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is matched by every InvalidParameterError via errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError names the argument that failed validation. It is
// returned before any power is computed.
type InvalidParameterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
	}

	return fmt.Sprintf("invalid parameter %q (%s): %s", e.Param, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalid(param string, value float64, reason string) error {
	return &InvalidParameterError{
		Param:  param,
		Value:  fmt.Sprintf("%g", value),
		Reason: reason,
	}
}

func invalidAt(param string, idx int, value float64, reason string) error {
	return invalid(fmt.Sprintf("%s[%d]", param, idx), value, reason)
}

// interval describes an allowed range. Open bounds exclude the endpoint.
type interval struct {
	min, max         float64
	openMin, openMax bool
}

var (
	nonNegative = interval{min: 0, max: math.Inf(1), openMax: true}
	anyFinite   = interval{min: math.Inf(-1), max: math.Inf(1), openMin: true, openMax: true}
	unit        = interval{min: 0, max: 1}
	openUnit    = interval{min: 0, max: 1, openMin: true, openMax: true}
	minorAllele = interval{min: 0, max: 0.5}
)

func (r interval) contains(v float64) bool {
	if r.openMin && v <= r.min || !r.openMin && v < r.min {
		return false
	}
	if r.openMax && v >= r.max || !r.openMax && v > r.max {
		return false
	}

	return true
}

func (r interval) String() string {
	lo, hi := "[", "]"
	if r.openMin {
		lo = "("
	}
	if r.openMax {
		hi = ")"
	}

	return fmt.Sprintf("%s%g, %g%s", lo, r.min, r.max, hi)
}

func checkScalar(param string, v float64, r interval) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(param, v, "must be finite")
	}
	if !r.contains(v) {
		return invalid(param, v, "must be in "+r.String())
	}

	return nil
}

func checkVector(param string, v []float64, r interval) error {
	if v == nil {
		return &InvalidParameterError{Param: param, Reason: "is required"}
	}
	if len(v) == 0 {
		return &InvalidParameterError{Param: param, Reason: "must contain at least one value"}
	}

	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return invalidAt(param, i, x, "must be finite")
		}
		if !r.contains(x) {
			return invalidAt(param, i, x, "must be in "+r.String())
		}
	}

	return nil
}

func checkPValue(pval float64) error {
	return checkScalar("pval", pval, openUnit)
}
