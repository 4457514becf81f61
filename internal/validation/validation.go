// Package validation computes the statistical deviation between a stored
// theory value and its experimental reference, and classifies the result.
//
// Everything here is a pure function over entry types: the registry calls
// Compute inline during writes, and AgainstBounds re-scans a finished store
// for one-sided bound violations. Nothing in this package mutates state or
// returns an error; an impossible comparison degrades to NO_DATA.
package validation

import (
	"math"

	"github.com/vk/theoryreg/internal/entry"
)

// Sigma classification thresholds. Strict "<" comparisons: a deviation of
// exactly 3.0 sigma classifies as FAIL, not TENSION.
const (
	sigmaPass     = 1.0
	sigmaMarginal = 2.0
	sigmaTension  = 3.0
)

// Relative-error thresholds used when the reference quotes no uncertainty.
const (
	relPass     = 0.01
	relMarginal = 0.05
	relTension  = 0.10
)

// Compute compares a theory value against an experimental reference and
// returns the sigma deviation plus its classification.
//
// With a positive uncertainty the deviation is |theory-exp| in units of that
// uncertainty. Without one, the relative error |theory-exp|/|exp| is
// classified on coarser thresholds, and a reference value of zero yields
// NO_DATA since no relative scale exists. Upper and lower bounds are
// one-sided: the sigma reported is the relative margin to the bound. A nil
// reference yields NO_DATA with no sigma.
func Compute(theory float64, exp *entry.Experiment) entry.Validation {
	if exp == nil {
		return entry.Validation{Status: entry.ValidationNoData}
	}

	switch exp.Bound {
	case entry.BoundLower:
		return oneSided(theory, exp.Value, theory > exp.Value)
	case entry.BoundUpper:
		return oneSided(theory, exp.Value, theory < exp.Value)
	default:
		// measured, central_value, and range all compare central values.
		return central(theory, exp)
	}
}

// central handles measured/central_value/range references.
func central(theory float64, exp *entry.Experiment) entry.Validation {
	if exp.Uncertainty != nil && *exp.Uncertainty > 0 {
		sigma := math.Abs(theory-exp.Value) / *exp.Uncertainty
		return entry.Validation{Sigma: &sigma, Status: classifySigma(sigma)}
	}

	if exp.Value == 0 {
		return entry.Validation{Status: entry.ValidationNoData}
	}
	rel := math.Abs(theory-exp.Value) / math.Abs(exp.Value)
	return entry.Validation{Sigma: &rel, Status: classifyRelative(rel)}
}

// oneSided handles upper and lower bounds. The sigma is the relative margin
// between the value and the bound: excess for a pass, shortfall for a fail.
// A bound of exactly zero falls back to the absolute difference so the
// engine stays total.
func oneSided(theory, bound float64, pass bool) entry.Validation {
	denom := math.Abs(bound)
	if denom == 0 {
		denom = 1
	}
	margin := math.Abs(theory-bound) / denom
	status := entry.ValidationFail
	if pass {
		status = entry.ValidationPass
	}
	return entry.Validation{Sigma: &margin, Status: status}
}

func classifySigma(sigma float64) entry.ValidationStatus {
	switch {
	case sigma < sigmaPass:
		return entry.ValidationPass
	case sigma < sigmaMarginal:
		return entry.ValidationMarginal
	case sigma < sigmaTension:
		return entry.ValidationTension
	default:
		return entry.ValidationFail
	}
}

func classifyRelative(rel float64) entry.ValidationStatus {
	switch {
	case rel < relPass:
		return entry.ValidationPass
	case rel < relMarginal:
		return entry.ValidationMarginal
	case rel < relTension:
		return entry.ValidationTension
	default:
		return entry.ValidationFail
	}
}
