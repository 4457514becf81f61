package validation

import (
	"sort"

	"github.com/vk/theoryreg/internal/entry"
)

// ParameterSource is the read-only slice of the registry this package needs.
// *registry.Registry satisfies it.
type ParameterSource interface {
	Parameters() map[string]entry.Parameter
}

// BoundViolation reports a derived or predicted value sitting on the wrong
// side of its one-sided experimental bound.
type BoundViolation struct {
	Path  string
	Value float64
	Bound float64
	Type  entry.BoundType
}

// AgainstBounds re-checks every DERIVED and PREDICTED entry that carries an
// upper or lower experimental bound, and returns the violations sorted by
// path. It never fails: non-numeric values and entries without bounds are
// skipped.
func AgainstBounds(src ParameterSource) []BoundViolation {
	var violations []BoundViolation
	for path, p := range src.Parameters() {
		if p.Status != entry.StatusDerived && p.Status != entry.StatusPredicted {
			continue
		}
		if p.Experiment == nil {
			continue
		}
		v, ok := entry.AsFloat(p.Value)
		if !ok {
			continue
		}

		switch p.Experiment.Bound {
		case entry.BoundLower:
			if v <= p.Experiment.Value {
				violations = append(violations, BoundViolation{
					Path: path, Value: v, Bound: p.Experiment.Value, Type: entry.BoundLower,
				})
			}
		case entry.BoundUpper:
			if v >= p.Experiment.Value {
				violations = append(violations, BoundViolation{
					Path: path, Value: v, Bound: p.Experiment.Value, Type: entry.BoundUpper,
				})
			}
		}
	}

	sort.Slice(violations, func(i, j int) bool { return violations[i].Path < violations[j].Path })
	return violations
}
