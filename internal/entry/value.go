package entry

import (
	"math"
	"strings"
)

// RelTolerance is the relative tolerance applied whenever two numeric values
// for the same parameter path are compared: the overwrite check inside the
// registry and the cross-producer consistency check in the output tracker
// both use this single constant.
const RelTolerance = 0.01

// EstablishedPrefix marks a source identifier as an external citation rather
// than a producer id, e.g. "ESTABLISHED:PDG2024".
const EstablishedPrefix = "ESTABLISHED:"

// EstablishedSource reports whether a source identifier denotes an
// established external reference.
func EstablishedSource(source string) bool {
	return strings.HasPrefix(source, EstablishedPrefix)
}

// AsFloat coerces a stored value to float64. It accepts the numeric kinds a
// producer can realistically hand us; everything else reports false.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Equivalent reports whether a new value is an acceptable overwrite of an old
// one. Two numeric values are equivalent when the new value lies within
// RelTolerance of the old, relative to the old value; a prior value of
// exactly zero admits only another zero. Non-numeric values (and mixed
// numeric/non-numeric pairs) are compared by exact equality.
func Equivalent(oldVal, newVal any) bool {
	oldF, oldOK := AsFloat(oldVal)
	newF, newOK := AsFloat(newVal)
	if oldOK && newOK {
		if math.IsNaN(oldF) || math.IsNaN(newF) {
			return false
		}
		if oldF == 0 {
			return newF == 0
		}
		return math.Abs(newF-oldF) <= RelTolerance*math.Abs(oldF)
	}
	if oldOK != newOK {
		return false
	}
	return oldVal == newVal
}
