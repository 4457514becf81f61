// Package schema validates producer-declared metadata, formula definitions,
// and parameter definitions against fixed structural constraint tables.
//
// Validation never fails hard: it aggregates findings into a Result. Missing
// required fields, type mismatches, enum violations, and under-length strings
// are errors; pattern mismatches are warnings only, because free-text fields
// are heterogeneous by nature. The orchestrator decides whether errors block
// a pipeline run.
package schema

import (
	"fmt"
	"regexp"
)

// FieldType is the expected type of one declared field.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeNumber FieldType = "number"
	TypeBool   FieldType = "bool"
	TypeList   FieldType = "list"
	TypeMap    FieldType = "map"
)

// Accepts reports whether a field value satisfies the expected type.
func (t FieldType) Accepts(v any) bool {
	switch t {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeNumber:
		switch v.(type) {
		case float64, float32, int, int64, uint64:
			return true
		}
		return false
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeList:
		switch v.(type) {
		case []string, []any:
			return true
		}
		return false
	case TypeMap:
		switch v.(type) {
		case map[string]string, map[string]any:
			return true
		}
		return false
	default:
		return false
	}
}

// Constraint describes the checks applied to one field.
type Constraint struct {
	// Field is the field name in the validated mapping.
	Field string
	// Type is the expected field type.
	Type FieldType
	// Required makes absence an error.
	Required bool
	// Enum restricts string fields to a fixed set of values.
	Enum []string
	// Pattern, when set, is checked against string fields. A mismatch is a
	// warning, not an error.
	Pattern *regexp.Regexp
	// MinLen is the minimum length for string fields. Zero disables it.
	MinLen int
}

// ConstraintSet is a named table of field constraints for one record type.
type ConstraintSet struct {
	Name        string
	Constraints []Constraint
}

// Result aggregates the findings of one validation pass.
type Result struct {
	Passed   bool
	Errors   []string
	Warnings []string
}

// merge folds another result into this one.
func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Passed = r.Passed && other.Passed
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Passed = false
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks a field-name to value mapping against the constraint set.
func (s ConstraintSet) Validate(fields map[string]any) Result {
	result := Result{Passed: true}

	for _, c := range s.Constraints {
		value, present := fields[c.Field]
		if !present {
			if c.Required {
				result.errorf("%s: missing required field %q", s.Name, c.Field)
			}
			continue
		}

		if !c.Type.Accepts(value) {
			result.errorf("%s: field %q expects %s, got %T", s.Name, c.Field, c.Type, value)
			continue
		}

		str, isStr := value.(string)
		if !isStr {
			continue
		}
		if len(c.Enum) > 0 && !contains(c.Enum, str) {
			result.errorf("%s: field %q value %q not in %v", s.Name, c.Field, str, c.Enum)
			continue
		}
		if c.MinLen > 0 && len(str) < c.MinLen {
			result.errorf("%s: field %q shorter than %d characters", s.Name, c.Field, c.MinLen)
			continue
		}
		if c.Pattern != nil && !c.Pattern.MatchString(str) {
			result.warnf("%s: field %q value %q does not match %s", s.Name, c.Field, str, c.Pattern)
		}
	}

	return result
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
