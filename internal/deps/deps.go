// Package deps implements the pre-run and post-run checks around a producer:
// do its declared inputs exist before it runs, and did it actually produce
// sane values for its declared outputs afterwards.
//
// Nothing here orders or invokes producers. The checks return issue lists
// instead of failing, so the orchestrator can decide whether a missing
// computed value means "run its producer first" or "abort".
package deps

import (
	"fmt"
	"math"
	"sort"

	"github.com/vk/theoryreg/internal/entry"
)

// Store is the read-only slice of the registry this package needs.
// *registry.Registry satisfies it.
type Store interface {
	HasParameter(path string) bool
	Entry(path string) (entry.Parameter, bool)
}

// Kind discriminates dependency and output issues.
type Kind string

const (
	// MissingConstant: a declared established constant is absent. The run
	// cannot proceed until the constant set is seeded.
	MissingConstant Kind = "missing_constant"
	// MissingComputed: a computed input is absent; its producer has not run.
	MissingComputed Kind = "missing_computed"
	// MissingOutput: the producer declared an output it did not produce.
	MissingOutput Kind = "missing_output"
	// NumericInvalid: a produced numeric value is NaN or infinite.
	NumericInvalid Kind = "numeric_invalid"
	// Inconsistent: a produced value disagrees with a pre-existing stored
	// value for the same path beyond the shared relative tolerance.
	Inconsistent Kind = "inconsistent"
)

// Issue is one finding from a dependency or output check.
type Issue struct {
	Kind   Kind
	Path   string
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Kind, i.Path, i.Detail)
}

// Input is one required input as a producer declares it. Established marks
// inputs expected to be externally seeded constants, which changes the issue
// kind reported when they are missing.
type Input struct {
	Path        string
	Established bool
}

// CheckDependencies verifies every required input exists in the store before
// a producer runs. Missing established constants and missing computed values
// are reported as distinct kinds so the orchestrator can retry or abort
// appropriately.
func CheckDependencies(required []Input, store Store) []Issue {
	var issues []Issue
	for _, in := range required {
		if store.HasParameter(in.Path) {
			continue
		}
		if in.Established {
			issues = append(issues, Issue{
				Kind:   MissingConstant,
				Path:   in.Path,
				Detail: "established constant not seeded",
			})
			continue
		}
		issues = append(issues, Issue{
			Kind:   MissingComputed,
			Path:   in.Path,
			Detail: "computed value absent, run its producer first",
		})
	}
	return issues
}

// CheckOutputs verifies a producer's run result against its declaration:
// every expected path must be present in the produced map, produced numeric
// values must be finite, and values for paths that already exist in the
// store must agree with the stored value within entry.RelTolerance. The last
// check is a cross-producer consistency guard, independent of the overwrite
// tolerance applied inside the registry.
func CheckOutputs(expected []string, produced map[string]any, store Store) []Issue {
	var issues []Issue

	for _, path := range expected {
		if _, ok := produced[path]; !ok {
			issues = append(issues, Issue{
				Kind:   MissingOutput,
				Path:   path,
				Detail: "declared output was not produced",
			})
		}
	}

	paths := make([]string, 0, len(produced))
	for path := range produced {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		value := produced[path]
		f, numeric := entry.AsFloat(value)
		if numeric && (math.IsNaN(f) || math.IsInf(f, 0)) {
			issues = append(issues, Issue{
				Kind:   NumericInvalid,
				Path:   path,
				Detail: fmt.Sprintf("produced value is %v", f),
			})
			continue
		}

		prior, ok := store.Entry(path)
		if !ok {
			continue
		}
		if !entry.Equivalent(prior.Value, value) {
			issues = append(issues, Issue{
				Kind: Inconsistent,
				Path: path,
				Detail: fmt.Sprintf("produced %v disagrees with stored %v from %s",
					value, prior.Value, prior.Source),
			})
		}
	}

	return issues
}
