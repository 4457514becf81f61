package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vk/theoryreg/internal/ctxlog"
	"github.com/vk/theoryreg/internal/entry"
	"github.com/vk/theoryreg/internal/validation"
)

// Write describes one parameter write. Path, Value, and Source are required;
// a zero Status defaults to DERIVED.
type Write struct {
	Path        string
	Value       any
	Source      string
	Uncertainty *float64
	Status      entry.Status
	Metadata    map[string]any
	Experiment  *entry.Experiment
}

// HasParameter reports whether a value has ever been written at path.
func (r *Registry) HasParameter(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.parameters[path]
	return ok
}

// Parameter returns the value stored at path, or ErrNotFound.
func (r *Registry) Parameter(path string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parameters[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return p.Value, nil
}

// ParameterOr returns the value stored at path, or def when absent. It never
// fails.
func (r *Registry) ParameterOr(path string, def any) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parameters[path]
	if !ok {
		return def
	}
	return p.Value
}

// Entry returns a deep copy of the full record at path, including metadata
// and validation fields, and whether it exists. Mutating the returned record
// does not affect the store.
func (r *Registry) Entry(path string) (entry.Parameter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parameters[path]
	return p.Clone(), ok
}

// SetParameter upserts one parameter. The whole sequence (immutability check,
// tolerance comparison, mismatch append, validation, upsert, provenance
// append) runs under the write lock, so concurrent producers cannot
// interleave inside it.
//
// Writing over an ESTABLISHED entry from a source that is not itself an
// established reference fails with ErrImmutable and leaves the store
// unchanged. Any other overwrite that differs from the prior value by more
// than entry.RelTolerance appends a mismatch record and proceeds.
//
// Every stored entry carries a validation block: NO_DATA with no sigma when
// the write has no experimental reference (or a non-numeric value), the
// computed comparison otherwise.
func (r *Registry) SetParameter(ctx context.Context, w Write) error {
	logger := ctxlog.FromContext(ctx)

	status := w.Status
	if status == "" {
		status = entry.StatusDerived
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old, exists := r.parameters[w.Path]
	if exists {
		if old.Status == entry.StatusEstablished && !entry.EstablishedSource(w.Source) {
			return fmt.Errorf("%w: %s (source %q)", ErrImmutable, w.Path, w.Source)
		}
		if !entry.Equivalent(old.Value, w.Value) {
			m := entry.Mismatch{
				ID:        uuid.NewString(),
				Path:      w.Path,
				OldValue:  old.Value,
				OldSource: old.Source,
				NewValue:  w.Value,
				NewSource: w.Source,
				Time:      time.Now(),
			}
			r.mismatches = append(r.mismatches, m)
			logger.Warn("parameter overwrite beyond tolerance",
				"path", w.Path,
				"old_value", old.Value, "old_source", old.Source,
				"new_value", w.Value, "new_source", w.Source)
		}
	}

	p := entry.Parameter{
		Path:        w.Path,
		Value:       w.Value,
		Source:      w.Source,
		Uncertainty: w.Uncertainty,
		Status:      status,
		CreatedAt:   time.Now(),
		Metadata:    w.Metadata,
		Experiment:  w.Experiment,
	}
	if exists {
		p.CreatedAt = old.CreatedAt
	}
	v := entry.Validation{Status: entry.ValidationNoData}
	if w.Experiment != nil {
		if theory, ok := entry.AsFloat(w.Value); ok {
			v = validation.Compute(theory, w.Experiment)
		}
	}
	p.Validation = &v

	r.parameters[w.Path] = p
	r.provenance[w.Path] = append(r.provenance[w.Path], w.Source)
	return nil
}
