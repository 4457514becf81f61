package registry

import "github.com/vk/theoryreg/internal/entry"

// Parameters returns a snapshot of every stored parameter record, deep-copied
// so consumers cannot reach store internals. The export layer and the bound
// scanner read through this so they never hold the lock while transforming.
func (r *Registry) Parameters() map[string]entry.Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]entry.Parameter, len(r.parameters))
	for k, v := range r.parameters {
		out[k] = v.Clone()
	}
	return out
}

// Formulas returns a snapshot copy of every stored formula.
func (r *Registry) Formulas() map[string]entry.Formula {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]entry.Formula, len(r.formulas))
	for k, v := range r.formulas {
		out[k] = v
	}
	return out
}

// Sections returns a snapshot copy of every stored section, keyed as stored.
func (r *Registry) Sections() map[string]entry.Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]entry.Section, len(r.sections))
	for k, v := range r.sections {
		out[k] = v
	}
	return out
}

// Provenance returns the ordered list of sources that have written path.
func (r *Registry) Provenance(path string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.provenance[path]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// ProvenanceMap returns a snapshot of the full provenance log.
func (r *Registry) ProvenanceMap() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]string, len(r.provenance))
	for k, v := range r.provenance {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// Mismatches returns a snapshot of the mismatch log, in append order.
func (r *Registry) Mismatches() []entry.Mismatch {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entry.Mismatch, len(r.mismatches))
	copy(out, r.mismatches)
	return out
}
