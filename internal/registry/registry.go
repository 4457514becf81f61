package registry

import (
	"sync"

	"github.com/vk/theoryreg/internal/entry"
)

// Registry holds every parameter, formula, and section written during one
// pipeline run, plus the provenance and mismatch logs. All structures are
// created lazily on first write and live for the lifetime of the instance.
type Registry struct {
	mu         sync.RWMutex
	parameters map[string]entry.Parameter
	formulas   map[string]entry.Formula
	sections   map[string]entry.Section
	provenance map[string][]string
	mismatches []entry.Mismatch
}

// New creates an empty registry. The composition root should call this once
// and hand the instance to every producer.
func New() *Registry {
	return &Registry{
		parameters: make(map[string]entry.Parameter),
		formulas:   make(map[string]entry.Formula),
		sections:   make(map[string]entry.Section),
		provenance: make(map[string][]string),
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the lazily constructed process-wide registry. Prefer
// passing a registry from New explicitly; Default exists for entry points
// that have no composition root.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// Reset clears all four structures atomically. It exists for tests only and
// must never be called while producers are writing.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parameters = make(map[string]entry.Parameter)
	r.formulas = make(map[string]entry.Formula)
	r.sections = make(map[string]entry.Section)
	r.provenance = make(map[string][]string)
	r.mismatches = nil
}
