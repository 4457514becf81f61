package registry

import (
	"context"

	"github.com/vk/theoryreg/internal/ctxlog"
	"github.com/vk/theoryreg/internal/entry"
)

// AddFormula upserts a formula by id. Redefining an existing id is allowed
// but logged, since it usually means two producers disagree about ownership.
func (r *Registry) AddFormula(ctx context.Context, f entry.Formula) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.formulas[f.ID]; exists {
		ctxlog.FromContext(ctx).Warn("formula redefined", "id", f.ID)
	}
	r.formulas[f.ID] = f
}

// Formula returns the formula stored under id, and whether it exists.
func (r *Registry) Formula(id string) (entry.Formula, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formulas[id]
	return f, ok
}

// HasFormula reports whether a formula is stored under id.
func (r *Registry) HasFormula(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.formulas[id]
	return ok
}
