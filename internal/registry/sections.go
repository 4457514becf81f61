package registry

import (
	"context"

	"github.com/vk/theoryreg/internal/ctxlog"
	"github.com/vk/theoryreg/internal/entry"
)

// AddSection upserts a section under its Key: the subsection letter for
// appendices, the numeric section id otherwise. Collisions are allowed but
// logged.
func (r *Registry) AddSection(ctx context.Context, s entry.Section) {
	key := s.Key()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sections[key]; exists {
		ctxlog.FromContext(ctx).Warn("section redefined", "key", key)
	}
	r.sections[key] = s
}

// Section returns the section stored under key, and whether it exists.
func (r *Registry) Section(key string) (entry.Section, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sections[key]
	return s, ok
}

// HasSection reports whether a section is stored under key.
func (r *Registry) HasSection(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sections[key]
	return ok
}
