package manifest

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/theoryreg/internal/registry"
)

// Seed writes every declared parameter definition that carries a value into
// the registry, in deterministic order. This is how the pipeline's
// ESTABLISHED reference constants enter the store before any producer runs.
// Definitions without a value only document paths and are skipped.
func Seed(ctx context.Context, model *Model, reg *registry.Registry) error {
	names := make([]string, 0, len(model.Producers))
	for name := range model.Producers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := model.Producers[name]
		for _, def := range p.Parameters {
			if def.Value == nil {
				continue
			}
			w := registry.Write{
				Path:        def.Path,
				Value:       def.Value,
				Source:      def.Source,
				Uncertainty: def.Uncertainty,
				Status:      def.Status,
				Experiment:  def.Experiment,
			}
			if def.Description != "" || def.Units != "" {
				w.Metadata = map[string]any{}
				if def.Description != "" {
					w.Metadata["description"] = def.Description
				}
				if def.Units != "" {
					w.Metadata["units"] = def.Units
				}
			}
			if err := reg.SetParameter(ctx, w); err != nil {
				return fmt.Errorf("seeding %s from producer %q: %w", def.Path, name, err)
			}
		}
	}
	return nil
}
