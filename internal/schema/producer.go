package schema

import (
	"github.com/vk/theoryreg/internal/manifest"
)

// ValidateProducer runs every fixed constraint set over one producer
// declaration: its metadata, each formula definition, and each parameter
// definition. It additionally errors when a formula declares output paths
// that are not a subset of the producer's declared outputs, since that means
// the manifest promises a relation the producer will never store.
func ValidateProducer(p *manifest.Producer) Result {
	result := Result{Passed: true}

	result.merge(ProducerMeta.Validate(p.MetaFields()))

	declared := make(map[string]struct{}, len(p.OutputParams))
	for _, path := range p.OutputParams {
		declared[path] = struct{}{}
	}

	for _, f := range p.Formulas {
		result.merge(FormulaDef.Validate(manifest.FormulaFields(f)))
		for _, out := range f.Outputs {
			if _, ok := declared[out]; !ok {
				result.errorf("producer %q: formula %q output %q not among declared producer outputs",
					p.Name, f.ID, out)
			}
		}
	}

	for _, def := range p.Parameters {
		result.merge(ParameterDef.Validate(manifest.ParameterFields(def)))
	}

	return result
}
