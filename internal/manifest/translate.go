package manifest

import (
	"fmt"

	"github.com/vk/theoryreg/internal/deps"
	"github.com/vk/theoryreg/internal/entry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateProducer converts the HCL-specific producer schema into the
// agnostic model.
func translateProducer(b *producerBlock) (*Producer, error) {
	p := &Producer{Name: b.Name}

	if b.Metadata != nil {
		p.Meta = Meta{
			Title:       b.Metadata.Title,
			Description: b.Metadata.Description,
			Category:    b.Metadata.Category,
			Version:     b.Metadata.Version,
		}
	}

	for _, in := range b.RequiredInputs {
		p.RequiredInputs = append(p.RequiredInputs, deps.Input{
			Path:        in.Path,
			Established: in.Established,
		})
	}
	for _, out := range b.Outputs {
		p.OutputParams = append(p.OutputParams, out.Path)
	}
	p.OutputFormulas = b.OutputFormulas

	for _, f := range b.Formulas {
		p.Formulas = append(p.Formulas, translateFormula(f))
	}

	for _, pb := range b.Parameters {
		def, err := translateParameter(pb)
		if err != nil {
			return nil, fmt.Errorf("producer %q: %w", b.Name, err)
		}
		p.Parameters = append(p.Parameters, def)
	}

	return p, nil
}

func translateFormula(b *formulaBlock) entry.Formula {
	f := entry.Formula{
		ID:          b.ID,
		Label:       b.Label,
		Expression:  b.Expression,
		Description: b.Description,
		Category:    b.Category,
		Inputs:      b.Inputs,
		Outputs:     b.Outputs,
		Glossary:    b.Glossary,
	}
	if b.Derivation != nil {
		f.Derivation = &entry.Derivation{
			Method:  b.Derivation.Method,
			Steps:   b.Derivation.Steps,
			Parents: b.Derivation.Parents,
		}
	}
	return f
}

func translateParameter(b *parameterBlock) (ParameterDef, error) {
	def := ParameterDef{
		Path:        b.Path,
		Status:      entry.Status(b.Status),
		Source:      b.Source,
		Uncertainty: b.Uncertainty,
		Description: b.Description,
		Units:       b.Units,
	}

	if !b.Value.IsNull() {
		v, err := nativeValue(b.Value)
		if err != nil {
			return def, fmt.Errorf("parameter %q: %w", b.Path, err)
		}
		def.Value = v
	}

	if b.Experiment != nil {
		bound := entry.BoundType(b.Experiment.Bound)
		if bound == "" {
			bound = entry.BoundMeasured
		}
		def.Experiment = &entry.Experiment{
			Value:       b.Experiment.Value,
			Uncertainty: b.Experiment.Uncertainty,
			Source:      b.Experiment.Source,
			Bound:       bound,
		}
	}

	return def, nil
}

// nativeValue converts a manifest cty.Value into the native Go value the
// registry stores: float64 for numbers, bool, or string.
func nativeValue(v cty.Value) (any, error) {
	ty := v.Type()
	switch {
	case ty.Equals(cty.Number):
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, err
		}
		return f, nil
	case ty.Equals(cty.Bool):
		return v.True(), nil
	case ty.Equals(cty.String):
		return v.AsString(), nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
