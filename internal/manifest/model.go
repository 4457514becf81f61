package manifest

import (
	"github.com/vk/theoryreg/internal/deps"
	"github.com/vk/theoryreg/internal/entry"
)

// Model is the format-agnostic representation of every loaded manifest.
type Model struct {
	Producers map[string]*Producer
}

// Producer is one declared producer: its metadata and the contract it makes
// with the registry.
type Producer struct {
	Name           string
	Meta           Meta
	RequiredInputs []deps.Input
	OutputParams   []string
	OutputFormulas []string
	Formulas       []entry.Formula
	Parameters     []ParameterDef
}

// Meta is the producer's descriptive metadata.
type Meta struct {
	Title       string
	Description string
	Category    string
	Version     string
}

// ParameterDef is a declared parameter definition. Definitions for
// ESTABLISHED constants carry a Value and are written into the registry by
// Seed; other definitions only document a path a producer will compute.
type ParameterDef struct {
	Path        string
	Status      entry.Status
	Source      string
	Value       any
	Uncertainty *float64
	Description string
	Units       string
	Experiment  *entry.Experiment
}

// MetaFields flattens the producer's metadata into the field map consumed by
// the schema validator. Empty fields are omitted so the validator's
// required-field check sees genuinely missing values.
func (p *Producer) MetaFields() map[string]any {
	fields := map[string]any{}
	put := func(k, v string) {
		if v != "" {
			fields[k] = v
		}
	}
	put("name", p.Name)
	put("title", p.Meta.Title)
	put("description", p.Meta.Description)
	put("category", p.Meta.Category)
	put("version", p.Meta.Version)
	return fields
}

// FormulaFields flattens one formula definition for the schema validator.
func FormulaFields(f entry.Formula) map[string]any {
	fields := map[string]any{"id": f.ID}
	if f.Label != "" {
		fields["label"] = f.Label
	}
	if f.Expression != "" {
		fields["expression"] = f.Expression
	}
	if f.Description != "" {
		fields["description"] = f.Description
	}
	if f.Category != "" {
		fields["category"] = f.Category
	}
	if f.Inputs != nil {
		fields["inputs"] = f.Inputs
	}
	if f.Outputs != nil {
		fields["outputs"] = f.Outputs
	}
	return fields
}

// ParameterFields flattens one parameter definition for the schema validator.
func ParameterFields(d ParameterDef) map[string]any {
	fields := map[string]any{"path": d.Path}
	if d.Status != "" {
		fields["status"] = string(d.Status)
	}
	if d.Source != "" {
		fields["source"] = d.Source
	}
	if d.Description != "" {
		fields["description"] = d.Description
	}
	if d.Units != "" {
		fields["units"] = d.Units
	}
	return fields
}
