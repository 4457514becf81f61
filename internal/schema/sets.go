package schema

import (
	"regexp"

	"github.com/vk/theoryreg/internal/entry"
)

// Categories a producer, formula, or parameter may declare.
var KnownCategories = []string{
	"constants",
	"geometry",
	"gauge",
	"fermion",
	"cosmology",
	"prediction",
	"framework",
}

var (
	namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	// dotted namespaced identifiers, e.g. "gauge.M_GUT" or "gauge.rge.two_loop".
	pathPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z0-9_]+)+$`)
)

func statusStrings() []string {
	out := make([]string, len(entry.KnownStatuses))
	for i, s := range entry.KnownStatuses {
		out[i] = string(s)
	}
	return out
}

// ProducerMeta is the constraint table for producer metadata.
var ProducerMeta = ConstraintSet{
	Name: "producer_metadata",
	Constraints: []Constraint{
		{Field: "name", Type: TypeString, Required: true, Pattern: namePattern},
		{Field: "title", Type: TypeString, Required: true, MinLen: 3},
		{Field: "description", Type: TypeString},
		{Field: "category", Type: TypeString, Required: true, Enum: KnownCategories},
		{Field: "version", Type: TypeString},
	},
}

// FormulaDef is the constraint table for formula definitions.
var FormulaDef = ConstraintSet{
	Name: "formula_definition",
	Constraints: []Constraint{
		{Field: "id", Type: TypeString, Required: true, Pattern: pathPattern},
		{Field: "label", Type: TypeString},
		{Field: "expression", Type: TypeString, Required: true, MinLen: 1},
		{Field: "description", Type: TypeString},
		{Field: "category", Type: TypeString, Enum: KnownCategories},
		{Field: "inputs", Type: TypeList},
		{Field: "outputs", Type: TypeList},
	},
}

// ParameterDef is the constraint table for parameter definitions.
var ParameterDef = ConstraintSet{
	Name: "parameter_definition",
	Constraints: []Constraint{
		{Field: "path", Type: TypeString, Required: true, Pattern: pathPattern},
		{Field: "status", Type: TypeString, Required: true, Enum: statusStrings()},
		{Field: "source", Type: TypeString, Required: true},
		{Field: "description", Type: TypeString},
		{Field: "units", Type: TypeString},
	},
}
