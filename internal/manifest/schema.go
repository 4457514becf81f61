package manifest

import "github.com/zclconf/go-cty/cty"

// file is the top-level HCL structure of one manifest file.
type file struct {
	Producers []*producerBlock `hcl:"producer,block"`
}

// producerBlock is a `producer "<name>" { ... }` block.
type producerBlock struct {
	Name           string            `hcl:"name,label"`
	Metadata       *metadataBlock    `hcl:"metadata,block"`
	RequiredInputs []*requiredInput  `hcl:"required_input,block"`
	Outputs        []*outputBlock    `hcl:"output,block"`
	OutputFormulas []string          `hcl:"output_formulas,optional"`
	Formulas       []*formulaBlock   `hcl:"formula,block"`
	Parameters     []*parameterBlock `hcl:"parameter,block"`
}

// metadataBlock carries the producer's descriptive metadata, validated by the
// schema package before a pipeline run.
type metadataBlock struct {
	Title       string `hcl:"title"`
	Description string `hcl:"description,optional"`
	Category    string `hcl:"category"`
	Version     string `hcl:"version,optional"`
}

// requiredInput declares one parameter path the producer reads. Established
// marks paths expected to be externally seeded constants.
type requiredInput struct {
	Path        string `hcl:"path,label"`
	Established bool   `hcl:"established,optional"`
}

// outputBlock declares one parameter path the producer promises to write.
type outputBlock struct {
	Path string `hcl:"path,label"`
}

// formulaBlock is a `formula "<id>" { ... }` definition.
type formulaBlock struct {
	ID          string            `hcl:"id,label"`
	Label       string            `hcl:"label,optional"`
	Expression  string            `hcl:"expression"`
	Description string            `hcl:"description,optional"`
	Category    string            `hcl:"category,optional"`
	Inputs      []string          `hcl:"inputs,optional"`
	Outputs     []string          `hcl:"outputs,optional"`
	Glossary    map[string]string `hcl:"glossary,optional"`
	Derivation  *derivationBlock  `hcl:"derivation,block"`
}

// derivationBlock is the optional derivation trace of a formula.
type derivationBlock struct {
	Method  string   `hcl:"method"`
	Steps   []string `hcl:"steps,optional"`
	Parents []string `hcl:"parents,optional"`
}

// parameterBlock is a `parameter "<path>" { ... }` definition. Value uses
// cty.Value because a parameter may be numeric, boolean, or string; the
// translator converts it to a native Go value.
type parameterBlock struct {
	Path        string           `hcl:"path,label"`
	Status      string           `hcl:"status"`
	Source      string           `hcl:"source"`
	Value       cty.Value        `hcl:"value,optional"`
	Uncertainty *float64         `hcl:"uncertainty,optional"`
	Description string           `hcl:"description,optional"`
	Units       string           `hcl:"units,optional"`
	Experiment  *experimentBlock `hcl:"experiment,block"`
}

// experimentBlock is the experimental reference attached to a parameter.
type experimentBlock struct {
	Value       float64  `hcl:"value"`
	Uncertainty *float64 `hcl:"uncertainty,optional"`
	Source      string   `hcl:"source,optional"`
	Bound       string   `hcl:"bound,optional"`
}
