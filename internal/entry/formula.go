package entry

// Derivation records how a formula was obtained.
type Derivation struct {
	// Method names the derivation technique, e.g. "two_loop_rge".
	Method string
	// Steps is the ordered list of derivation step descriptions.
	Steps []string
	// Parents lists the ids of formulas this one was derived from.
	Parents []string
}

// Formula is a symbolic relation between stored parameters.
type Formula struct {
	// ID is the unique namespaced identifier, e.g. "gauge.rge_two_loop".
	ID string
	// Label is a short human-readable name. Optional; the export layer falls
	// back to the first sentence of Description.
	Label string
	// Expression is the symbolic form, e.g. "M_GUT = M_Z * exp(2*pi*Delta/b)".
	Expression string
	// Description is a plain-text explanation.
	Description string
	// Category groups formulas for the renderer, e.g. "gauge".
	Category string
	// Inputs is the ordered list of parameter paths the formula consumes.
	Inputs []string
	// Outputs is the ordered list of parameter paths the formula defines.
	Outputs []string
	// Derivation is the optional derivation trace.
	Derivation *Derivation
	// Glossary maps each symbol in Expression to its meaning.
	Glossary map[string]string
}
