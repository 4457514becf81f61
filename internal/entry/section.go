package entry

// BlockType discriminates the kinds of content block a section may carry.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockFormula   BlockType = "formula"
	BlockList      BlockType = "list"
	BlockTable     BlockType = "table"
	BlockCallout   BlockType = "callout"
)

// Block is one unit of narrative content inside a section. Only the fields
// relevant to its Type are populated.
type Block struct {
	Type BlockType
	// Text is the body for heading, paragraph, and callout blocks.
	Text string
	// Level is the heading depth for heading blocks.
	Level int
	// FormulaID references a stored formula for formula blocks.
	FormulaID string
	// Items holds the entries of a list block.
	Items []string
	// Headers and Rows hold table blocks.
	Headers []string
	Rows    [][]string
	// Style tags callout blocks, e.g. "note" or "warning".
	Style string
}

// Section is one document section or appendix.
type Section struct {
	// SectionID is the numeric section identifier, as a string, e.g. "7".
	SectionID string
	// SubsectionID is the lettered appendix identifier, e.g. "B". Appendices
	// share a numeric section, so the subsection letter is what makes an
	// appendix unique.
	SubsectionID string
	// Title and Abstract head the rendered section.
	Title    string
	Abstract string
	// Blocks is the ordered narrative content.
	Blocks []Block
	// FormulaRefs lists the formula ids referenced by this section.
	FormulaRefs []string
	// ParamRefs lists the parameter paths referenced by this section.
	ParamRefs []string
	// Appendix marks lettered appendix sections.
	Appendix bool
}

// Key returns the identifier the registry stores this section under: the
// subsection letter for appendices that carry one, the numeric id otherwise.
func (s Section) Key() string {
	if s.Appendix && s.SubsectionID != "" {
		return s.SubsectionID
	}
	return s.SectionID
}
