// Package export flattens the registry into plain maps for the downstream
// document renderer.
//
// Every transform here is read-only and total: whatever the store holds,
// including NaN values or inconsistent entries, is rendered as-is. Validation
// exists for observability, not to gate rendering, so nothing in this package
// returns an error or panics.
//
// Section records carry several fields under two naming conventions at once
// (compact and underscored) because the renderer has historically accepted
// either; both spellings must be kept in sync.
package export

import (
	"strconv"
	"strings"

	"github.com/vk/theoryreg/internal/entry"
)

// Source is the read-only slice of the registry this package consumes.
// *registry.Registry satisfies it.
type Source interface {
	Parameters() map[string]entry.Parameter
	Formulas() map[string]entry.Formula
	Sections() map[string]entry.Section
	ProvenanceMap() map[string][]string
}

// Parameters denormalizes every stored parameter into one flat record per
// path.
func Parameters(src Source) map[string]map[string]any {
	out := make(map[string]map[string]any)
	for path, p := range src.Parameters() {
		rec := map[string]any{
			"value":     p.Value,
			"source":    p.Source,
			"status":    string(p.Status),
			"timestamp": p.CreatedAt,
		}
		if p.Uncertainty != nil {
			rec["uncertainty"] = *p.Uncertainty
		}
		if len(p.Metadata) > 0 {
			rec["metadata"] = p.Metadata
		}
		if p.Experiment != nil {
			rec["experimental_value"] = p.Experiment.Value
			if p.Experiment.Uncertainty != nil {
				rec["experimental_uncertainty"] = *p.Experiment.Uncertainty
			}
			if p.Experiment.Source != "" {
				rec["experimental_source"] = p.Experiment.Source
			}
			rec["bound_type"] = string(p.Experiment.Bound)
		}
		if p.Validation != nil {
			if p.Validation.Sigma != nil {
				rec["sigma_deviation"] = *p.Validation.Sigma
			}
			rec["validation_status"] = string(p.Validation.Status)
		}
		out[path] = rec
	}
	return out
}

// Formulas denormalizes every stored formula. The record always carries a
// display title: the label when one was set, otherwise the first sentence of
// the description.
func Formulas(src Source) map[string]map[string]any {
	out := make(map[string]map[string]any)
	for id, f := range src.Formulas() {
		rec := map[string]any{
			"id":         f.ID,
			"title":      displayTitle(f),
			"expression": f.Expression,
		}
		if f.Label != "" {
			rec["label"] = f.Label
		}
		if f.Description != "" {
			rec["description"] = f.Description
		}
		if f.Category != "" {
			rec["category"] = f.Category
		}
		if f.Inputs != nil {
			rec["inputs"] = f.Inputs
		}
		if f.Outputs != nil {
			rec["outputs"] = f.Outputs
		}
		if f.Derivation != nil {
			rec["derivation_method"] = f.Derivation.Method
			rec["derivation_steps"] = f.Derivation.Steps
			rec["parent_formulas"] = f.Derivation.Parents
		}
		if len(f.Glossary) > 0 {
			rec["glossary"] = f.Glossary
		}
		out[id] = rec
	}
	return out
}

// Sections denormalizes every stored section and computes its display order.
// Reference lists and content blocks are emitted under both the compact and
// the underscored field name.
func Sections(src Source) map[string]map[string]any {
	out := make(map[string]map[string]any)
	for key, s := range src.Sections() {
		blocks := flattenBlocks(s.Blocks)
		rec := map[string]any{
			"key":            key,
			"section_id":     s.SectionID,
			"title":          s.Title,
			"abstract":       s.Abstract,
			"order":          displayOrder(key),
			"appendix":       s.Appendix,
			"isAppendix":     s.Appendix,
			"contentBlocks":  blocks,
			"content_blocks": blocks,
			"formulaRefs":    s.FormulaRefs,
			"formula_refs":   s.FormulaRefs,
			"paramRefs":      s.ParamRefs,
			"param_refs":     s.ParamRefs,
		}
		if s.SubsectionID != "" {
			rec["subsection_id"] = s.SubsectionID
		}
		out[key] = rec
	}
	return out
}

// Provenance returns the full provenance log: ordered source lists per path.
func Provenance(src Source) map[string][]string {
	return src.ProvenanceMap()
}

// displayOrder computes the renderer's sort key for a section: its numeric
// id when the key is purely numeric, 100 onward for lettered appendices, and
// 99 for anything else.
func displayOrder(key string) int {
	if n, err := strconv.Atoi(key); err == nil {
		return n
	}
	if len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z' {
		return 100 + int(key[0]-'A')
	}
	return 99
}

// displayTitle prefers the explicit label and falls back to the first
// sentence of the description.
func displayTitle(f entry.Formula) string {
	if f.Label != "" {
		return f.Label
	}
	desc := strings.TrimSpace(f.Description)
	if desc == "" {
		return f.ID
	}
	if i := strings.Index(desc, ". "); i >= 0 {
		return desc[:i]
	}
	return strings.TrimSuffix(desc, ".")
}

// flattenBlocks renders content blocks as generic maps, emitting only the
// fields relevant to each block type alongside its type tag.
func flattenBlocks(blocks []entry.Block) []map[string]any {
	out := make([]map[string]any, 0, len(blocks))
	for _, b := range blocks {
		rec := map[string]any{"type": string(b.Type)}
		switch b.Type {
		case entry.BlockHeading:
			rec["text"] = b.Text
			rec["level"] = b.Level
		case entry.BlockParagraph:
			rec["text"] = b.Text
		case entry.BlockFormula:
			rec["formula_id"] = b.FormulaID
		case entry.BlockList:
			rec["items"] = b.Items
		case entry.BlockTable:
			rec["headers"] = b.Headers
			rec["rows"] = b.Rows
		case entry.BlockCallout:
			rec["text"] = b.Text
			rec["style"] = b.Style
		}
		out = append(out, rec)
	}
	return out
}
