// Package geometry is an example producer supplying the combinatorial
// inputs of the visible sector, plus the narrative section describing them.
package geometry

import (
	"context"

	"github.com/vk/theoryreg/internal/deps"
	"github.com/vk/theoryreg/internal/entry"
	"github.com/vk/theoryreg/internal/producer"
	"github.com/vk/theoryreg/internal/registry"
)

// Producer implements producer.Producer.
type Producer struct{}

var _ producer.Producer = Producer{}

func (Producer) Name() string { return "visible_geometry" }

func (Producer) RequiredInputs() []deps.Input { return nil }

func (Producer) OutputParams() []string {
	return []string{"geometry.b3_visible"}
}

func (Producer) OutputFormulas() []string { return nil }

// Run records the beta coefficient fixed by the visible-sector geometry and
// registers the appendix that derives it.
func (p Producer) Run(ctx context.Context, reg *registry.Registry) (map[string]any, error) {
	const b3 = 3.0

	if err := reg.SetParameter(ctx, registry.Write{
		Path:   "geometry.b3_visible",
		Value:  b3,
		Source: p.Name(),
		Status: entry.StatusGeometric,
		Metadata: map[string]any{
			"description": "one-loop SU(3) beta coefficient of the visible sector",
		},
	}); err != nil {
		return nil, err
	}

	reg.AddSection(ctx, entry.Section{
		SectionID:    "7",
		SubsectionID: "B",
		Title:        "Beta coefficients from the visible sector",
		Abstract:     "Derivation of the one-loop beta coefficients from the sector's matter content.",
		Appendix:     true,
		Blocks: []entry.Block{
			{Type: entry.BlockHeading, Text: "Matter content", Level: 2},
			{Type: entry.BlockParagraph, Text: "The visible sector carries three chiral generations."},
			{Type: entry.BlockFormula, FormulaID: "gauge.one_loop_running"},
		},
		FormulaRefs: []string{"gauge.one_loop_running"},
		ParamRefs:   []string{"geometry.b3_visible"},
	})

	return map[string]any{"geometry.b3_visible": b3}, nil
}
