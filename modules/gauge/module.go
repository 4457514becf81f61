// Package gauge is an example producer: it runs the strong coupling up from
// M_Z at one loop and records the unification scale, with the experimental
// lower bound on the proton-decay-safe scale attached. It exists to exercise
// the full registry contract (dependency check, run, output check) in
// integration tests; the physics is deliberately minimal.
package gauge

import (
	"context"
	"math"

	"github.com/vk/theoryreg/internal/deps"
	"github.com/vk/theoryreg/internal/entry"
	"github.com/vk/theoryreg/internal/producer"
	"github.com/vk/theoryreg/internal/registry"
)

// minViableScale is the proton-decay lower bound on the unification scale.
const minViableScale = 5.0e15

// unifiedCouplingInv is the inverse unified coupling the running targets.
const unifiedCouplingInv = 24.3

// Producer implements producer.Producer.
type Producer struct{}

var _ producer.Producer = Producer{}

// Name identifies this producer in provenance and mismatch logs.
func (Producer) Name() string { return "gauge_unification" }

// RequiredInputs declares the paths that must exist before Run.
func (Producer) RequiredInputs() []deps.Input {
	return []deps.Input{
		{Path: "constants.M_Z", Established: true},
		{Path: "constants.alpha_s_MZ", Established: true},
		{Path: "geometry.b3_visible"},
	}
}

// OutputParams declares the paths Run promises to write.
func (Producer) OutputParams() []string {
	return []string{"gauge.M_GUT", "gauge.alpha_GUT_inv"}
}

// OutputFormulas declares the formula ids Run promises to register.
func (Producer) OutputFormulas() []string {
	return []string{"gauge.one_loop_running"}
}

// Run performs the one-loop running and writes the results.
func (p Producer) Run(ctx context.Context, reg *registry.Registry) (map[string]any, error) {
	mz, err := reg.Parameter("constants.M_Z")
	if err != nil {
		return nil, err
	}
	alphaS, err := reg.Parameter("constants.alpha_s_MZ")
	if err != nil {
		return nil, err
	}
	b3 := reg.ParameterOr("geometry.b3_visible", 3.0)

	mzF, _ := entry.AsFloat(mz)
	alphaF, _ := entry.AsFloat(alphaS)
	b3F, _ := entry.AsFloat(b3)

	mGUT := mzF * math.Exp((unifiedCouplingInv-1/alphaF)*2*math.Pi/b3F)
	alphaGUTInv := 1/alphaF + b3F/(2*math.Pi)*math.Log(mGUT/mzF)

	if err := reg.SetParameter(ctx, registry.Write{
		Path:   "gauge.M_GUT",
		Value:  mGUT,
		Source: p.Name(),
		Status: entry.StatusPredicted,
		Experiment: &entry.Experiment{
			Value:  minViableScale,
			Source: "SuperK_proton_decay",
			Bound:  entry.BoundLower,
		},
	}); err != nil {
		return nil, err
	}

	if err := reg.SetParameter(ctx, registry.Write{
		Path:   "gauge.alpha_GUT_inv",
		Value:  alphaGUTInv,
		Source: p.Name(),
		Status: entry.StatusDerived,
	}); err != nil {
		return nil, err
	}

	reg.AddFormula(ctx, entry.Formula{
		ID:         "gauge.one_loop_running",
		Label:      "One-loop gauge running",
		Expression: "M_GUT = M_Z * exp(2*pi * (1/alpha_GUT - 1/alpha_s) / b3)",
		Category:   "gauge",
		Inputs:     []string{"constants.M_Z", "constants.alpha_s_MZ", "geometry.b3_visible"},
		Outputs:    []string{"gauge.M_GUT"},
	})

	return map[string]any{
		"gauge.M_GUT":         mGUT,
		"gauge.alpha_GUT_inv": alphaGUTInv,
	}, nil
}
