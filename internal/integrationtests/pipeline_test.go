// Package integrationtests exercises the full registry contract the way the
// orchestrator drives it: load manifests, validate declarations, seed
// constants, check dependencies, run producers, check outputs, export.
package integrationtests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/theoryreg/internal/deps"
	"github.com/vk/theoryreg/internal/entry"
	"github.com/vk/theoryreg/internal/export"
	"github.com/vk/theoryreg/internal/manifest"
	"github.com/vk/theoryreg/internal/registry"
	"github.com/vk/theoryreg/internal/schema"
	"github.com/vk/theoryreg/internal/validation"
	"github.com/vk/theoryreg/modules/gauge"
	"github.com/vk/theoryreg/modules/geometry"
)

// modulesDir points at the repo's real producer manifests.
const modulesDir = "../../modules"

func TestManifestsValidate(t *testing.T) {
	ctx := context.Background()

	model, err := manifest.Load(ctx, modulesDir)
	require.NoError(t, err)
	require.Contains(t, model.Producers, "reference_constants")
	require.Contains(t, model.Producers, "gauge_unification")
	require.Contains(t, model.Producers, "visible_geometry")

	for name, p := range model.Producers {
		result := schema.ValidateProducer(p)
		assert.True(t, result.Passed, "producer %s: %v", name, result.Errors)
	}
}

func TestFullPipeline(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()

	// Seed the established constants from the manifests.
	model, err := manifest.Load(ctx, modulesDir)
	require.NoError(t, err)
	require.NoError(t, manifest.Seed(ctx, model, reg))
	require.True(t, reg.HasParameter("constants.M_Z"))

	gaugeProd := gauge.Producer{}
	geomProd := geometry.Producer{}

	// Before geometry has run, the gauge producer is missing a computed
	// input; the constants are already present.
	issues := deps.CheckDependencies(gaugeProd.RequiredInputs(), reg)
	require.Len(t, issues, 1)
	assert.Equal(t, deps.MissingComputed, issues[0].Kind)
	assert.Equal(t, "geometry.b3_visible", issues[0].Path)

	// Run geometry, then gauge.
	produced, err := geomProd.Run(ctx, reg)
	require.NoError(t, err)
	assert.Empty(t, deps.CheckOutputs(geomProd.OutputParams(), produced, reg))

	assert.Empty(t, deps.CheckDependencies(gaugeProd.RequiredInputs(), reg))
	produced, err = gaugeProd.Run(ctx, reg)
	require.NoError(t, err)
	assert.Empty(t, deps.CheckOutputs(gaugeProd.OutputParams(), produced, reg))

	for _, id := range gaugeProd.OutputFormulas() {
		assert.True(t, reg.HasFormula(id))
	}

	// The predicted scale clears its proton-decay lower bound.
	e, ok := reg.Entry("gauge.M_GUT")
	require.True(t, ok)
	require.NotNil(t, e.Validation)
	assert.Equal(t, entry.ValidationPass, e.Validation.Status)
	assert.Empty(t, validation.AgainstBounds(reg))

	// Export reflects the full run.
	params := export.Parameters(reg)
	assert.Contains(t, params, "constants.M_Z")
	assert.Contains(t, params, "geometry.b3_visible")
	assert.Contains(t, params, "gauge.M_GUT")
	assert.Equal(t, "PASS", params["gauge.M_GUT"]["validation_status"])

	sections := export.Sections(reg)
	require.Contains(t, sections, "B")
	assert.Equal(t, 101, sections["B"]["order"])

	prov := export.Provenance(reg)
	assert.Equal(t, []string{"visible_geometry"}, prov["geometry.b3_visible"])
}

func TestEstablishedConstantSurvivesRogueProducer(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()

	require.NoError(t, reg.SetParameter(ctx, registry.Write{
		Path: "x.y", Value: 42.0, Source: "ESTABLISHED:REF", Status: entry.StatusEstablished,
	}))

	err := reg.SetParameter(ctx, registry.Write{Path: "x.y", Value: 43.0, Source: "derived_1"})
	require.ErrorIs(t, err, registry.ErrImmutable)

	v, err := reg.Parameter("x.y")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	// The rejected write leaves no trace in export either.
	assert.Equal(t, 42.0, export.Parameters(reg)["x.y"]["value"])
	assert.Equal(t, []string{"ESTABLISHED:REF"}, export.Provenance(reg)["x.y"])
}

func TestPredictionWithoutReferenceExportsNoData(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()

	require.NoError(t, reg.SetParameter(ctx, registry.Write{
		Path: "gauge.M_GUT", Value: 6.3e15, Source: "gauge_unification",
		Status: entry.StatusPredicted,
	}))

	e, ok := reg.Entry("gauge.M_GUT")
	require.True(t, ok)
	require.NotNil(t, e.Validation)
	assert.Equal(t, entry.ValidationNoData, e.Validation.Status)

	// The renderer sees an explicit NO_DATA status and no sigma.
	rec := export.Parameters(reg)["gauge.M_GUT"]
	assert.Equal(t, 6.3e15, rec["value"])
	assert.Equal(t, "NO_DATA", rec["validation_status"])
	_, hasSigma := rec["sigma_deviation"]
	assert.False(t, hasSigma)
}

func TestCrossProducerDisagreementIsFlaggedNotFatal(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()

	require.NoError(t, reg.SetParameter(ctx, registry.Write{
		Path: "fermion.m_top", Value: 173.0, Source: "yukawa_fit",
	}))

	// A second producer lands 2% away: the output checker flags it, and the
	// registry logs a mismatch but keeps the newer value.
	produced := map[string]any{"fermion.m_top": 176.5}
	issues := deps.CheckOutputs([]string{"fermion.m_top"}, produced, reg)
	require.Len(t, issues, 1)
	assert.Equal(t, deps.Inconsistent, issues[0].Kind)

	require.NoError(t, reg.SetParameter(ctx, registry.Write{
		Path: "fermion.m_top", Value: 176.5, Source: "mass_matrix",
	}))
	require.Len(t, reg.Mismatches(), 1)

	v, err := reg.Parameter("fermion.m_top")
	require.NoError(t, err)
	assert.Equal(t, 176.5, v)
	assert.Equal(t, []string{"yukawa_fit", "mass_matrix"}, reg.Provenance("fermion.m_top"))
}
