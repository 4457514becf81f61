package registry

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/theoryreg/internal/ctxlog"
	"github.com/vk/theoryreg/internal/entry"
)

func fptr(v float64) *float64 { return &v }

// logCtx returns a context carrying a logger that writes into the returned
// buffer, so tests can assert on warnings.
func logCtx() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return ctxlog.WithLogger(context.Background(), logger), &buf
}

func TestSetThenGetRoundTrip(t *testing.T) {
	ctx, _ := logCtx()
	r := New()

	err := r.SetParameter(ctx, Write{Path: "x.y", Value: 42.0, Source: "producer_a"})
	require.NoError(t, err)

	assert.True(t, r.HasParameter("x.y"))
	v, err := r.Parameter("x.y")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	// Non-numeric values round-trip too.
	require.NoError(t, r.SetParameter(ctx, Write{Path: "framework.label", Value: "G2", Source: "producer_a"}))
	v, err = r.Parameter("framework.label")
	require.NoError(t, err)
	assert.Equal(t, "G2", v)
}

func TestParameterNotFound(t *testing.T) {
	r := New()
	_, err := r.Parameter("missing.path")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 7.0, r.ParameterOr("missing.path", 7.0))
	assert.False(t, r.HasParameter("missing.path"))
}

func TestSetDefaultsToDerived(t *testing.T) {
	ctx, _ := logCtx()
	r := New()
	require.NoError(t, r.SetParameter(ctx, Write{Path: "x.y", Value: 1.0, Source: "p"}))

	e, ok := r.Entry("x.y")
	require.True(t, ok)
	assert.Equal(t, entry.StatusDerived, e.Status)
	assert.False(t, e.CreatedAt.IsZero())
	require.NotNil(t, e.Validation)
	assert.Equal(t, entry.ValidationNoData, e.Validation.Status)
}

func TestEstablishedIsImmutable(t *testing.T) {
	ctx, _ := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{
		Path: "x.y", Value: 42.0, Source: "ESTABLISHED:REF", Status: entry.StatusEstablished,
	}))

	err := r.SetParameter(ctx, Write{Path: "x.y", Value: 43.0, Source: "derived_1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImmutable)

	// The stored value is unchanged and no provenance was appended.
	v, err := r.Parameter("x.y")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	assert.Equal(t, []string{"ESTABLISHED:REF"}, r.Provenance("x.y"))
	assert.Empty(t, r.Mismatches())
}

func TestEstablishedReplaceableByEstablished(t *testing.T) {
	ctx, _ := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{
		Path: "x.y", Value: 42.0, Source: "ESTABLISHED:PDG2022", Status: entry.StatusEstablished,
	}))
	require.NoError(t, r.SetParameter(ctx, Write{
		Path: "x.y", Value: 42.01, Source: "ESTABLISHED:PDG2024", Status: entry.StatusEstablished,
	}))

	v, err := r.Parameter("x.y")
	require.NoError(t, err)
	assert.Equal(t, 42.01, v)
	assert.Equal(t, []string{"ESTABLISHED:PDG2022", "ESTABLISHED:PDG2024"}, r.Provenance("x.y"))
}

func TestOverwriteToleranceGating(t *testing.T) {
	ctx, buf := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{Path: "x.y", Value: 100.0, Source: "a"}))

	// Within 1%: no mismatch.
	require.NoError(t, r.SetParameter(ctx, Write{Path: "x.y", Value: 100.5, Source: "b"}))
	assert.Empty(t, r.Mismatches())

	// Beyond 1%: exactly one mismatch, but the write proceeds.
	require.NoError(t, r.SetParameter(ctx, Write{Path: "x.y", Value: 105.0, Source: "c"}))
	mismatches := r.Mismatches()
	require.Len(t, mismatches, 1)
	m := mismatches[0]
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "x.y", m.Path)
	assert.Equal(t, 100.5, m.OldValue)
	assert.Equal(t, "b", m.OldSource)
	assert.Equal(t, 105.0, m.NewValue)
	assert.Equal(t, "c", m.NewSource)
	assert.False(t, m.Time.IsZero())

	v, err := r.Parameter("x.y")
	require.NoError(t, err)
	assert.Equal(t, 105.0, v) // last write wins
	assert.Contains(t, buf.String(), "overwrite beyond tolerance")

	assert.Equal(t, []string{"a", "b", "c"}, r.Provenance("x.y"))
}

func TestOverwriteNonNumericExactEquality(t *testing.T) {
	ctx, _ := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{Path: "s.t", Value: "on", Source: "a"}))
	require.NoError(t, r.SetParameter(ctx, Write{Path: "s.t", Value: "on", Source: "b"}))
	assert.Empty(t, r.Mismatches())

	require.NoError(t, r.SetParameter(ctx, Write{Path: "s.t", Value: "off", Source: "c"}))
	assert.Len(t, r.Mismatches(), 1)
}

func TestValidationComputedOnWrite(t *testing.T) {
	ctx, _ := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{
		Path: "gauge.alpha_GUT_inv", Value: 103.0, Source: "p", Status: entry.StatusPredicted,
		Experiment: &entry.Experiment{Value: 100.0, Uncertainty: fptr(1.0), Bound: entry.BoundMeasured},
	}))

	e, ok := r.Entry("gauge.alpha_GUT_inv")
	require.True(t, ok)
	require.NotNil(t, e.Validation)
	require.NotNil(t, e.Validation.Sigma)
	assert.Equal(t, 3.0, *e.Validation.Sigma)
	assert.Equal(t, entry.ValidationFail, e.Validation.Status)
}

func TestNoExperimentMeansNoData(t *testing.T) {
	ctx, _ := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{
		Path: "gauge.M_GUT", Value: 6.3e15, Source: "p", Status: entry.StatusPredicted,
	}))

	e, ok := r.Entry("gauge.M_GUT")
	require.True(t, ok)
	require.NotNil(t, e.Validation)
	assert.Equal(t, entry.ValidationNoData, e.Validation.Status)
	assert.Nil(t, e.Validation.Sigma)
}

func TestNonNumericValueWithExperimentIsNoData(t *testing.T) {
	ctx, _ := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{
		Path: "s.flag", Value: true, Source: "p",
		Experiment: &entry.Experiment{Value: 1.0, Bound: entry.BoundMeasured},
	}))

	e, ok := r.Entry("s.flag")
	require.True(t, ok)
	require.NotNil(t, e.Validation)
	assert.Equal(t, entry.ValidationNoData, e.Validation.Status)
	assert.Nil(t, e.Validation.Sigma)
}

func TestNaNIsStoredPermissively(t *testing.T) {
	// NaN is flagged by the output checker, not rejected at write time.
	ctx, _ := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{Path: "x.y", Value: math.NaN(), Source: "p"}))
	v, err := r.Parameter("x.y")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v.(float64)))
}

func TestCreatedAtSurvivesOverwrite(t *testing.T) {
	ctx, _ := logCtx()
	r := New()

	require.NoError(t, r.SetParameter(ctx, Write{Path: "x.y", Value: 1.0, Source: "a"}))
	first, _ := r.Entry("x.y")

	require.NoError(t, r.SetParameter(ctx, Write{Path: "x.y", Value: 1.0, Source: "b"}))
	second, _ := r.Entry("x.y")

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}
