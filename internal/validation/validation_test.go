package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/theoryreg/internal/entry"
)

func fptr(v float64) *float64 { return &v }

func TestComputeNoReference(t *testing.T) {
	v := Compute(6.3e15, nil)
	assert.Equal(t, entry.ValidationNoData, v.Status)
	assert.Nil(t, v.Sigma)
}

func TestComputeMeasuredWithUncertainty(t *testing.T) {
	tests := []struct {
		name   string
		theory float64
		exp    float64
		unc    float64
		sigma  float64
		status entry.ValidationStatus
	}{
		{"exact match", 100.0, 100.0, 1.0, 0.0, entry.ValidationPass},
		{"just under one sigma", 100.9, 100.0, 1.0, 0.9, entry.ValidationPass},
		{"one sigma is marginal", 101.0, 100.0, 1.0, 1.0, entry.ValidationMarginal},
		{"two sigma is tension", 102.0, 100.0, 1.0, 2.0, entry.ValidationTension},
		{"three sigma is fail, not tension", 103.0, 100.0, 1.0, 3.0, entry.ValidationFail},
		{"far off", 110.0, 100.0, 1.0, 10.0, entry.ValidationFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compute(tt.theory, &entry.Experiment{
				Value:       tt.exp,
				Uncertainty: fptr(tt.unc),
				Bound:       entry.BoundMeasured,
			})
			require.NotNil(t, v.Sigma)
			assert.InDelta(t, tt.sigma, *v.Sigma, 1e-12)
			assert.Equal(t, tt.status, v.Status)
		})
	}
}

func TestComputeCentralValueSameAsMeasured(t *testing.T) {
	exp := &entry.Experiment{Value: 100.0, Uncertainty: fptr(1.0), Bound: entry.BoundCentral}
	v := Compute(103.0, exp)
	require.NotNil(t, v.Sigma)
	assert.Equal(t, 3.0, *v.Sigma)
	assert.Equal(t, entry.ValidationFail, v.Status)
}

func TestComputeRelativeErrorFallback(t *testing.T) {
	tests := []struct {
		name   string
		theory float64
		exp    float64
		status entry.ValidationStatus
	}{
		{"under one percent", 100.5, 100.0, entry.ValidationPass},
		{"under five percent", 103.0, 100.0, entry.ValidationMarginal},
		{"under ten percent", 108.0, 100.0, entry.ValidationTension},
		{"ten percent or more", 110.0, 100.0, entry.ValidationFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compute(tt.theory, &entry.Experiment{Value: tt.exp, Bound: entry.BoundMeasured})
			assert.Equal(t, tt.status, v.Status)
			require.NotNil(t, v.Sigma)
		})
	}

	// Zero uncertainty behaves like no uncertainty.
	v := Compute(100.5, &entry.Experiment{Value: 100.0, Uncertainty: fptr(0), Bound: entry.BoundMeasured})
	assert.Equal(t, entry.ValidationPass, v.Status)
}

func TestComputeRelativeErrorZeroReference(t *testing.T) {
	// No relative scale exists against a zero reference.
	v := Compute(0.1, &entry.Experiment{Value: 0, Bound: entry.BoundMeasured})
	assert.Equal(t, entry.ValidationNoData, v.Status)
	assert.Nil(t, v.Sigma)
}

func TestComputeLowerBound(t *testing.T) {
	v := Compute(5.0, &entry.Experiment{Value: 3.0, Bound: entry.BoundLower})
	assert.Equal(t, entry.ValidationPass, v.Status)
	require.NotNil(t, v.Sigma)
	assert.InDelta(t, 2.0/3.0, *v.Sigma, 1e-12)

	v = Compute(2.0, &entry.Experiment{Value: 3.0, Bound: entry.BoundLower})
	assert.Equal(t, entry.ValidationFail, v.Status)
	require.NotNil(t, v.Sigma)
	assert.InDelta(t, 1.0/3.0, *v.Sigma, 1e-12)

	// Sitting exactly on the bound does not pass.
	v = Compute(3.0, &entry.Experiment{Value: 3.0, Bound: entry.BoundLower})
	assert.Equal(t, entry.ValidationFail, v.Status)
}

func TestComputeUpperBound(t *testing.T) {
	v := Compute(2.0, &entry.Experiment{Value: 3.0, Bound: entry.BoundUpper})
	assert.Equal(t, entry.ValidationPass, v.Status)

	v = Compute(5.0, &entry.Experiment{Value: 3.0, Bound: entry.BoundUpper})
	assert.Equal(t, entry.ValidationFail, v.Status)
	require.NotNil(t, v.Sigma)
	assert.InDelta(t, 2.0/3.0, *v.Sigma, 1e-12)
}

func TestComputeRangeFollowsCentralBranch(t *testing.T) {
	v := Compute(100.0, &entry.Experiment{Value: 100.0, Uncertainty: fptr(1.0), Bound: entry.BoundRange})
	assert.Equal(t, entry.ValidationPass, v.Status)
}
