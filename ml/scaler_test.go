package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityScaler(t *testing.T) *Scaler {
	t.Helper()
	mean := make([]float64, FeatureCount)
	scale := make([]float64, FeatureCount)
	for i := range scale {
		scale[i] = 1
	}
	s, err := NewScaler(mean, scale)
	require.NoError(t, err)
	return s
}

func TestNewScalerRejectsBadParameters(t *testing.T) {
	ones := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	_, err := NewScaler([]float64{0, 0}, ones)
	assert.Error(t, err)

	_, err = NewScaler(make([]float64, FeatureCount), []float64{1, 1})
	assert.Error(t, err)

	zeroScale := []float64{1, 1, 1, 0, 1, 1, 1, 1}
	_, err = NewScaler(make([]float64, FeatureCount), zeroScale)
	assert.Error(t, err)
}

func TestScaleIdentity(t *testing.T) {
	s := identityScaler(t)
	v := Vector{0, 45, 0, 0, 4, 27.3, 6.1, 140}

	assert.Equal(t, v, s.Scale(v))
}

func TestScaleStandardizes(t *testing.T) {
	mean := []float64{1, 40, 0, 0, 2, 25, 5, 100}
	scale := []float64{0.5, 20, 1, 1, 2, 5, 2, 50}
	s, err := NewScaler(mean, scale)
	require.NoError(t, err)

	got := s.Scale(Vector{1, 60, 1, 0, 4, 30, 6, 150})
	want := Vector{0, 1, 1, 0, 1, 1, 0.5, 1}

	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "position %d", i)
	}
}

func TestScaleIsDeterministic(t *testing.T) {
	mean := []float64{0.41, 41.9, 0.07, 0.04, 2.4, 27.3, 5.5, 138}
	scale := []float64{0.49, 22.5, 0.26, 0.19, 1.9, 6.6, 1.07, 40.7}
	s, err := NewScaler(mean, scale)
	require.NoError(t, err)

	v := Vector{0, 45, 0, 0, 4, 27.3, 6.1, 140}
	assert.Equal(t, s.Scale(v), s.Scale(v))
}
