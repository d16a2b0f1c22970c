package regress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit_RecoversExactLine(t *testing.T) {
	// close = 2*day + 100, noise free
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{100, 102, 104, 106, 108}

	fit, err := Fit(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, fit.Slope, 1e-6)
	assert.InDelta(t, 100.0, fit.Intercept, 1e-6)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	require.Len(t, fit.Predictions, len(y))
	for i := range y {
		assert.InDelta(t, y[i], fit.Predictions[i], 1e-6)
	}
}

func TestFit_NegativeSlope(t *testing.T) {
	x := []float64{0, 2, 5, 9}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = -3.5*xi + 42000
	}

	fit, err := Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, -3.5, fit.Slope, 1e-6)
	assert.InDelta(t, 42000.0, fit.Intercept, 1e-3)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
}

func TestFit_ConstantTarget(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{250, 250, 250, 250}

	fit, err := Fit(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, fit.Slope, 1e-9)
	assert.InDelta(t, 250.0, fit.Intercept, 1e-9)
	assert.True(t, math.IsNaN(fit.RSquared), "r-squared must be NaN for a constant target")
}

func TestFit_InsufficientData(t *testing.T) {
	_, err := Fit([]float64{1}, []float64{100})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Fit(nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestFit_ZeroFeatureVariance(t *testing.T) {
	_, err := Fit([]float64{3, 3, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestFit_MismatchedInputs(t *testing.T) {
	_, err := Fit([]float64{0, 1, 2}, []float64{1, 2})
	assert.Error(t, err)
}

func TestFit_TwoPoints(t *testing.T) {
	// two points determine a line exactly
	fit, err := Fit([]float64{0, 10}, []float64{100, 200})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, fit.Slope, 1e-6)
	assert.InDelta(t, 100.0, fit.Intercept, 1e-6)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	require.Len(t, fit.Predictions, 2)
	assert.InDelta(t, 100.0, fit.Predictions[0], 1e-6)
	assert.InDelta(t, 200.0, fit.Predictions[1], 1e-6)
}

func TestFit_TwoPointsConstantTarget(t *testing.T) {
	fit, err := Fit([]float64{0, 5}, []float64{300, 300})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, fit.Slope, 1e-9)
	assert.InDelta(t, 300.0, fit.Intercept, 1e-9)
	assert.True(t, math.IsNaN(fit.RSquared))
}

func TestFit_NoisyDataBoundedRSquared(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := []float64{100, 104, 103, 109, 110, 108, 115, 113}

	fit, err := Fit(x, y)
	require.NoError(t, err)
	assert.Greater(t, fit.RSquared, 0.0)
	assert.LessOrEqual(t, fit.RSquared, 1.0)
}
