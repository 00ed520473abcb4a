package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	assert.Equal(t, AlgorithmSMA, ParseAlgorithm("sma"))
	assert.Equal(t, AlgorithmWMA, ParseAlgorithm("wma"))
	assert.Equal(t, AlgorithmLinear, ParseAlgorithm("linear"))
	assert.Equal(t, AlgorithmHolt, ParseAlgorithm("holt"))
	assert.Equal(t, AlgorithmExponential, ParseAlgorithm("exponential"))

	// Unknown names fall back to the default
	assert.Equal(t, AlgorithmExponential, ParseAlgorithm(""))
	assert.Equal(t, AlgorithmExponential, ParseAlgorithm("arima"))
}

func TestSimpleMovingAverage(t *testing.T) {
	assert.Zero(t, SimpleMovingAverage(nil, DefaultWindow))

	// Shorter than the window: average everything available
	assert.InDelta(t, 3.0, SimpleMovingAverage([]float64{2, 4}, DefaultWindow), 1e-9)

	// Longer than the window: only the last 7 values count
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.InDelta(t, 7.0, SimpleMovingAverage(values, DefaultWindow), 1e-9)
}

func TestWeightedMovingAverage(t *testing.T) {
	assert.Zero(t, WeightedMovingAverage(nil, DefaultWindow))

	// Window shrinks to the data: (1*1 + 2*2 + 3*3) / (1+2+3)
	assert.InDelta(t, 14.0/6.0, WeightedMovingAverage([]float64{1, 2, 3}, DefaultWindow), 1e-9)

	// Full window over the last 7 values
	values := []float64{100, 100, 1, 2, 3, 4, 5, 6, 7}
	assert.InDelta(t, 5.0, WeightedMovingAverage(values, DefaultWindow), 1e-9)

	// More weight on recent observations
	rising := WeightedMovingAverage([]float64{1, 1, 1, 1, 1, 1, 9}, DefaultWindow)
	falling := WeightedMovingAverage([]float64{9, 1, 1, 1, 1, 1, 1}, DefaultWindow)
	assert.Greater(t, rising, falling)
}

func TestExponentialSmoothing(t *testing.T) {
	assert.Zero(t, ExponentialSmoothing(nil, DefaultAlpha))
	assert.InDelta(t, 8.0, ExponentialSmoothing([]float64{8}, DefaultAlpha), 1e-9)

	// One step of the recurrence: 0.3*0 + 0.7*10
	assert.InDelta(t, 7.0, ExponentialSmoothing([]float64{10, 0}, DefaultAlpha), 1e-9)
}

func TestLinearRegression(t *testing.T) {
	forecasts := LinearRegression(nil, 5)
	require.Len(t, forecasts, 5)
	for _, v := range forecasts {
		assert.Zero(t, v)
	}

	// Single data point projects flat
	forecasts = LinearRegression([]float64{5}, 3)
	assert.Equal(t, []float64{5, 5, 5}, forecasts)

	// Arithmetic series continues the same progression
	forecasts = LinearRegression([]float64{1, 2, 3, 4, 5}, 3)
	require.Len(t, forecasts, 3)
	assert.InDelta(t, 6.0, forecasts[0], 1e-9)
	assert.InDelta(t, 7.0, forecasts[1], 1e-9)
	assert.InDelta(t, 8.0, forecasts[2], 1e-9)

	// Downward trends clamp at zero, never negative demand
	forecasts = LinearRegression([]float64{10, 8, 6, 4, 2}, 3)
	for _, v := range forecasts {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	assert.Zero(t, forecasts[2])
}

func TestHoltLinearTrend(t *testing.T) {
	forecasts := HoltLinearTrend(nil, DefaultAlpha, DefaultBeta, 4)
	require.Len(t, forecasts, 4)
	for _, v := range forecasts {
		assert.Zero(t, v)
	}

	forecasts = HoltLinearTrend([]float64{3}, DefaultAlpha, DefaultBeta, 2)
	assert.Equal(t, []float64{3, 3}, forecasts)

	// A perfectly linear series keeps level and trend exact, so the
	// projection continues the line
	forecasts = HoltLinearTrend([]float64{1, 2, 3, 4, 5}, DefaultAlpha, DefaultBeta, 3)
	require.Len(t, forecasts, 3)
	assert.InDelta(t, 6.0, forecasts[0], 1e-9)
	assert.InDelta(t, 7.0, forecasts[1], 1e-9)
	assert.InDelta(t, 8.0, forecasts[2], 1e-9)

	// Steep downward trends clamp at zero
	forecasts = HoltLinearTrend([]float64{10, 5, 0, 0, 0}, DefaultAlpha, DefaultBeta, 10)
	for _, v := range forecasts {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestConstantSeriesAgreement(t *testing.T) {
	// Every algorithm should agree on a flat series
	constant := []float64{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}

	assert.InDelta(t, 4.0, SimpleMovingAverage(constant, DefaultWindow), 1e-9)
	assert.InDelta(t, 4.0, WeightedMovingAverage(constant, DefaultWindow), 1e-9)
	assert.InDelta(t, 4.0, ExponentialSmoothing(constant, DefaultAlpha), 1e-9)

	for _, v := range LinearRegression(constant, 5) {
		assert.InDelta(t, 4.0, v, 1e-9)
	}
	for _, v := range HoltLinearTrend(constant, DefaultAlpha, DefaultBeta, 5) {
		assert.InDelta(t, 4.0, v, 1e-9)
	}
}

func TestAllZeroSeries(t *testing.T) {
	zeros := make([]float64, 14)

	assert.Zero(t, SimpleMovingAverage(zeros, DefaultWindow))
	assert.Zero(t, WeightedMovingAverage(zeros, DefaultWindow))
	assert.Zero(t, ExponentialSmoothing(zeros, DefaultAlpha))

	for _, v := range LinearRegression(zeros, 7) {
		assert.Zero(t, v)
	}
	for _, v := range HoltLinearTrend(zeros, DefaultAlpha, DefaultBeta, 7) {
		assert.Zero(t, v)
	}
}
