// internal/forecast/algorithms.go
package forecast

// Forecasting parameters. These are deliberately fixed, closed-form
// settings rather than fitted model hyperparameters.
const (
	DefaultWindow = 7   // SMA/WMA lookback
	DefaultAlpha  = 0.3 // smoothing factor for SES and Holt level
	DefaultBeta   = 0.1 // Holt trend smoothing factor
)

// Algorithm selects which method supplies the primary daily forecast.
type Algorithm string

const (
	AlgorithmSMA         Algorithm = "sma"
	AlgorithmWMA         Algorithm = "wma"
	AlgorithmExponential Algorithm = "exponential"
	AlgorithmLinear      Algorithm = "linear"
	AlgorithmHolt        Algorithm = "holt"
)

// ParseAlgorithm maps a request parameter onto a known algorithm.
// Unknown names fall back to exponential smoothing.
func ParseAlgorithm(name string) Algorithm {
	switch Algorithm(name) {
	case AlgorithmSMA, AlgorithmWMA, AlgorithmExponential, AlgorithmLinear, AlgorithmHolt:
		return Algorithm(name)
	default:
		return AlgorithmExponential
	}
}

// SimpleMovingAverage returns the mean of the last window values.
// Shorter histories average whatever is available.
func SimpleMovingAverage(values []float64, window int) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if n < window {
		return mean(values)
	}
	return mean(values[n-window:])
}

// WeightedMovingAverage weights the last window values linearly, most
// recent highest. The window shrinks to fit short histories.
func WeightedMovingAverage(values []float64, window int) float64 {
	n := len(values)
	if n < window {
		window = n
	}
	if window == 0 {
		return 0
	}

	recent := values[n-window:]
	var weightedSum, weightSum float64
	for i, v := range recent {
		w := float64(i + 1)
		weightedSum += v * w
		weightSum += w
	}

	return weightedSum / weightSum
}

// ExponentialSmoothing runs simple exponential smoothing over the
// series and returns the final smoothed value. Higher alpha forgets
// old observations faster.
func ExponentialSmoothing(values []float64, alpha float64) float64 {
	if len(values) == 0 {
		return 0
	}

	forecast := values[0]
	for _, v := range values[1:] {
		forecast = alpha*v + (1-alpha)*forecast
	}

	return forecast
}

// LinearRegression fits an ordinary least-squares line through the
// series and projects forecastDays values past the end. Projections
// are clamped at zero since demand cannot be negative.
func LinearRegression(values []float64, forecastDays int) []float64 {
	n := len(values)
	if n < 2 {
		fill := 0.0
		if n == 1 {
			fill = values[0]
		}
		return repeat(fill, forecastDays)
	}

	xMean := float64(n-1) / 2
	yMean := mean(values)

	var numerator, denominator float64
	for i, v := range values {
		dx := float64(i) - xMean
		numerator += dx * (v - yMean)
		denominator += dx * dx
	}

	slope := 0.0
	if denominator != 0 {
		slope = numerator / denominator
	}
	intercept := yMean - slope*xMean

	forecasts := make([]float64, forecastDays)
	for i := range forecasts {
		value := intercept + slope*float64(n+i)
		if value < 0 {
			value = 0
		}
		forecasts[i] = value
	}

	return forecasts
}

// HoltLinearTrend applies double exponential smoothing (Holt's linear
// trend method) and projects forecastDays values from the final level
// and trend, clamped at zero.
func HoltLinearTrend(values []float64, alpha, beta float64, forecastDays int) []float64 {
	n := len(values)
	if n < 2 {
		fill := 0.0
		if n == 1 {
			fill = values[0]
		}
		return repeat(fill, forecastDays)
	}

	level := values[0]
	trend := values[1] - values[0]

	for _, v := range values[1:] {
		newLevel := alpha*v + (1-alpha)*(level+trend)
		newTrend := beta*(newLevel-level) + (1-beta)*trend
		level = newLevel
		trend = newTrend
	}

	forecasts := make([]float64, forecastDays)
	for i := range forecasts {
		value := level + float64(i+1)*trend
		if value < 0 {
			value = 0
		}
		forecasts[i] = value
	}

	return forecasts
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func repeat(value float64, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = value
	}
	return out
}
