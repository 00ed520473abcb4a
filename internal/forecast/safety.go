// internal/forecast/safety.go
package forecast

import "math"

// DefaultServiceLevel is the target probability of not stocking out.
const DefaultServiceLevel = 0.95

// leadTimeDays is the assumed replenishment lead time. Fixed until a
// supplier model gives us per-product lead times.
const leadTimeDays = 3

// zScores maps a service level to its normal-distribution z-score.
var zScores = map[float64]float64{
	0.90: 1.28,
	0.95: 1.65,
	0.98: 2.05,
	0.99: 2.33,
}

// SafetyStock sizes a demand-variability buffer from the population
// standard deviation of the daily series. Unrecognized service levels
// use the 0.95 z-score. Fewer than two data points yields zero since
// the deviation is undefined.
func SafetyStock(values []float64, serviceLevel float64) int {
	if len(values) < 2 {
		return 0
	}

	m := mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - m) * (v - m)
	}
	variance /= float64(len(values))
	stdDev := math.Sqrt(variance)

	z, ok := zScores[serviceLevel]
	if !ok {
		z = zScores[DefaultServiceLevel]
	}

	return int(math.Round(z * stdDev * math.Sqrt(leadTimeDays)))
}
