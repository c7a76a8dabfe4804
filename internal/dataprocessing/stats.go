package dataprocessing

import (
	"math"
	"sort"
)

// calculateMedian returns the median of values. The input is not modified.
func calculateMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Create sorted copy
	sortedValues := make([]float64, len(values))
	copy(sortedValues, values)
	sort.Float64s(sortedValues)

	n := len(sortedValues)
	if n%2 == 0 {
		// Even number of values
		return (sortedValues[n/2-1] + sortedValues[n/2]) / 2
	}
	// Odd number of values
	return sortedValues[n/2]
}

// calculateMean returns the arithmetic mean of values, ignoring NaN and
// infinite entries.
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	validCount := 0

	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
			validCount++
		}
	}

	if validCount == 0 {
		return 0
	}

	return sum / float64(validCount)
}

// roundToInt rounds to the nearest integer, halves away from zero.
func roundToInt(v float64) int64 {
	return int64(math.Round(v))
}

// intsToFloats widens integer column values for the statistics helpers.
func intsToFloats(values []int64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
