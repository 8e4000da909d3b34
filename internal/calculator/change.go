package calculator

// Fluctuation computes the day-over-day percentage change of values. The
// result has the same length as the input and always starts with 0. When the
// previous value is exactly zero the change is clamped to 0 rather than
// dividing by zero.
func Fluctuation(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}
	result := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			result[i] = 0
			continue
		}
		result[i] = ((values[i] - prev) / prev) * 100.0
	}
	return result
}

// RelativeChange computes the percentage deviation of every element from the
// first element. A zero baseline yields an all-zero sequence.
func RelativeChange(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}
	result := make([]float64, len(values))
	baseline := values[0]
	if baseline == 0 {
		return result
	}
	for i, v := range values {
		result[i] = ((v - baseline) / baseline) * 100.0
	}
	return result
}
