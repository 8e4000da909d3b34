package calculator

// Trendline computes the ordinary least-squares linear fit of values against
// their indexes 0..n-1 and returns the fitted value at each index. An empty
// input yields an empty result. When the regression denominator is zero
// (n <= 1) the slope is 0 and the intercept is the mean.
func Trendline(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return []float64{}
	}

	var sumX, sumY, sumXX, sumXY float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	denom := float64(n)*sumXX - sumX*sumX
	slope := 0.0
	if denom != 0 {
		slope = (float64(n)*sumXY - sumX*sumY) / denom
	}
	intercept := (sumY - slope*sumX) / float64(n)

	fitted := make([]float64, n)
	for i := range fitted {
		fitted[i] = slope*float64(i) + intercept
	}
	return fitted
}
