package types

// ProbabilityToPercent converts a 0.0-1.0 probability into a whole percentage
func ProbabilityToPercent(probability float64) int {
	return Round(probability * 100)
}
