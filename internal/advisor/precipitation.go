package advisor

// MaxPrecipitation returns the highest precipitation probability among the
// first LookAheadEntries forecast samples, or 0 for an empty forecast.
func MaxPrecipitation(forecast []ForecastEntry) float64 {
	window := forecast
	if len(window) > LookAheadEntries {
		window = window[:LookAheadEntries]
	}

	maxValue := 0.0
	for _, entry := range window {
		if entry.PrecipitationProbability > maxValue {
			maxValue = entry.PrecipitationProbability
		}
	}
	return maxValue
}
