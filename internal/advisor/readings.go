package advisor

import (
	"strings"

	"weather-advisor/internal/types"
)

// readings are the whole-number values the rule sets compare against thresholds.
type readings struct {
	condition string
	temp      int
	windKmh   int
	rainProb  int
}

func readingsOf(snapshot Snapshot, precipitationMax float64) readings {
	return readings{
		condition: normalizeCondition(snapshot.Condition),
		temp:      roundedTemperature(snapshot.Temperature),
		windKmh:   types.MsToKmh(snapshot.WindSpeed),
		rainProb:  types.ProbabilityToPercent(precipitationMax),
	}
}

func normalizeCondition(condition string) string {
	return strings.ToLower(condition)
}

// roundedTemperature treats an unknown temperature as 0°C
func roundedTemperature(celsius *float64) int {
	if celsius == nil {
		return 0
	}
	return types.Round(*celsius)
}

func (r readings) thunderstorm() bool {
	return strings.Contains(r.condition, "thunderstorm")
}

func (r readings) wet() bool {
	return strings.Contains(r.condition, "rain") || strings.Contains(r.condition, "drizzle")
}
