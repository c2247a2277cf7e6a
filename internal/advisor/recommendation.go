package advisor

import (
	"fmt"
	"strings"
)

const (
	VerdictNotIdeal = "Not ideal for outdoor activity"
	VerdictSuitable = "Well suited for outdoor activity"

	reasonSeparator = " • "
)

// Recommendation is the outdoor-activity verdict with its rationale.
type Recommendation struct {
	Verdict  string   `json:"verdict"`
	Reason   string   `json:"reason"`
	Suitable bool     `json:"suitable"`
	RedFlags []string `json:"red_flags"`
}

// Recommend checks the snapshot against every red-flag rule. Any flag makes the
// verdict negative and the flags become the reason; otherwise the reason
// summarizes the reassuring readings.
func Recommend(snapshot Snapshot, precipitationMax float64, aqiLabel string) Recommendation {
	r := readingsOf(snapshot, precipitationMax)

	flags := []string{}
	if r.thunderstorm() {
		flags = append(flags, "storm/lightning")
	}
	if r.wet() || r.rainProb >= RainLikelyPercent {
		flags = append(flags, fmt.Sprintf("rain %d%%", r.rainProb))
	}
	if r.windKmh >= WindRedFlagKmh {
		flags = append(flags, fmt.Sprintf("wind %d km/h", r.windKmh))
	}
	if r.temp <= ColdRedFlagCelsius {
		flags = append(flags, fmt.Sprintf("cold %d°C", r.temp))
	}
	if r.temp >= HeatRedFlagCelsius {
		flags = append(flags, fmt.Sprintf("heat %d°C", r.temp))
	}

	if len(flags) > 0 {
		return Recommendation{
			Verdict:  VerdictNotIdeal,
			Reason:   fmt.Sprintf("Risk factors: %s.", strings.Join(flags, reasonSeparator)),
			RedFlags: flags,
		}
	}

	return Recommendation{
		Verdict: VerdictSuitable,
		Reason: fmt.Sprintf("Low rain chance (%d%%), comfortable temperature (%d°C), light wind (%d km/h), AQI %s.",
			r.rainProb, r.temp, r.windKmh, aqiLabel),
		Suitable: true,
		RedFlags: flags,
	}
}
