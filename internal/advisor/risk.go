package advisor

import (
	"fmt"
	"strings"
)

// RiskLevel grades outdoor exposure.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

const safeConditionsDetail = "Relatively safe conditions"

func (l RiskLevel) String() string {
	switch l {
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	default:
		return "Low"
	}
}

func (l RiskLevel) Icon() string {
	switch l {
	case RiskMedium:
		return "🟡"
	case RiskHigh:
		return "🔴"
	default:
		return "🟢"
	}
}

// Color is the presentation tag for the level.
func (l RiskLevel) Color() string {
	switch l {
	case RiskMedium:
		return "yellow"
	case RiskHigh:
		return "red"
	default:
		return "green"
	}
}

// Hex is the display color used by the web client.
func (l RiskLevel) Hex() string {
	switch l {
	case RiskMedium:
		return "#ffcc00"
	case RiskHigh:
		return "#ff5252"
	default:
		return "#00e676"
	}
}

// MarshalText lets the level appear as its name in JSON and metric labels.
func (l RiskLevel) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

func (l *RiskLevel) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "low":
		*l = RiskLow
	case "medium":
		*l = RiskMedium
	case "high":
		*l = RiskHigh
	default:
		return fmt.Errorf("unknown risk level %q", text)
	}
	return nil
}

type Risk struct {
	Level   RiskLevel `json:"level"`
	Label   string    `json:"label"`
	Icon    string    `json:"icon"`
	Color   string    `json:"color"`
	Hex     string    `json:"hex"`
	Detail  string    `json:"detail"`
	Reasons []string  `json:"reasons"`
}

// AssessRisk scores the snapshot. Wind counts as a risk from WindRiskKmh, which
// is lower than the recommendation's red-flag cutoff.
func AssessRisk(snapshot Snapshot, precipitationMax float64) Risk {
	r := readingsOf(snapshot, precipitationMax)

	reasons := []string{}
	if r.thunderstorm() {
		reasons = append(reasons, "Storm/lightning")
	}
	if r.wet() || r.rainProb >= RainLikelyPercent {
		reasons = append(reasons, fmt.Sprintf("Rain chance %d%%", r.rainProb))
	}
	if r.windKmh >= WindRiskKmh {
		reasons = append(reasons, fmt.Sprintf("Wind %d km/h", r.windKmh))
	}
	if r.temp <= ColdRedFlagCelsius {
		reasons = append(reasons, fmt.Sprintf("Cold %d°C", r.temp))
	}
	if r.temp >= HeatRedFlagCelsius {
		reasons = append(reasons, fmt.Sprintf("Heat %d°C", r.temp))
	}

	level := RiskLow
	if len(reasons) >= 1 {
		level = RiskMedium
	}
	if r.thunderstorm() || r.rainProb >= RainSeverePercent || r.windKmh >= WindSevereKmh {
		level = RiskHigh
	}
	// Unreachable while every escalation input also adds a reason.
	if len(reasons) == 0 {
		level = RiskLow
	}

	detail := safeConditionsDetail
	if len(reasons) > 0 {
		detail = strings.Join(reasons, reasonSeparator)
	}

	return Risk{
		Level:   level,
		Label:   level.String() + " Risk",
		Icon:    level.Icon(),
		Color:   level.Color(),
		Hex:     level.Hex(),
		Detail:  detail,
		Reasons: reasons,
	}
}
