package advisor

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"weather-advisor/internal/types"
)

func celsius(v float64) *float64 { return &v }

// windFromKmh returns an m/s speed that converts back to exactly kmh.
func windFromKmh(kmh float64) float64 { return kmh / types.MsToKmhFactor }

func snapshot(condition string, temp float64, windKmh float64) Snapshot {
	return Snapshot{
		Condition:   condition,
		Temperature: celsius(temp),
		WindSpeed:   windFromKmh(windKmh),
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name      string
		snapshot  Snapshot
		precip    float64
		wantFlags []string
	}{
		{"pleasant", snapshot("Clear", 25, 10), 0.1, []string{}},
		{"thunderstorm", snapshot("Thunderstorm", 25, 10), 0.5, []string{"storm/lightning"}},
		{"drizzle", snapshot("Drizzle", 20, 5), 0.2, []string{"rain 20%"}},
		{"rain likely under clear sky", snapshot("Clear", 20, 5), 0.6, []string{"rain 60%"}},
		{"rain just below cutoff", snapshot("Clouds", 20, 5), 0.59, []string{}},
		{"windy", snapshot("Clouds", 20, 35), 0, []string{"wind 35 km/h"}},
		{"breezy", snapshot("Clouds", 20, 34), 0, []string{}},
		{"cold", snapshot("Clear", 10, 0), 0, []string{"cold 10°C"}},
		{"heat", snapshot("Clear", 33, 0), 0, []string{"heat 33°C"}},
		{"heat rounds up", snapshot("Clear", 32.5, 0), 0, []string{"heat 33°C"}},
		{"everything", snapshot("Thunderstorm", 5, 40), 0.9, []string{"storm/lightning", "rain 90%", "wind 40 km/h", "cold 5°C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Recommend(tt.snapshot, tt.precip, "Good")

			if !slices.Equal(result.RedFlags, tt.wantFlags) {
				t.Fatalf("Recommend() flags = %v, want %v", result.RedFlags, tt.wantFlags)
			}
			if len(tt.wantFlags) > 0 {
				if result.Verdict != VerdictNotIdeal || result.Suitable {
					t.Errorf("Recommend() verdict = %q, want %q", result.Verdict, VerdictNotIdeal)
				}
				want := "Risk factors: " + strings.Join(tt.wantFlags, " • ") + "."
				if result.Reason != want {
					t.Errorf("Recommend() reason = %q, want %q", result.Reason, want)
				}
			} else if result.Verdict != VerdictSuitable || !result.Suitable {
				t.Errorf("Recommend() verdict = %q, want %q", result.Verdict, VerdictSuitable)
			}
		})
	}
}

func TestRecommend_PositiveReason(t *testing.T) {
	result := Recommend(snapshot("Clear", 25, 10), 0.1, "Good")

	want := "Low rain chance (10%), comfortable temperature (25°C), light wind (10 km/h), AQI Good."
	if result.Reason != want {
		t.Errorf("Recommend() reason = %q, want %q", result.Reason, want)
	}
}

func TestRecommend_UnknownTemperature(t *testing.T) {
	// an unknown temperature reads as 0°C and therefore as cold
	result := Recommend(Snapshot{Condition: "Clear"}, 0, "N/A")

	if !slices.Equal(result.RedFlags, []string{"cold 0°C"}) {
		t.Errorf("Recommend() flags = %v, want [cold 0°C]", result.RedFlags)
	}
}

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name        string
		snapshot    Snapshot
		precip      float64
		wantLevel   RiskLevel
		wantReasons []string
	}{
		{"calm day", snapshot("Clear", 22, 10), 0.1, RiskLow, []string{}},
		{"thunderstorm in mild weather", snapshot("Thunderstorm", 22, 0), 0, RiskHigh, []string{"Storm/lightning"}},
		{"likely rain", snapshot("Clouds", 22, 0), 0.7, RiskMedium, []string{"Rain chance 70%"}},
		{"severe rain", snapshot("Clouds", 22, 0), 0.8, RiskHigh, []string{"Rain chance 80%"}},
		{"breezy counts as risk", snapshot("Clear", 22, 30), 0, RiskMedium, []string{"Wind 30 km/h"}},
		{"gale", snapshot("Clear", 22, 55), 0, RiskHigh, []string{"Wind 55 km/h"}},
		{"cold and windy", snapshot("Clear", 8, 31), 0, RiskMedium, []string{"Wind 31 km/h", "Cold 8°C"}},
		{"borderline inputs stay low", snapshot("Clear", 11, 29), 0.59, RiskLow, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AssessRisk(tt.snapshot, tt.precip)

			if result.Level != tt.wantLevel {
				t.Errorf("AssessRisk() level = %s, want %s", result.Level, tt.wantLevel)
			}
			if !slices.Equal(result.Reasons, tt.wantReasons) {
				t.Errorf("AssessRisk() reasons = %v, want %v", result.Reasons, tt.wantReasons)
			}
			if result.Icon != tt.wantLevel.Icon() || result.Color != tt.wantLevel.Color() {
				t.Errorf("AssessRisk() icon/color = %s/%s, want %s/%s",
					result.Icon, result.Color, tt.wantLevel.Icon(), tt.wantLevel.Color())
			}
		})
	}
}

func TestAssessRisk_Detail(t *testing.T) {
	safe := AssessRisk(snapshot("Clear", 22, 0), 0)
	if safe.Detail != "Relatively safe conditions" {
		t.Errorf("AssessRisk() detail = %q, want safe conditions", safe.Detail)
	}
	if safe.Label != "Low Risk" {
		t.Errorf("AssessRisk() label = %q, want %q", safe.Label, "Low Risk")
	}

	risky := AssessRisk(snapshot("Rain", 5, 0), 0.3)
	if risky.Detail != "Rain chance 30% • Cold 5°C" {
		t.Errorf("AssessRisk() detail = %q", risky.Detail)
	}
}

func TestRiskLevel_MarshalText(t *testing.T) {
	text, err := RiskHigh.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "high" {
		t.Errorf("MarshalText() = %q, want %q", text, "high")
	}

	var level RiskLevel
	if err := level.UnmarshalText([]byte("Medium")); err != nil || level != RiskMedium {
		t.Errorf("UnmarshalText(Medium) = %v, %v", level, err)
	}
	if err := level.UnmarshalText([]byte("extreme")); err == nil {
		t.Error("UnmarshalText(extreme) expected error")
	}
}

func itemNames(items []PackItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Item
	}
	return names
}

func TestPack(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		precip   float64
		mode     ActivityMode
		expected []string
	}{
		{"cold clear ride", snapshot("Clear", 5, 0), 0, ModeRiding, []string{"Jacket", "Gloves", "Mask"}},
		{"mild walk", snapshot("Clear", 20, 0), 0, ModeWalking, []string{"Casual outfit"}},
		{"hot walk", snapshot("Clear", 30, 0), 0, ModeWalking, []string{"Comfortable clothing", "Hat"}},
		{"exactly warm cutoff", snapshot("Clear", 28, 0), 0, ModeWalking, []string{"Casual outfit"}},
		{"jacket cutoff", snapshot("Clouds", 12, 0), 0, ModeWalking, []string{"Jacket"}},
		{"storm", snapshot("Thunderstorm", 20, 0), 0, ModeWalking, []string{"Umbrella/Raincoat"}},
		{"likely rain", snapshot("Clouds", 20, 0), 0.6, ModeRiding, []string{"Umbrella/Raincoat", "Gloves", "Mask"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := itemNames(Pack(tt.snapshot, tt.precip, tt.mode))
			if !slices.Equal(result, tt.expected) {
				t.Errorf("Pack() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPack_UnknownTemperature(t *testing.T) {
	items := Pack(Snapshot{Condition: "Rain"}, 0.9, ModeRiding)
	if items == nil || len(items) != 0 {
		t.Errorf("Pack() = %v, want empty list", items)
	}
}

func TestPack_NeverEmpty(t *testing.T) {
	for temp := -20.0; temp <= 45; temp += 0.5 {
		for _, mode := range []ActivityMode{ModeWalking, ModeRiding} {
			if items := Pack(snapshot("Clear", temp, 0), 0, mode); len(items) == 0 {
				t.Errorf("Pack(temp=%v, mode=%s) returned no items", temp, mode)
			}
		}
	}
}

func TestParseActivityMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ActivityMode
		wantErr  bool
	}{
		{"walking", ModeWalking, false},
		{"Riding", ModeRiding, false},
		{" jalan ", ModeWalking, false},
		{"motoran", ModeRiding, false},
		{"", ModeWalking, false},
		{"flying", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseActivityMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidActivityMode) {
					t.Errorf("ParseActivityMode(%q) error = %v, want ErrInvalidActivityMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseActivityMode(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseActivityMode(%q) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}
