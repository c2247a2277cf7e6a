package types

import (
	"math"
	"testing"
)

func TestMsToKmh(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{name: "calm", input: 0, expected: 0},
		{name: "light breeze", input: 2.5, expected: 9},
		{name: "rounds half up", input: 1.25, expected: 5},
		{name: "strong wind", input: 15.28, expected: 55},
		{name: "negative treated as calm", input: -3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MsToKmh(tt.input)
			if result != tt.expected {
				t.Errorf("MsToKmh(%v) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMsToKmh_Monotonic(t *testing.T) {
	previous := MsToKmh(0)
	for speed := 0.0; speed <= 60; speed += 0.05 {
		current := MsToKmh(speed)
		if current < previous {
			t.Fatalf("MsToKmh(%v) = %d, lower than previous %d", speed, current, previous)
		}
		previous = current
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		input    float64
		expected int
	}{
		{2.5, 3},
		{2.49, 2},
		{-2.5, -2},
		{-2.51, -3},
		{0, 0},
		{30.6, 31},
	}

	for _, tt := range tests {
		if result := Round(tt.input); result != tt.expected {
			t.Errorf("Round(%v) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestNewWindFromMs(t *testing.T) {
	tests := []struct {
		name             string
		speed            float64
		degrees          float64
		expectedKmh      int
		expectedCardinal string
	}{
		{name: "north", speed: 1, degrees: 0, expectedKmh: 4, expectedCardinal: "N"},
		{name: "east", speed: 5, degrees: 90, expectedKmh: 18, expectedCardinal: "E"},
		{name: "south south west", speed: 10, degrees: 200, expectedKmh: 36, expectedCardinal: "SSW"},
		{name: "wraps to north", speed: 0, degrees: 355, expectedKmh: 0, expectedCardinal: "N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wind := NewWindFromMs(tt.speed, tt.degrees)
			if wind.SpeedInKmh != tt.expectedKmh {
				t.Errorf("SpeedInKmh = %d, want %d", wind.SpeedInKmh, tt.expectedKmh)
			}
			if wind.DirectionCardinal != tt.expectedCardinal {
				t.Errorf("DirectionCardinal = %s, want %s", wind.DirectionCardinal, tt.expectedCardinal)
			}
		})
	}
}

func TestProbabilityToPercent(t *testing.T) {
	tests := []struct {
		input    float64
		expected int
	}{
		{0, 0},
		{0.29, 29},
		{0.75, 75},
		{1, 100},
	}

	for _, tt := range tests {
		if result := ProbabilityToPercent(tt.input); result != tt.expected {
			t.Errorf("ProbabilityToPercent(%v) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestCoords_Valid(t *testing.T) {
	if !NewCoords(-6.2, 106.8).Valid() {
		t.Error("expected Jakarta coordinates to be valid")
	}
	if NewCoords(91, 0).Valid() {
		t.Error("expected latitude 91 to be invalid")
	}
	if NewCoords(0, -181).Valid() {
		t.Error("expected longitude -181 to be invalid")
	}
	if NewCoords(math.NaN(), 0).Valid() || NewCoords(0, math.Inf(1)).Valid() {
		t.Error("expected NaN and infinite components to be invalid")
	}
}

func TestNewTemperatureFromCelsius(t *testing.T) {
	temp := NewTemperatureFromCelsius(30)
	if temp.Fahrenheit != 86 {
		t.Errorf("Fahrenheit = %v, want 86", temp.Fahrenheit)
	}
}

func TestCondition(t *testing.T) {
	c := Condition{Description: "light rain", Icon: "10n"}
	if c.Headline() != "LIGHT RAIN" {
		t.Errorf("Headline() = %q, want LIGHT RAIN", c.Headline())
	}
	if c.IconURL() != "https://openweathermap.org/img/wn/10n.png" {
		t.Errorf("IconURL() = %q", c.IconURL())
	}

	var empty Condition
	if empty.Headline() != "-" || empty.IconURL() != "" {
		t.Errorf("empty Condition = %q / %q, want - and empty", empty.Headline(), empty.IconURL())
	}
}
