package advisor

import (
	"testing"
	"time"
)

func TestIsNight(t *testing.T) {
	sunrise := time.Unix(1700000000, 0)
	sunset := sunrise.Add(12 * time.Hour)

	tests := []struct {
		name     string
		observed time.Time
		sunrise  time.Time
		sunset   time.Time
		expected bool
	}{
		{"midday", sunrise.Add(6 * time.Hour), sunrise, sunset, false},
		{"before sunrise", sunrise.Add(-time.Minute), sunrise, sunset, true},
		{"after sunset", sunset.Add(time.Minute), sunrise, sunset, true},
		{"exactly at sunrise", sunrise, sunrise, sunset, false},
		{"exactly at sunset", sunset, sunrise, sunset, false},
		{"missing observation", time.Time{}, sunrise, sunset, false},
		{"missing sunrise", sunset.Add(time.Hour), time.Time{}, sunset, false},
		{"missing sunset", sunset.Add(time.Hour), sunrise, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNight(tt.observed, tt.sunrise, tt.sunset)
			if result != tt.expected {
				t.Errorf("IsNight() = %v, want %v", result, tt.expected)
			}
		})
	}
}
