//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"weather-advisor/internal/config"
)

func TestClient_Lookup_Integration(t *testing.T) {
	// Test coordinates: Bandung, Indonesia
	lat := -6.9147
	lon := 107.6098

	client := NewClient(config.NominatimConfig{
		BaseURL:   "https://nominatim.openstreetmap.org",
		UserAgent: "weather-advisor-integration-test",
		Timeout:   10 * time.Second,
	})

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Lookup(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get location data: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.PlaceId == 0 {
		t.Error("PlaceId is 0")
	}
	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}
	if resp.Address.CountryCode != "id" {
		t.Errorf("CountryCode = %q, want id", resp.Address.CountryCode)
	}

	t.Logf("  Locality: %s", resp.Address.Locality())
	t.Logf("  State: %s", resp.Address.State)
}
