package weather

import (
	"time"

	"weather-advisor/internal/advisor"
	"weather-advisor/internal/types"
)

// ReportRequest selects a place by name or coordinates. Coords win when both are set.
type ReportRequest struct {
	City   string
	Coords *types.Coords
	Mode   advisor.ActivityMode
}

// Report is the raw provider data for one place together with everything derived from it.
type Report struct {
	Current    Current                  `json:"current"`
	Forecast   []advisor.ForecastEntry  `json:"forecast"`
	AirQuality *advisor.AirQualityIndex `json:"aqi"`
	Meta       Meta                     `json:"meta"`
	Advisory   advisor.Bundle           `json:"advisory"`
	Mode       advisor.ActivityMode     `json:"mode"`
}

// Current is the display view of the current observation.
type Current struct {
	Place       string             `json:"place"`
	CountryCode string             `json:"country_code,omitempty"`
	Condition   types.Condition    `json:"condition"`
	Headline    string             `json:"headline"`
	IconURL     string             `json:"icon_url,omitempty"`
	Temperature *types.Temperature `json:"temperature"`
	FeelsLike   *types.Temperature `json:"feels_like,omitempty"`
	Humidity    int                `json:"humidity"`
	Wind        types.Wind         `json:"wind"`
	ObservedAt  time.Time          `json:"observed_at"`
	Sunrise     time.Time          `json:"sunrise"`
	Sunset      time.Time          `json:"sunset"`
}

type Meta struct {
	PopMax24h    float64      `json:"pop_max_24h"`
	CityResolved string       `json:"city_resolved"`
	Coord        types.Coords `json:"coord"`
	Timezone     string       `json:"timezone,omitempty"`
	LocalTime    *time.Time   `json:"local_time,omitempty"`
	GeneratedAt  time.Time    `json:"generated_at"`
}
