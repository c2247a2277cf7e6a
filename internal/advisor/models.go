package advisor

import (
	"time"

	"weather-advisor/internal/types"
)

// Snapshot is the current observation for one location. Zero times mean the
// value was not reported; a nil Temperature means the temperature is unknown.
type Snapshot struct {
	ObservedAt  time.Time
	Sunrise     time.Time
	Sunset      time.Time
	Condition   string
	Description string
	Icon        string
	Temperature *float64
	Humidity    int
	WindSpeed   float64 // m/s
	WindDegrees float64
	Place       string
	CountryCode string
	Coordinates types.Coords
}

// ForecastEntry is one sample of the forecast series.
type ForecastEntry struct {
	Time                     time.Time `json:"dt"`
	DateText                 string    `json:"dt_txt"`
	Condition                string    `json:"condition"`
	Description              string    `json:"description,omitempty"`
	Icon                     string    `json:"icon,omitempty"`
	Temperature              float64   `json:"temp"`
	WindSpeed                float64   `json:"wind_speed"`
	PrecipitationProbability float64   `json:"pop"`
}

// Input is everything the advisor needs for one evaluation.
type Input struct {
	Snapshot   Snapshot
	Forecast   []ForecastEntry
	AirQuality *AirQualityIndex
}

// Bundle holds every judgment derived from an Input.
type Bundle struct {
	Theme               Theme           `json:"theme"`
	Night               bool            `json:"night"`
	Icon                string          `json:"icon"`
	AirQualityLabel     string          `json:"aqi_label"`
	PrecipitationMax24h float64         `json:"pop_max_24h"`
	Recommendation      Recommendation  `json:"recommendation"`
	Risk                Risk            `json:"risk"`
	Packing             []PackItem      `json:"packing"`
	Forecast            []ForecastEntry `json:"forecast_summary"`
}
