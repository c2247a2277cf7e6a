// Package advisor turns a weather snapshot, its forecast and an air quality
// reading into presentation-ready judgments. Everything here is pure: no I/O,
// no shared state, safe for concurrent use.
package advisor

// Derive computes every judgment for in. Each component sees the same
// aggregated precipitation maximum but evaluates its own rules.
func Derive(in Input, mode ActivityMode) Bundle {
	precipitationMax := MaxPrecipitation(in.Forecast)
	theme := Classify(in.Snapshot.Condition)
	night := IsNight(in.Snapshot.ObservedAt, in.Snapshot.Sunrise, in.Snapshot.Sunset)
	aqiLabel := AirQualityLabel(in.AirQuality)

	return Bundle{
		Theme:               theme,
		Night:               night,
		Icon:                IconKey(theme, night),
		AirQualityLabel:     aqiLabel,
		PrecipitationMax24h: precipitationMax,
		Recommendation:      Recommend(in.Snapshot, precipitationMax, aqiLabel),
		Risk:                AssessRisk(in.Snapshot, precipitationMax),
		Packing:             Pack(in.Snapshot, precipitationMax, mode),
		Forecast:            SummarizeForecast(in.Forecast, SummaryDays),
	}
}
