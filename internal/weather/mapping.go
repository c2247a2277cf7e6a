package weather

import (
	"time"

	"weather-advisor/internal/advisor"
	"weather-advisor/internal/providers/openweathermap"
	"weather-advisor/internal/types"
)

// toTime converts provider epoch seconds, treating 0 as missing
func toTime(epoch int64) time.Time {
	if epoch <= 0 {
		return time.Time{}
	}
	return time.Unix(epoch, 0).UTC()
}

func toCondition(c openweathermap.Condition) types.Condition {
	return types.Condition{ID: c.ID, Main: c.Main, Description: c.Description, Icon: c.Icon}
}

func mapSnapshot(resp *openweathermap.CurrentWeather) advisor.Snapshot {
	condition := resp.PrimaryCondition()
	return advisor.Snapshot{
		ObservedAt:  toTime(resp.Dt),
		Sunrise:     toTime(resp.Sys.Sunrise),
		Sunset:      toTime(resp.Sys.Sunset),
		Condition:   condition.Main,
		Description: condition.Description,
		Icon:        condition.Icon,
		Temperature: resp.Main.Temp,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
		WindDegrees: resp.Wind.Deg,
		Place:       resp.Name,
		CountryCode: resp.Sys.Country,
		Coordinates: types.NewCoords(resp.Coord.Lat, resp.Coord.Lon),
	}
}

func mapCurrent(resp *openweathermap.CurrentWeather) Current {
	condition := toCondition(resp.PrimaryCondition())
	current := Current{
		Place:       resp.Name,
		CountryCode: resp.Sys.Country,
		Condition:   condition,
		Headline:    condition.Headline(),
		IconURL:     condition.IconURL(),
		Humidity:    resp.Main.Humidity,
		Wind:        types.NewWindFromMs(resp.Wind.Speed, resp.Wind.Deg),
		ObservedAt:  toTime(resp.Dt),
		Sunrise:     toTime(resp.Sys.Sunrise),
		Sunset:      toTime(resp.Sys.Sunset),
	}
	if resp.Main.Temp != nil {
		t := types.NewTemperatureFromCelsius(*resp.Main.Temp)
		current.Temperature = &t
	}
	if resp.Main.FeelsLike != nil {
		t := types.NewTemperatureFromCelsius(*resp.Main.FeelsLike)
		current.FeelsLike = &t
	}
	return current
}

func mapForecast(resp *openweathermap.Forecast) []advisor.ForecastEntry {
	if resp == nil {
		return []advisor.ForecastEntry{}
	}

	entries := make([]advisor.ForecastEntry, 0, len(resp.List))
	for _, item := range resp.List {
		var condition openweathermap.Condition
		if len(item.Weather) > 0 {
			condition = item.Weather[0]
		}
		var temp float64
		if item.Main.Temp != nil {
			temp = *item.Main.Temp
		}
		entries = append(entries, advisor.ForecastEntry{
			Time:                     toTime(item.Dt),
			DateText:                 item.DtTxt,
			Condition:                condition.Main,
			Description:              condition.Description,
			Icon:                     condition.Icon,
			Temperature:              temp,
			WindSpeed:                item.Wind.Speed,
			PrecipitationProbability: item.Pop,
		})
	}
	return entries
}

func mapAirQuality(resp *openweathermap.AirPollution) *advisor.AirQualityIndex {
	index, ok := resp.Index()
	if !ok {
		return nil
	}
	aqi := advisor.AirQualityIndex(index)
	return &aqi
}
