package openweathermap

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainReadings has a nullable temperature so a missing value is not read as 0°C.
type MainReadings struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   float64  `json:"temp_min"`
	TempMax   float64  `json:"temp_max"`
	Pressure  int      `json:"pressure"`
	Humidity  int      `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

// CurrentWeather is the /weather payload.
type CurrentWeather struct {
	Coord      Coord        `json:"coord"`
	Weather    []Condition  `json:"weather"`
	Main       MainReadings `json:"main"`
	Visibility int          `json:"visibility"`
	Wind       Wind         `json:"wind"`
	Clouds     Clouds       `json:"clouds"`
	Dt         int64        `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"` // shift from UTC in seconds
	ID       int    `json:"id"`
	Name     string `json:"name"`
}

// PrimaryCondition is the first reported condition, or a zero Condition.
func (c *CurrentWeather) PrimaryCondition() Condition {
	if len(c.Weather) == 0 {
		return Condition{}
	}
	return c.Weather[0]
}

type ForecastItem struct {
	Dt      int64        `json:"dt"`
	Main    MainReadings `json:"main"`
	Weather []Condition  `json:"weather"`
	Wind    Wind         `json:"wind"`
	Pop     float64      `json:"pop"`
	DtTxt   string       `json:"dt_txt"`
}

// Forecast is the /forecast payload: 3-hourly samples for five days.
type Forecast struct {
	Cnt  int            `json:"cnt"`
	List []ForecastItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Coord    Coord  `json:"coord"`
		Timezone int    `json:"timezone"`
		Sunrise  int64  `json:"sunrise"`
		Sunset   int64  `json:"sunset"`
	} `json:"city"`
}

// AirPollution is the /air_pollution payload. Main.AQI uses the 1..5 scale.
type AirPollution struct {
	Coord Coord                `json:"coord"`
	List  []AirPollutionSample `json:"list"`
}

type AirPollutionSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components map[string]float64 `json:"components,omitempty"`
}

// Index returns the first reported AQI. A missing or off-scale value is not reported.
func (a *AirPollution) Index() (int, bool) {
	if a == nil || len(a.List) == 0 {
		return 0, false
	}
	aqi := a.List[0].Main.AQI
	if aqi < 1 || aqi > 5 {
		return 0, false
	}
	return aqi, true
}

// GeoResult is one match from the direct geocoding endpoint.
type GeoResult struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}
