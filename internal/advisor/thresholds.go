package advisor

// Policy values below assume the provider samples the forecast every 3 hours.
// A different sampling interval only needs new values here.
const (
	// LookAheadEntries is the number of forecast samples covering the next 24 hours.
	LookAheadEntries = 8

	// RepresentativeHour is the hour of day preferred when picking one sample per day.
	RepresentativeHour = 12

	// SummaryDays is how many days the forecast summary keeps.
	SummaryDays = 3
)

// Rain probability cutoffs, in whole percent.
const (
	RainLikelyPercent = 60
	RainSeverePercent = 80
)

// Wind cutoffs, in km/h.
const (
	WindRiskKmh    = 30
	WindRedFlagKmh = 35
	WindSevereKmh  = 55
)

// Temperature cutoffs, in whole degrees Celsius.
const (
	ColdRedFlagCelsius = 10
	JacketCelsius      = 12
	WarmCelsius        = 28
	HeatRedFlagCelsius = 33
)
