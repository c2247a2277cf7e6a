package types

import "math"

const MsToKmhFactor = 3.6

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

type Wind struct {
	SpeedInMs         float64 `json:"speed_ms"`
	SpeedInKmh        int     `json:"speed_kmh"`
	DirectionDegrees  float64 `json:"direction_deg"`
	DirectionCardinal string  `json:"direction"`
}

func NewWindFromMs(speedInMs, directionDegrees float64) Wind {
	direction := (directionDegrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	if index < 0 {
		index += 16
	}

	return Wind{
		SpeedInMs:         speedInMs,
		SpeedInKmh:        MsToKmh(speedInMs),
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: cardinalDirections[index],
	}
}

// MsToKmh converts meters per second to whole kilometers per hour.
// Negative readings are treated as calm.
func MsToKmh(speed float64) int {
	if speed < 0 || math.IsNaN(speed) {
		return 0
	}
	return Round(speed * MsToKmhFactor)
}

// Round rounds half up, so -2.5 becomes -2 and 2.5 becomes 3
func Round(value float64) int {
	return int(math.Floor(value + 0.5))
}
