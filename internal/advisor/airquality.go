package advisor

// AirQualityIndex is the provider's 1 (best) to 5 (worst) air quality scale.
// An unknown index is a nil *AirQualityIndex.
type AirQualityIndex int

const (
	AirQualityVeryGood AirQualityIndex = 1
	AirQualityGood     AirQualityIndex = 2
	AirQualityModerate AirQualityIndex = 3
	AirQualityPoor     AirQualityIndex = 4
	AirQualityVeryPoor AirQualityIndex = 5
)

const AirQualityUnknownLabel = "N/A"

var airQualityLabels = map[AirQualityIndex]string{
	AirQualityVeryGood: "Very Good",
	AirQualityGood:     "Good",
	AirQualityModerate: "Moderate",
	AirQualityPoor:     "Poor",
	AirQualityVeryPoor: "Very Poor",
}

func (a AirQualityIndex) String() string {
	if label, ok := airQualityLabels[a]; ok {
		return label
	}
	return AirQualityUnknownLabel
}

// AirQualityLabel returns the severity label, or "N/A" when the index is absent
// or outside 1..5.
func AirQualityLabel(aqi *AirQualityIndex) string {
	if aqi == nil {
		return AirQualityUnknownLabel
	}
	return aqi.String()
}
