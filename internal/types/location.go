package types

// Place is a resolved, human-readable location
type Place struct {
	Name        string `json:"name"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Coordinates Coords `json:"coord"`
	Timezone    string `json:"timezone,omitempty"`
}
