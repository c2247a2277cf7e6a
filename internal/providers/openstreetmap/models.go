package openstreetmap

type LookupAPIResponse struct {
	PlaceId     int     `json:"place_id"`
	OsmType     string  `json:"osm_type"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Type        string  `json:"type"`
	Addresstype string  `json:"addresstype"`
	Importance  float64 `json:"importance"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
	Error       string  `json:"error,omitempty"`
}

type Address struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	County      string `json:"county"`
	State       string `json:"state"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// Locality is the most specific settlement name in the address.
func (a Address) Locality() string {
	for _, name := range []string{a.City, a.Town, a.Village, a.County} {
		if name != "" {
			return name
		}
	}
	return ""
}
