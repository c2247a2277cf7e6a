package types

import "strings"

// Condition is a provider weather condition. Main is the coarse group such as
// "Rain" or "Clouds", Description the finer free text, Icon the provider icon code.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// IconURL returns the provider-hosted image for the condition icon
func (c Condition) IconURL() string {
	if c.Icon == "" {
		return ""
	}
	return "https://openweathermap.org/img/wn/" + c.Icon + ".png"
}

// Headline is the upper-cased description used as a status line
func (c Condition) Headline() string {
	if c.Description == "" {
		return "-"
	}
	return strings.ToUpper(c.Description)
}
