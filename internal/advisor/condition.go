package advisor

import "strings"

// Theme is the visual weather category of a condition.
type Theme string

const (
	ThemeStorm   Theme = "storm"
	ThemeRain    Theme = "rain"
	ThemeClear   Theme = "clear"
	ThemeClouds  Theme = "clouds"
	ThemeSnow    Theme = "snow"
	ThemeMist    Theme = "mist"
	ThemeDefault Theme = "default"
)

type conditionRule struct {
	theme    Theme
	keywords []string
}

// conditionRules is evaluated top to bottom; the first rule with a matching
// keyword decides the theme.
var conditionRules = []conditionRule{
	{ThemeStorm, []string{"thunderstorm"}},
	{ThemeRain, []string{"rain", "drizzle"}},
	{ThemeClear, []string{"clear"}},
	{ThemeClouds, []string{"cloud"}},
	{ThemeSnow, []string{"snow"}},
	{ThemeMist, []string{"mist", "haze", "fog", "smoke", "dust", "sand", "ash", "squall", "tornado"}},
}

// Classify maps free condition text to a Theme. Matching is case-insensitive
// substring containment; unmatched or empty text yields ThemeDefault.
func Classify(condition string) Theme {
	c := normalizeCondition(condition)
	if c == "" {
		return ThemeDefault
	}
	for _, rule := range conditionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(c, keyword) {
				return rule.theme
			}
		}
	}
	return ThemeDefault
}

// Icon keys understood by the presentation layer.
const (
	IconSun       = "sun"
	IconMoon      = "moon"
	IconCloud     = "cloud"
	IconCloudRain = "cloud-rain"
	IconBolt      = "bolt"
	IconSnowflake = "snowflake"
	IconSmog      = "smog"
)

// IconKey picks the hero icon for a theme. Only clear skies differ between day and night.
func IconKey(theme Theme, night bool) string {
	switch theme {
	case ThemeClear:
		if night {
			return IconMoon
		}
		return IconSun
	case ThemeClouds:
		return IconCloud
	case ThemeRain:
		return IconCloudRain
	case ThemeStorm:
		return IconBolt
	case ThemeSnow:
		return IconSnowflake
	case ThemeMist:
		return IconSmog
	default:
		return IconCloud
	}
}
