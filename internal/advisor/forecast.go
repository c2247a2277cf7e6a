package advisor

import "sort"

const dateKeyLayout = "2006-01-02"

// SummarizeForecast keeps one entry per calendar date, preferring samples taken
// at RepresentativeHour. When the series has no such samples every entry is
// considered instead, so an all-night series still produces a summary. The first
// entry seen for a date wins. The result is in date order and holds at most days entries.
func SummarizeForecast(forecast []ForecastEntry, days int) []ForecastEntry {
	if days <= 0 || len(forecast) == 0 {
		return []ForecastEntry{}
	}

	base := representativeEntries(forecast)
	if len(base) == 0 {
		base = forecast
	}

	byDate := make(map[string]ForecastEntry)
	dates := make([]string, 0, days)
	for _, entry := range base {
		if entry.Time.IsZero() {
			continue
		}
		key := entry.Time.UTC().Format(dateKeyLayout)
		if _, seen := byDate[key]; seen {
			continue
		}
		byDate[key] = entry
		dates = append(dates, key)
	}

	sort.Strings(dates)
	if len(dates) > days {
		dates = dates[:days]
	}

	summary := make([]ForecastEntry, 0, len(dates))
	for _, date := range dates {
		summary = append(summary, byDate[date])
	}
	return summary
}

func representativeEntries(forecast []ForecastEntry) []ForecastEntry {
	var matches []ForecastEntry
	for _, entry := range forecast {
		if entry.Time.IsZero() {
			continue
		}
		t := entry.Time.UTC()
		if t.Hour() == RepresentativeHour && t.Minute() == 0 {
			matches = append(matches, entry)
		}
	}
	return matches
}
