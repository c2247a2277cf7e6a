package advisor

import (
	"errors"
	"fmt"
	"strings"
)

// ActivityMode is how the user plans to travel outdoors.
type ActivityMode string

const (
	ModeWalking ActivityMode = "walking"
	ModeRiding  ActivityMode = "riding"
)

var ErrInvalidActivityMode = errors.New("activity mode must be walking or riding")

var activityModeAliases = map[string]ActivityMode{
	"walking": ModeWalking,
	"walk":    ModeWalking,
	"jalan":   ModeWalking,
	"riding":  ModeRiding,
	"ride":    ModeRiding,
	"motoran": ModeRiding,
}

// ParseActivityMode resolves a user-supplied mode. An empty value defaults to walking.
func ParseActivityMode(s string) (ActivityMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeWalking, nil
	}
	mode, ok := activityModeAliases[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidActivityMode, s)
	}
	return mode, nil
}

type PackItem struct {
	Icon string `json:"icon"`
	Item string `json:"item"`
	Why  string `json:"why"`
}

// Pack builds the packing checklist. Rules are independent and every matching
// item is included; when none match a single casual outfit is suggested. An
// unknown temperature yields an empty list.
func Pack(snapshot Snapshot, precipitationMax float64, mode ActivityMode) []PackItem {
	items := []PackItem{}
	if snapshot.Temperature == nil {
		return items
	}
	r := readingsOf(snapshot, precipitationMax)

	if *snapshot.Temperature <= JacketCelsius {
		items = append(items, PackItem{Icon: "🧥", Item: "Jacket", Why: fmt.Sprintf("Cold (%d°C)", r.temp)})
	}
	if *snapshot.Temperature > WarmCelsius {
		items = append(items,
			PackItem{Icon: "👕", Item: "Comfortable clothing", Why: fmt.Sprintf("Warm (%d°C)", r.temp)},
			PackItem{Icon: "🧢", Item: "Hat", Why: "Midday is likely hot"},
		)
	}
	if r.wet() || r.thunderstorm() || r.rainProb >= RainLikelyPercent {
		items = append(items, PackItem{Icon: "☔", Item: "Umbrella/Raincoat", Why: fmt.Sprintf("Rain chance %d%%", r.rainProb)})
	}
	if mode == ModeRiding {
		items = append(items,
			PackItem{Icon: "🧤", Item: "Gloves", Why: "Protection from wind and cold"},
			PackItem{Icon: "😷", Item: "Mask", Why: "Dust and pollution"},
		)
	}

	if len(items) == 0 {
		items = append(items, PackItem{Icon: "🙂", Item: "Casual outfit", Why: fmt.Sprintf("Safe temperature (%d°C)", r.temp)})
	}
	return items
}
