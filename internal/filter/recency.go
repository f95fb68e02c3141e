// Package filter narrows combined item sequences by recency.
package filter

import (
	"time"

	"github.com/abelbrown/feedline/internal/feeds"
)

// Mode selects the recency window.
type Mode string

const (
	All   Mode = "all"
	Today Mode = "today" // within the last 24 hours
	Week  Mode = "week"  // within the last 7 days
)

// Windows are fractional durations, not calendar truncations: "today"
// means 24.0 hours from now, not since midnight.
const (
	todayWindow = 24 * time.Hour
	weekWindow  = 7 * 24 * time.Hour
)

// ParseMode maps a stored mode string onto a Mode. Unknown strings
// fall back to All.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case Today:
		return Today
	case Week:
		return Week
	default:
		return All
	}
}

// Next cycles All -> Today -> Week -> All.
func (m Mode) Next() Mode {
	switch m {
	case All:
		return Today
	case Today:
		return Week
	default:
		return All
	}
}

// Label is the display name for the mode.
func (m Mode) Label() string {
	switch m {
	case Today:
		return "Today"
	case Week:
		return "This week"
	default:
		return "All"
	}
}

// ByRecency returns the subsequence of items whose publish date falls
// within the window implied by mode, with now as the reference point.
//
// All is the identity. Under Today and Week, items without a publish
// date are excluded (no recency can be established), and items dated
// in the future are included: the diff is simply <= the window, with
// no floor at zero. Pure function; relative item order is preserved.
func ByRecency(items []feeds.CombinedItem, mode Mode, now time.Time) []feeds.CombinedItem {
	if mode == All {
		return items
	}

	window := todayWindow
	if mode == Week {
		window = weekWindow
	}

	filtered := make([]feeds.CombinedItem, 0, len(items))
	for _, item := range items {
		if item.Published == nil {
			continue
		}
		if now.Sub(*item.Published) <= window {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
