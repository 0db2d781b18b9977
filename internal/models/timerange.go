// Package models defines data structures and domain types.
package models

// TimeRange represents the selected reporting window.
type TimeRange int

const (
	// TimeRange7Days shows entries from the last 7 days.
	TimeRange7Days TimeRange = iota
	// TimeRange30Days shows entries from the last 30 days.
	TimeRange30Days
	// TimeRangeAllTime shows every entry on disk.
	TimeRangeAllTime
)

// String returns the display name for a time range.
func (t TimeRange) String() string {
	switch t {
	case TimeRange7Days:
		return "7 Days"
	case TimeRange30Days:
		return "30 Days"
	case TimeRangeAllTime:
		return "All Time"
	default:
		return "Unknown"
	}
}

// Days returns the window size in days (0 = unlimited).
func (t TimeRange) Days() int {
	switch t {
	case TimeRange7Days:
		return 7
	case TimeRange30Days:
		return 30
	case TimeRangeAllTime:
		return 0
	default:
		return 30
	}
}

// Next cycles to the next time range.
func (t TimeRange) Next() TimeRange {
	return (t + 1) % 3
}

// ParseTimeRange maps a configuration value ("7d", "30d", "all") to a
// TimeRange, defaulting to 30 days for anything unrecognized.
func ParseTimeRange(s string) TimeRange {
	switch s {
	case "7d":
		return TimeRange7Days
	case "30d":
		return TimeRange30Days
	case "all":
		return TimeRangeAllTime
	default:
		return TimeRange30Days
	}
}
