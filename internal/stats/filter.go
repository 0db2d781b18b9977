// Package stats folds usage entries into grouped reporting views.
package stats

import (
	"time"

	"github.com/nvoss/ccdash/internal/models"
)

// FilterByRange narrows entries to the requested window. All-time is
// identity. For windowed ranges the cutoff is now minus N days; entries
// whose timestamps do not parse are excluded, since they cannot be
// placed inside any window.
func FilterByRange(entries []models.UsageEntry, r models.TimeRange) []models.UsageEntry {
	days := r.Days()
	if days == 0 {
		return entries
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	filtered := make([]models.UsageEntry, 0, len(entries))
	for _, e := range entries {
		ts, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			continue
		}
		if !ts.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
