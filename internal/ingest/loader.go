package ingest

import (
	"sort"

	"github.com/nvoss/ccdash/internal/logger"
	"github.com/nvoss/ccdash/internal/models"
)

// Loader runs the full ingestion pipeline over one log root.
type Loader struct {
	root string
}

// NewLoader creates a loader for the given log root directory.
func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Root returns the log root this loader reads from.
func (l *Loader) Root() string {
	return l.root
}

// LoadAllEntries discovers every transcript under the root, processes
// the files in deterministic order with one shared dedup set, and
// returns the merged entries sorted by timestamp. A missing root yields
// an empty list; an unreadable file is logged and contributes nothing,
// leaving the other files unaffected.
func (l *Loader) LoadAllEntries() []models.UsageEntry {
	files := Discover(l.root)
	if len(files) == 0 {
		return nil
	}

	SortForProcessing(files)

	seen := NewDedupSet()
	var all []models.UsageEntry
	for _, f := range files {
		entries, err := ExtractFile(f, seen)
		if err != nil {
			logger.Warn("skipping unreadable log file", "path", f.Path, "error", err)
			continue
		}
		all = append(all, entries...)
	}

	// Timestamps are fixed-width ISO-8601, so string order is
	// chronological order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp < all[j].Timestamp
	})

	return all
}
