// Package usage loads log entries and computes aggregated views on demand.
package usage

import (
	"github.com/nvoss/ccdash/internal/ingest"
	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/stats"
)

// Snapshot is one consistent aggregated view over the logs.
type Snapshot struct {
	Range    models.TimeRange
	Stats    models.UsageStats
	Sessions []models.SessionUsage
}

// Service reads usage data from a log root.
type Service struct {
	loader *ingest.Loader
}

// New creates a usage service over the given log root.
func New(logRoot string) *Service {
	return &Service{loader: ingest.NewLoader(logRoot)}
}

// LogRoot returns the directory this service reads from.
func (s *Service) LogRoot() string {
	return s.loader.Root()
}

// Load runs the full pipeline and aggregates the entries that fall in
// the requested window. Each call re-reads the logs with a fresh dedup
// set, so repeated loads over unchanged files give identical results.
func (s *Service) Load(r models.TimeRange) Snapshot {
	entries := s.loader.LoadAllEntries()
	windowed := stats.FilterByRange(entries, r)

	return Snapshot{
		Range:    r,
		Stats:    stats.Aggregate(windowed),
		Sessions: stats.SessionStats(windowed),
	}
}
