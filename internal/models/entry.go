// Package models defines data structures and domain types.
package models

// UsageEntry is one canonical usage record extracted from a Claude Code
// log line. Timestamps are kept as the raw ISO-8601 strings from the log;
// they are fixed-width UTC and therefore sort lexicographically.
type UsageEntry struct {
	Timestamp           string
	Model               string
	SessionID           string
	ProjectPath         string
	InputTokens         int64
	OutputTokens        int64
	CacheCreationTokens int64
	CacheReadTokens     int64
	Cost                float64
}

// TotalTokens returns the sum of all four token categories.
func (e UsageEntry) TotalTokens() int64 {
	return e.InputTokens + e.OutputTokens + e.CacheCreationTokens + e.CacheReadTokens
}

// DateKey returns the calendar date portion (YYYY-MM-DD) of the timestamp.
func (e UsageEntry) DateKey() string {
	if len(e.Timestamp) < 10 {
		return e.Timestamp
	}
	return e.Timestamp[:10]
}
