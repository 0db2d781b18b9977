// Package models defines data structures and domain types.
package models

// ModelUsage aggregates usage for a single model.
type ModelUsage struct {
	Model               string
	TotalCost           float64
	TotalTokens         int64
	InputTokens         int64
	OutputTokens        int64
	CacheCreationTokens int64
	CacheReadTokens     int64
	SessionCount        int
}

// DailyUsage aggregates usage for a single calendar day.
type DailyUsage struct {
	Date        string // YYYY-MM-DD
	TotalCost   float64
	TotalTokens int64
	Models      []string
}

// ProjectUsage aggregates usage for a single project directory.
type ProjectUsage struct {
	ProjectPath  string
	ProjectName  string // last path segment
	TotalCost    float64
	TotalTokens  int64
	SessionCount int
	LastUsed     string // most recent entry timestamp
}

// SessionUsage aggregates usage for a single session.
type SessionUsage struct {
	SessionID           string
	ProjectPath         string
	ProjectName         string
	TotalCost           float64
	TotalTokens         int64
	InputTokens         int64
	OutputTokens        int64
	CacheCreationTokens int64
	CacheReadTokens     int64
	StartTime           string // earliest entry timestamp
	LastActivity        string // latest entry timestamp
	Models              []string
}

// UsageStats is the full aggregated view over a list of entries.
type UsageStats struct {
	TotalCost           float64
	TotalTokens         int64
	InputTokens         int64
	OutputTokens        int64
	CacheCreationTokens int64
	CacheReadTokens     int64
	TotalSessions       int
	ByModel             []ModelUsage
	ByDate              []DailyUsage
	ByProject           []ProjectUsage
}
