package stats

import (
	"math"
	"reflect"
	"testing"

	"github.com/nvoss/ccdash/internal/models"
)

func sampleEntries() []models.UsageEntry {
	return []models.UsageEntry{
		{
			Timestamp: "2025-08-01T10:00:00Z", Model: "claude-sonnet-4-5",
			SessionID: "s1", ProjectPath: "/home/user/alpha",
			InputTokens: 1000, OutputTokens: 500, Cost: 0.01,
		},
		{
			Timestamp: "2025-08-01T11:00:00Z", Model: "claude-opus-4-5",
			SessionID: "s1", ProjectPath: "/home/user/alpha",
			InputTokens: 200, OutputTokens: 100, CacheReadTokens: 4000, Cost: 0.05,
		},
		{
			Timestamp: "2025-08-02T09:00:00Z", Model: "claude-sonnet-4-5",
			SessionID: "s2", ProjectPath: "/home/user/beta",
			InputTokens: 50, OutputTokens: 25, Cost: 0.002,
		},
	}
}

func TestAggregateTotals(t *testing.T) {
	stats := Aggregate(sampleEntries())

	if math.Abs(stats.TotalCost-0.062) > 1e-12 {
		t.Errorf("TotalCost = %v, want 0.062", stats.TotalCost)
	}
	if stats.TotalTokens != 5875 {
		t.Errorf("TotalTokens = %d, want 5875", stats.TotalTokens)
	}
	if stats.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", stats.TotalSessions)
	}

	// Group totals must add back up to the overall totals.
	var modelCost, projectCost, dailyCost float64
	for _, m := range stats.ByModel {
		modelCost += m.TotalCost
	}
	for _, p := range stats.ByProject {
		projectCost += p.TotalCost
	}
	for _, d := range stats.ByDate {
		dailyCost += d.TotalCost
	}
	for _, got := range []float64{modelCost, projectCost, dailyCost} {
		if math.Abs(got-stats.TotalCost) > 1e-12 {
			t.Errorf("group cost sum = %v, want %v", got, stats.TotalCost)
		}
	}
}

func TestAggregateGroupOrder(t *testing.T) {
	stats := Aggregate(sampleEntries())

	if len(stats.ByModel) != 2 || stats.ByModel[0].Model != "claude-opus-4-5" {
		t.Errorf("ByModel order wrong: %+v", stats.ByModel)
	}
	if len(stats.ByProject) != 2 || stats.ByProject[0].ProjectName != "alpha" {
		t.Errorf("ByProject order wrong: %+v", stats.ByProject)
	}
	if len(stats.ByDate) != 2 || stats.ByDate[0].Date != "2025-08-01" {
		t.Errorf("ByDate order wrong: %+v", stats.ByDate)
	}
	if want := []string{"claude-opus-4-5", "claude-sonnet-4-5"}; !reflect.DeepEqual(stats.ByDate[0].Models, want) {
		t.Errorf("day models = %v, want %v", stats.ByDate[0].Models, want)
	}
}

func TestAggregateSessionCounts(t *testing.T) {
	stats := Aggregate(sampleEntries())

	for _, m := range stats.ByModel {
		want := 1
		if m.Model == "claude-sonnet-4-5" {
			want = 2
		}
		if m.SessionCount != want {
			t.Errorf("%s SessionCount = %d, want %d", m.Model, m.SessionCount, want)
		}
	}
	for _, p := range stats.ByProject {
		if p.SessionCount != 1 {
			t.Errorf("%s SessionCount = %d, want 1", p.ProjectName, p.SessionCount)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.TotalCost != 0 || stats.TotalTokens != 0 || stats.TotalSessions != 0 {
		t.Errorf("empty aggregate has nonzero totals: %+v", stats)
	}
	if len(stats.ByModel) != 0 || len(stats.ByDate) != 0 || len(stats.ByProject) != 0 {
		t.Errorf("empty aggregate has groups: %+v", stats)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	entries := sampleEntries()
	first := Aggregate(entries)
	second := Aggregate(entries)
	if !reflect.DeepEqual(first, second) {
		t.Error("aggregating the same entries twice gave different results")
	}
}

func TestSessionStats(t *testing.T) {
	sessions := SessionStats(sampleEntries())
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	// Most recent start first.
	if sessions[0].SessionID != "s2" || sessions[1].SessionID != "s1" {
		t.Errorf("session order wrong: %s, %s", sessions[0].SessionID, sessions[1].SessionID)
	}

	s1 := sessions[1]
	if s1.StartTime != "2025-08-01T10:00:00Z" || s1.LastActivity != "2025-08-01T11:00:00Z" {
		t.Errorf("s1 span = [%s, %s]", s1.StartTime, s1.LastActivity)
	}
	if s1.TotalTokens != 5800 {
		t.Errorf("s1 TotalTokens = %d, want 5800", s1.TotalTokens)
	}
	if s1.ProjectName != "alpha" {
		t.Errorf("s1 ProjectName = %q, want alpha", s1.ProjectName)
	}
	if len(s1.Models) != 2 {
		t.Errorf("s1 Models = %v, want two models", s1.Models)
	}
}

func TestSessionStatsProjectConflict(t *testing.T) {
	// The first entry's project wins when a session claims two projects.
	entries := []models.UsageEntry{
		{Timestamp: "2025-08-01T10:00:00Z", Model: "m", SessionID: "s1",
			ProjectPath: "/proj/a", InputTokens: 1, Cost: 0.001},
		{Timestamp: "2025-08-01T11:00:00Z", Model: "m", SessionID: "s1",
			ProjectPath: "/proj/b", InputTokens: 1, Cost: 0.001},
	}
	sessions := SessionStats(entries)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].ProjectPath != "/proj/a" {
		t.Errorf("ProjectPath = %q, want /proj/a", sessions[0].ProjectPath)
	}
	if sessions[0].TotalTokens != 2 {
		t.Errorf("TotalTokens = %d, want 2", sessions[0].TotalTokens)
	}
}
