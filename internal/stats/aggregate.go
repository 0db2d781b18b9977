package stats

import (
	"path/filepath"
	"sort"

	"github.com/nvoss/ccdash/internal/logger"
	"github.com/nvoss/ccdash/internal/models"
)

// Aggregate folds entries into the full grouped view: overall totals
// plus per-model, per-day, and per-project breakdowns. Per-model and
// per-project groups are sorted by total cost descending, days by date
// ascending. Empty input yields zeroed stats with empty groups.
func Aggregate(entries []models.UsageEntry) models.UsageStats {
	var stats models.UsageStats

	byModel := make(map[string]*models.ModelUsage)
	byDate := make(map[string]*models.DailyUsage)
	byProject := make(map[string]*models.ProjectUsage)
	sessions := make(map[string]struct{})
	modelSessions := make(map[string]map[string]struct{})
	projectSessions := make(map[string]map[string]struct{})
	dateModels := make(map[string]map[string]struct{})

	for _, e := range entries {
		total := e.TotalTokens()

		stats.TotalCost += e.Cost
		stats.TotalTokens += total
		stats.InputTokens += e.InputTokens
		stats.OutputTokens += e.OutputTokens
		stats.CacheCreationTokens += e.CacheCreationTokens
		stats.CacheReadTokens += e.CacheReadTokens
		sessions[e.SessionID] = struct{}{}

		mu := byModel[e.Model]
		if mu == nil {
			mu = &models.ModelUsage{Model: e.Model}
			byModel[e.Model] = mu
			modelSessions[e.Model] = make(map[string]struct{})
		}
		mu.TotalCost += e.Cost
		mu.TotalTokens += total
		mu.InputTokens += e.InputTokens
		mu.OutputTokens += e.OutputTokens
		mu.CacheCreationTokens += e.CacheCreationTokens
		mu.CacheReadTokens += e.CacheReadTokens
		modelSessions[e.Model][e.SessionID] = struct{}{}

		date := e.DateKey()
		du := byDate[date]
		if du == nil {
			du = &models.DailyUsage{Date: date}
			byDate[date] = du
			dateModels[date] = make(map[string]struct{})
		}
		du.TotalCost += e.Cost
		du.TotalTokens += total
		dateModels[date][e.Model] = struct{}{}

		pu := byProject[e.ProjectPath]
		if pu == nil {
			pu = &models.ProjectUsage{
				ProjectPath: e.ProjectPath,
				ProjectName: projectName(e.ProjectPath),
			}
			byProject[e.ProjectPath] = pu
			projectSessions[e.ProjectPath] = make(map[string]struct{})
		}
		pu.TotalCost += e.Cost
		pu.TotalTokens += total
		if e.Timestamp > pu.LastUsed {
			pu.LastUsed = e.Timestamp
		}
		projectSessions[e.ProjectPath][e.SessionID] = struct{}{}
	}

	stats.TotalSessions = len(sessions)

	stats.ByModel = make([]models.ModelUsage, 0, len(byModel))
	for model, mu := range byModel {
		mu.SessionCount = len(modelSessions[model])
		stats.ByModel = append(stats.ByModel, *mu)
	}
	sort.Slice(stats.ByModel, func(i, j int) bool {
		a, b := stats.ByModel[i], stats.ByModel[j]
		if a.TotalCost != b.TotalCost {
			return a.TotalCost > b.TotalCost
		}
		return a.Model < b.Model
	})

	stats.ByDate = make([]models.DailyUsage, 0, len(byDate))
	for date, du := range byDate {
		du.Models = sortedKeys(dateModels[date])
		stats.ByDate = append(stats.ByDate, *du)
	}
	sort.Slice(stats.ByDate, func(i, j int) bool {
		return stats.ByDate[i].Date < stats.ByDate[j].Date
	})

	stats.ByProject = make([]models.ProjectUsage, 0, len(byProject))
	for path, pu := range byProject {
		pu.SessionCount = len(projectSessions[path])
		stats.ByProject = append(stats.ByProject, *pu)
	}
	sort.Slice(stats.ByProject, func(i, j int) bool {
		a, b := stats.ByProject[i], stats.ByProject[j]
		if a.TotalCost != b.TotalCost {
			return a.TotalCost > b.TotalCost
		}
		return a.ProjectPath < b.ProjectPath
	})

	return stats
}

// SessionStats groups entries by session id. The first entry seen for a
// session fixes its project; a later entry claiming a different project
// is folded in anyway with a diagnostic, since sessions live inside a
// single project directory on disk. Results are sorted most recent
// start first.
func SessionStats(entries []models.UsageEntry) []models.SessionUsage {
	bySession := make(map[string]*models.SessionUsage)
	sessionModels := make(map[string]map[string]struct{})

	for _, e := range entries {
		su := bySession[e.SessionID]
		if su == nil {
			su = &models.SessionUsage{
				SessionID:    e.SessionID,
				ProjectPath:  e.ProjectPath,
				ProjectName:  projectName(e.ProjectPath),
				StartTime:    e.Timestamp,
				LastActivity: e.Timestamp,
			}
			bySession[e.SessionID] = su
			sessionModels[e.SessionID] = make(map[string]struct{})
		} else if e.ProjectPath != su.ProjectPath {
			logger.Warn("session spans multiple projects",
				"session", e.SessionID, "project", su.ProjectPath, "other", e.ProjectPath)
		}

		su.TotalCost += e.Cost
		su.TotalTokens += e.TotalTokens()
		su.InputTokens += e.InputTokens
		su.OutputTokens += e.OutputTokens
		su.CacheCreationTokens += e.CacheCreationTokens
		su.CacheReadTokens += e.CacheReadTokens
		if e.Timestamp < su.StartTime {
			su.StartTime = e.Timestamp
		}
		if e.Timestamp > su.LastActivity {
			su.LastActivity = e.Timestamp
		}
		sessionModels[e.SessionID][e.Model] = struct{}{}
	}

	out := make([]models.SessionUsage, 0, len(bySession))
	for id, su := range bySession {
		su.Models = sortedKeys(sessionModels[id])
		out = append(out, *su)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.StartTime != b.StartTime {
			return a.StartTime > b.StartTime
		}
		return a.SessionID < b.SessionID
	})
	return out
}

func projectName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
