package service

import (
	"sort"
	"time"

	"habits-be/internal/entities"
	"habits-be/internal/models"
)

// ComputeHabitStats computes streak statistics over the completed logs of one
// habit. It is a pure function: deterministic, no side effects, and the order
// of the input slice does not matter.
//
// TotalLogs counts raw rows (duplicate dates included, should any slip past
// the uniqueness constraint); CompletedDays equals TotalLogs because only
// completed rows are passed in. The streak walks backward from the most recent
// logged date, not from today: a habit last completed ten days ago keeps the
// streak it had then.
func ComputeHabitStats(habitID string, logs []*entities.HabitLog) *models.HabitStatsResponse {
	total := len(logs)
	completedDays := total

	// Deduplicate to calendar days before walking the streak.
	seen := make(map[time.Time]struct{}, len(logs))
	for _, l := range logs {
		seen[dateOnly(l.Date)] = struct{}{}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 0
	if len(dates) > 0 {
		streak = 1
		anchor := dates[0]
		for _, d := range dates[1:] {
			if !d.Equal(anchor.AddDate(0, 0, -1)) {
				break
			}
			streak++
			anchor = d
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(completedDays) / float64(total) * 100
	}

	return &models.HabitStatsResponse{
		HabitID:              habitID,
		TotalLogs:            total,
		CompletedDays:        completedDays,
		CurrentStreak:        streak,
		CompletionPercentage: percentage,
	}
}

// dateOnly strips any time-of-day or zone component, leaving a naive calendar
// date at UTC midnight so dates compare by day regardless of how they were
// scanned.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
