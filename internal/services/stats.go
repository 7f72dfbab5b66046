package services

import (
	"math"
	"time"

	"github.com/avolkova/stride/internal/models"
)

// DateLayout is the calendar-date form used as the progress-entry key.
const DateLayout = "2006-01-02"

type WeeklyStats struct {
	TotalPoints    int `json:"totalPoints"`
	GoalsCompleted int `json:"goalsCompleted"`
	TotalGoals     int `json:"totalGoals"`
	CompletionRate int `json:"completionRate"`
}

// BuildWeeklyStats folds an already-filtered set of entries into weekly
// totals. The completion rate is a rounded percentage, defined as zero for an
// empty window rather than dividing by zero.
func BuildWeeklyStats(entries []models.ProgressEntry) WeeklyStats {
	stats := WeeklyStats{TotalGoals: len(entries)}
	for _, entry := range entries {
		stats.TotalPoints += entry.PointsEarned
		if entry.Completed {
			stats.GoalsCompleted++
		}
	}

	if stats.TotalGoals > 0 {
		rate := float64(stats.GoalsCompleted) / float64(stats.TotalGoals) * 100
		stats.CompletionRate = int(math.Round(rate))
	}
	return stats
}

// WeekWindow returns the trailing seven-day window ending today, both bounds
// inclusive, as date strings.
func WeekWindow(today time.Time) (from string, to string) {
	return today.AddDate(0, 0, -7).Format(DateLayout), today.Format(DateLayout)
}
