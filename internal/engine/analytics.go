package engine

import (
	"time"

	"secondbrain/internal/models"
)

// chartDays is the fixed size of the trailing log chart window.
const chartDays = 7

// ChartPoint is one day of the trailing log chart.
type ChartPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// AnalyticsView is the full analytics payload. It is recomputed from source
// records on every read; nothing in it is ever persisted.
type AnalyticsView struct {
	Name           string       `json:"name"`
	Mood           string       `json:"mood"`
	Streak         int          `json:"streak"`
	WeekHours      float64      `json:"week_hours"`
	TotalHours     float64      `json:"total_hours"`
	Goals          []GoalView   `json:"goals"`
	MostUrgent     *string      `json:"most_urgent"`
	LogChart       []ChartPoint `json:"log_chart"`
	ActiveCount    int          `json:"active_count"`
	CompletedCount int          `json:"completed_count"`
}

// DeriveAnalytics assembles the analytics payload from all goals, their
// tasks, and the full hour log. Goal views keep insertion (id) order;
// callers wanting priority order sort client-side.
func DeriveAnalytics(goals []models.Goal, tasksByGoal map[uint][]models.Task, logs []models.StudyLog, mood, name string, today time.Time) (AnalyticsView, error) {
	hoursByDate := make(map[string]float64, len(logs))
	total := 0.0
	for _, l := range logs {
		hoursByDate[l.Date] += l.Hours
		total += l.Hours
	}

	// Trailing 7-day window ending today, inclusive.
	week := 0.0
	chart := make([]ChartPoint, 0, chartDays)
	for i := chartDays - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i).Format(models.DateLayout)
		h := hoursByDate[d]
		week += h
		chart = append(chart, ChartPoint{Date: d, Hours: h})
	}

	views := make([]GoalView, 0, len(goals))
	active, completed := 0, 0
	var urgent *GoalView
	for _, g := range goals {
		v, err := DeriveGoalView(g, tasksByGoal[g.ID], today)
		if err != nil {
			return AnalyticsView{}, err
		}
		views = append(views, v)

		if g.Status == models.GoalStatusCompleted {
			completed++
			continue
		}
		active++
		if urgent == nil || moreUrgent(v, *urgent) {
			u := v
			urgent = &u
		}
	}

	var mostUrgent *string
	if urgent != nil {
		mostUrgent = &urgent.Title
	}

	return AnalyticsView{
		Name:           name,
		Mood:           mood,
		Streak:         Streak(logs, today),
		WeekHours:      week,
		TotalHours:     total,
		Goals:          views,
		MostUrgent:     mostUrgent,
		LogChart:       chart,
		ActiveCount:    active,
		CompletedCount: completed,
	}, nil
}

// Streak counts consecutive days with hours > 0 walking backward from today.
// A day without an entry yet does not break a streak that ran through
// yesterday, so the walk may start one day back.
func Streak(logs []models.StudyLog, today time.Time) int {
	hoursByDate := make(map[string]float64, len(logs))
	for _, l := range logs {
		hoursByDate[l.Date] += l.Hours
	}

	day := today
	if hoursByDate[day.Format(models.DateLayout)] <= 0 {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for hoursByDate[day.Format(models.DateLayout)] > 0 {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
