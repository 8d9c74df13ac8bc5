// Package engine derives every number the views show from raw records.
// All functions are pure: no storage access, no clock reads, no mutation.
// Because the dashboard, goals table and analytics page all call through
// here with the same inputs, they can never disagree.
package engine

import (
	"math"
	"time"

	"secondbrain/internal/models"
)

// Priority is the derived urgency tier of a goal.
type Priority string

const (
	PriorityOverdue  Priority = "OVERDUE"
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
	// PriorityDone marks completed goals. It is terminal and never urgent;
	// ranking skips goals carrying it.
	PriorityDone Priority = "DONE"
)

// ManyTasksThreshold is the total task count at which a goal is rated at
// least MEDIUM even with a distant deadline. It sets the MEDIUM/LOW boundary.
const ManyTasksThreshold = 5

// severity orders tiers for most-urgent selection. Higher is more urgent.
var severity = map[Priority]int{
	PriorityOverdue:  5,
	PriorityCritical: 4,
	PriorityHigh:     3,
	PriorityMedium:   2,
	PriorityLow:      1,
	PriorityDone:     0,
}

// GoalView is a goal with all derived fields filled in, ready to serialize.
type GoalView struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Deadline   string   `json:"deadline"`
	Status     string   `json:"status"`
	Priority   Priority `json:"priority"`
	DaysLeft   int      `json:"days_left"`
	Progress   int      `json:"progress"`
	TasksDone  int      `json:"tasks_done"`
	TotalTasks int      `json:"total_tasks"`
}

// DeriveGoalView computes progress, days-left and priority for one goal.
// today must be a date-only value (see clock.Clock).
func DeriveGoalView(goal models.Goal, tasks []models.Task, today time.Time) (GoalView, error) {
	daysLeft, err := daysUntil(goal.Deadline, today)
	if err != nil {
		return GoalView{}, err
	}

	done := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted {
			done++
		}
	}

	progress := 0
	if len(tasks) > 0 {
		progress = int(math.Round(float64(done) / float64(len(tasks)) * 100))
	}

	return GoalView{
		ID:         goal.ID,
		Title:      goal.Title,
		Deadline:   goal.Deadline,
		Status:     goal.Status,
		Priority:   derivePriority(goal.Status, daysLeft, len(tasks)),
		DaysLeft:   daysLeft,
		Progress:   progress,
		TasksDone:  done,
		TotalTasks: len(tasks),
	}, nil
}

// derivePriority applies the tier ladder. First match wins.
func derivePriority(status string, daysLeft, totalTasks int) Priority {
	if status == models.GoalStatusCompleted {
		return PriorityDone
	}
	switch {
	case daysLeft < 0:
		return PriorityOverdue
	case daysLeft < 7:
		return PriorityCritical
	case daysLeft < 15:
		return PriorityHigh
	case daysLeft < 30 || totalTasks >= ManyTasksThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// daysUntil returns the whole-day difference between a YYYY-MM-DD deadline
// and today. Negative means overdue.
func daysUntil(deadline string, today time.Time) (int, error) {
	d, err := time.ParseInLocation(models.DateLayout, deadline, time.UTC)
	if err != nil {
		return 0, &models.ValidationError{Field: "deadline", Reason: "expected YYYY-MM-DD, got " + deadline}
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(today).Hours() / 24), nil
}

// moreUrgent reports whether a outranks b: higher severity first, then the
// smaller days-left (further overdue beats less overdue).
func moreUrgent(a, b GoalView) bool {
	sa, sb := severity[a.Priority], severity[b.Priority]
	if sa != sb {
		return sa > sb
	}
	return a.DaysLeft < b.DaysLeft
}
