package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondbrain/internal/models"
)

var today = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func goalDue(daysFromNow int) models.Goal {
	return models.Goal{
		ID:       1,
		Title:    "test goal",
		Deadline: today.AddDate(0, 0, daysFromNow).Format(models.DateLayout),
		Status:   models.GoalStatusActive,
	}
}

func tasks(done, pending int) []models.Task {
	var ts []models.Task
	for i := 0; i < done; i++ {
		ts = append(ts, models.Task{Status: models.TaskStatusCompleted})
	}
	for i := 0; i < pending; i++ {
		ts = append(ts, models.Task{Status: models.TaskStatusPending})
	}
	return ts
}

func TestDerivePriority_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		daysLeft int
		tasks    []models.Task
		want     Priority
	}{
		{"one day overdue", -1, nil, PriorityOverdue},
		{"far overdue", -30, nil, PriorityOverdue},
		{"due today", 0, nil, PriorityCritical},
		{"six days", 6, nil, PriorityCritical},
		{"seven days", 7, nil, PriorityHigh},
		{"fourteen days", 14, nil, PriorityHigh},
		{"fifteen days", 15, nil, PriorityMedium},
		{"twenty-nine days", 29, nil, PriorityMedium},
		{"thirty days, few tasks", 30, tasks(0, 2), PriorityLow},
		{"thirty days, many tasks", 30, tasks(0, ManyTasksThreshold), PriorityMedium},
		{"distant, task count at threshold", 90, tasks(3, 2), PriorityMedium},
		{"distant, below threshold", 90, tasks(2, 2), PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := DeriveGoalView(goalDue(tt.daysLeft), tt.tasks, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, view.Priority)
			assert.Equal(t, tt.daysLeft, view.DaysLeft)
		})
	}
}

func TestDeriveGoalView_CompletedIsDone(t *testing.T) {
	g := goalDue(-5)
	g.Status = models.GoalStatusCompleted

	view, err := DeriveGoalView(g, tasks(2, 0), today)
	require.NoError(t, err)
	assert.Equal(t, PriorityDone, view.Priority)
}

func TestDeriveGoalView_Progress(t *testing.T) {
	t.Run("no tasks is zero percent", func(t *testing.T) {
		view, err := DeriveGoalView(goalDue(10), nil, today)
		require.NoError(t, err)
		assert.Equal(t, 0, view.Progress)
		assert.Equal(t, 0, view.TotalTasks)
	})

	t.Run("rounds to nearest", func(t *testing.T) {
		view, err := DeriveGoalView(goalDue(10), tasks(1, 2), today)
		require.NoError(t, err)
		assert.Equal(t, 33, view.Progress)

		view, err = DeriveGoalView(goalDue(10), tasks(2, 1), today)
		require.NoError(t, err)
		assert.Equal(t, 67, view.Progress)
	})

	t.Run("all done is one hundred", func(t *testing.T) {
		view, err := DeriveGoalView(goalDue(10), tasks(4, 0), today)
		require.NoError(t, err)
		assert.Equal(t, 100, view.Progress)
		assert.Equal(t, 4, view.TasksDone)
	})
}

func TestDeriveGoalView_BadDeadline(t *testing.T) {
	g := goalDue(1)
	g.Deadline = "next tuesday"

	_, err := DeriveGoalView(g, nil, today)
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "deadline", ve.Field)
}
