// Package store owns every record read and write. The engine never touches
// it directly; callers fetch records here and hand them to the engine.
package store

import "secondbrain/internal/models"

// Snapshot is the full persisted document, exposed for debugging.
type Snapshot struct {
	Goals []models.Goal     `json:"goals"`
	Logs  []models.StudyLog `json:"study_logs"`
	Mood  string            `json:"mood"`
}

// Store is the record-store contract. Implementations must serialize
// concurrent mutations and guarantee read-your-writes: a read immediately
// after a write observes that write.
type Store interface {
	GetGoals() ([]models.Goal, error)
	GetGoal(id uint) (models.Goal, error)
	CreateGoal(title, deadline string) (models.Goal, error)
	UpdateGoal(id uint, patch models.UpdateGoalRequest) (models.Goal, error)
	// DeleteGoal removes the goal and cascades to every task it owns.
	DeleteGoal(id uint) error
	// CompleteGoal is idempotent: completing twice equals completing once.
	CompleteGoal(id uint) (models.Goal, error)

	// GetTasks returns an empty list for an unknown goal, not an error.
	GetTasks(goalID uint) ([]models.Task, error)
	GetTasksByGoal() (map[uint][]models.Task, error)
	CreateTask(goalID uint, text string) (models.Task, error)
	UpdateTask(goalID, taskID uint, text string) (models.Task, error)
	ToggleTask(goalID, taskID uint) (models.Task, error)
	DeleteTask(goalID, taskID uint) error

	// AddHours adds delta to the entry for date, creating it if absent.
	// It is additive, never overwriting; callers must not retry it blindly.
	AddHours(date string, delta float64) (models.StudyLog, error)
	GetLogEntries() ([]models.StudyLog, error)

	SetMood(mood string) (models.MoodState, error)
	GetMood() (string, error)

	Snapshot() (Snapshot, error)
}
