package models

import (
	"time"
)

// Goal statuses. A goal flips to completed exactly once; re-completing is a no-op.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// DateLayout is the wire and storage format for deadlines and log dates.
// Deadlines are date-only; day math never looks at time-of-day.
const DateLayout = "2006-01-02"

type Goal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Deadline  string    `json:"deadline" gorm:"not null"` // YYYY-MM-DD
	Status    string    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
	Tasks     []Task    `json:"tasks,omitempty" gorm:"foreignKey:GoalID"`
}

// Goal DTOs
type CreateGoalRequest struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
}

type UpdateGoalRequest struct {
	Title    *string `json:"title"`
	Deadline *string `json:"deadline"`
}
