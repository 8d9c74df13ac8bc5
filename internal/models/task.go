package models

// Task statuses.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

type Task struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	GoalID uint   `json:"goalId" gorm:"index;not null"`
	Text   string `json:"task" gorm:"not null"`
	Status string `json:"status" gorm:"not null;default:'pending'"`
}

// Task DTOs
type CreateTaskRequest struct {
	Task string `json:"task"`
}

type UpdateTaskRequest struct {
	Task string `json:"task"`
}
