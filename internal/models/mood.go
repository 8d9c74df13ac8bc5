package models

// MoodState is the single current mood, overwritten on every update.
// Exactly one row exists (ID = 1); no history is kept.
type MoodState struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Mood string `json:"mood" gorm:"not null;default:'neutral'"`
}

type UpdateMoodRequest struct {
	Mood string `json:"mood"`
}
