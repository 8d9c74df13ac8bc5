package models

// StudyLog holds the hours logged for one calendar day. The date is the
// unique key; logging again on the same day adds to Hours, never overwrites.
type StudyLog struct {
	ID    uint    `json:"-" gorm:"primaryKey"`
	Date  string  `json:"date" gorm:"uniqueIndex;not null"` // YYYY-MM-DD
	Hours float64 `json:"hours" gorm:"not null;default:0"`
}

type LogHoursRequest struct {
	Hours float64 `json:"hours"`
}
