package db_models

import "github.com/google/uuid"

// ScheduleClass is a weekly recurring class. DayOfWeek is a recurrence
// key (0 = Sunday .. 6 = Saturday), not a calendar date.
type ScheduleClass struct {
	BaseModel
	TemplateID      *uuid.UUID `gorm:"type:uuid"`
	Name            string
	DayOfWeek       int    `gorm:"index"`
	StartTime       string // "HH:MM:SS"
	DurationMinutes int
	Instructor      string
	Level           string
	Capacity        int
	Description     string
	Active          bool `gorm:"default:true"`
}
