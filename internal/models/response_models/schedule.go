package response_models

type ClassResponse struct {
	ID              string  `json:"id"`
	TemplateID      *string `json:"template_id,omitempty"`
	Name            string  `json:"name"`
	DayOfWeek       int     `json:"day_of_week"`
	StartTime       string  `json:"start_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Instructor      string  `json:"instructor"`
	Level           string  `json:"level"`
	Capacity        int     `json:"capacity"`
	Description     string  `json:"description"`
	Active          bool    `json:"active"`
}

// GridCell is one (day, time) slot of the weekly grid. Nil means the
// slot is empty for that day.
type GridCell struct {
	ClassID         string `json:"class_id"`
	Name            string `json:"name"`
	Instructor      string `json:"instructor"`
	Level           string `json:"level"`
	DurationMinutes int    `json:"duration_minutes"`
	HeightPx        int    `json:"height_px"`
}

// TimeSlot is one row of the weekly grid: a start time across the
// seven day columns in Monday-first order.
type TimeSlot struct {
	StartTime   string      `json:"start_time"`
	DisplayTime string      `json:"display_time"`
	Days        []*GridCell `json:"days"`
}

type WeeklySchedule struct {
	// Monday-first column order, as day-of-week values.
	DayOrder []int      `json:"day_order"`
	Slots    []TimeSlot `json:"slots"`
}

// DaySchedule holds either the day's classes or the default empty
// slots, never both.
type DaySchedule struct {
	DayOfWeek    int             `json:"day_of_week"`
	Classes      []ClassResponse `json:"classes,omitempty"`
	DefaultSlots []string        `json:"default_slots,omitempty"`
}

type TemplateResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	DurationMinutes   int    `json:"duration_minutes"`
	Level             string `json:"level"`
	DefaultInstructor string `json:"default_instructor"`
	Description       string `json:"description"`
}
