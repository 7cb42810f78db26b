package response_models

// CalendarEntry is a class occurrence placed on a concrete date.
type CalendarEntry struct {
	ClassID     string `json:"class_id"`
	Name        string `json:"name"`
	StartTime   string `json:"start_time"`
	DisplayTime string `json:"display_time"`
	Instructor  string `json:"instructor"`
}

type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []CalendarEntry `json:"entries"`
}

// Calendar is the 4-week grid: 7 headers and exactly 28 day cells,
// starting on the Sunday on or before the reference date.
type Calendar struct {
	Headers    []string      `json:"headers"`
	Days       []CalendarDay `json:"days"`
	RangeStart string        `json:"range_start"`
	RangeEnd   string        `json:"range_end"`
}
