package services

import (
	"context"
	"log"
	"sort"
	"time"

	"lotus/internal/models/db_models"
	"lotus/internal/models/response_models"
	"lotus/internal/repositories"
	"lotus/pkg/utils"
)

var calendarHeaders = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

type CalendarServiceInterface interface {
	Calendar(ctx context.Context, refDate time.Time) (*response_models.Calendar, error)
}

type CalendarService struct {
	classRepo repositories.ClassRepository
}

func NewCalendarService(classRepo repositories.ClassRepository) CalendarServiceInterface {
	return &CalendarService{
		classRepo: classRepo,
	}
}

func (c *CalendarService) Calendar(ctx context.Context, refDate time.Time) (*response_models.Calendar, error) {
	classes, err := c.classRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing classes: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return BuildCalendar(classes, refDate), nil
}

// BuildCalendar buckets weekly classes into a 4-week grid. The visible
// range always starts on the Sunday on or before refDate, so the grid
// has exactly 28 day cells under 7 weekday headers.
func BuildCalendar(classes []db_models.ScheduleClass, refDate time.Time) *response_models.Calendar {
	start := utils.Today(refDate)
	start = start.AddDate(0, 0, -int(start.Weekday()))

	byDay := make(map[int][]db_models.ScheduleClass)
	for _, class := range classes {
		if !class.Active {
			continue
		}
		byDay[class.DayOfWeek] = append(byDay[class.DayOfWeek], class)
	}
	for day := range byDay {
		sort.SliceStable(byDay[day], func(i, j int) bool {
			return byDay[day][i].StartTime < byDay[day][j].StartTime
		})
	}

	calendar := &response_models.Calendar{
		Headers:    append([]string(nil), calendarHeaders...),
		Days:       make([]response_models.CalendarDay, 0, 28),
		RangeStart: utils.FormatDate(start),
		RangeEnd:   utils.FormatDate(start.AddDate(0, 0, 27)),
	}

	for i := 0; i < 28; i++ {
		date := start.AddDate(0, 0, i)
		day := response_models.CalendarDay{
			Date:    utils.FormatDate(date),
			Entries: []response_models.CalendarEntry{},
		}
		for _, class := range byDay[int(date.Weekday())] {
			day.Entries = append(day.Entries, response_models.CalendarEntry{
				ClassID:     class.ID.String(),
				Name:        class.Name,
				StartTime:   class.StartTime,
				DisplayTime: utils.FormatTimeForDisplay(class.StartTime),
				Instructor:  class.Instructor,
			})
		}
		calendar.Days = append(calendar.Days, day)
	}

	return calendar
}
