package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"lotus/internal/models/db_models"
	"lotus/internal/models/request_models"
	"lotus/internal/repositories"
	"lotus/pkg/utils"
)

func newScheduleService(t *testing.T) (ScheduleServiceInterface, *fakeCache) {
	t.Helper()

	db := openTestDB(t, &db_models.ScheduleClass{}, &db_models.ClassTemplate{})
	cache := newFakeCache()
	svc := NewScheduleService(
		repositories.NewClassRepository(db),
		repositories.NewTemplateRepository(db),
		cache)
	return svc, cache
}

func TestSlotHeight(t *testing.T) {
	cases := []struct {
		minutes int
		want    int
	}{
		{60, 70},  // 80-10=70
		{75, 90},  // 100-10=90
		{90, 110}, // 120-10=110
		{30, 70},  // clamped to minimum
		{45, 70},  // 50 clamps to 70
	}
	for _, tc := range cases {
		if got := SlotHeight(tc.minutes); got != tc.want {
			t.Errorf("SlotHeight(%d) = %d, want %d", tc.minutes, got, tc.want)
		}
	}
}

func TestBuildWeeklyGridEmpty(t *testing.T) {
	grid := BuildWeeklyGrid(nil)

	wantOrder := []int{1, 2, 3, 4, 5, 6, 0}
	if len(grid.DayOrder) != 7 {
		t.Fatalf("day order length = %d", len(grid.DayOrder))
	}
	for i, day := range wantOrder {
		if grid.DayOrder[i] != day {
			t.Errorf("day order[%d] = %d, want %d", i, grid.DayOrder[i], day)
		}
	}

	// nothing scheduled still renders the nine default time rows
	if len(grid.Slots) != 9 {
		t.Fatalf("slots = %d, want 9 defaults", len(grid.Slots))
	}
	if grid.Slots[0].StartTime != "06:00:00" || grid.Slots[0].DisplayTime != "6:00 AM" {
		t.Errorf("first slot = %q / %q", grid.Slots[0].StartTime, grid.Slots[0].DisplayTime)
	}
	for _, slot := range grid.Slots {
		if len(slot.Days) != 7 {
			t.Fatalf("slot %s has %d day cells", slot.StartTime, len(slot.Days))
		}
		for _, cell := range slot.Days {
			if cell != nil {
				t.Errorf("slot %s unexpectedly occupied", slot.StartTime)
			}
		}
	}
}

func TestBuildWeeklyGridPlacesClasses(t *testing.T) {
	monday := db_models.ScheduleClass{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		Name:            "Vinyasa Flow",
		DayOfWeek:       1,
		StartTime:       "09:00:00",
		DurationMinutes: 75,
		Active:          true,
	}
	offGrid := db_models.ScheduleClass{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		Name:            "Sunrise Flow",
		DayOfWeek:       3,
		StartTime:       "05:45:00",
		DurationMinutes: 60,
		Active:          true,
	}
	inactive := db_models.ScheduleClass{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Retired",
		DayOfWeek: 1,
		StartTime: "09:00:00",
		Active:    false,
	}

	grid := BuildWeeklyGrid([]db_models.ScheduleClass{inactive, monday, offGrid})

	// the off-default 05:45 start adds a row, sorted before the defaults
	if len(grid.Slots) != 10 {
		t.Fatalf("slots = %d, want 10", len(grid.Slots))
	}
	if grid.Slots[0].StartTime != "05:45:00" {
		t.Errorf("first slot = %q, want 05:45:00", grid.Slots[0].StartTime)
	}

	placed := -1
	for i := range grid.Slots {
		if grid.Slots[i].StartTime == "09:00:00" {
			placed = i
			break
		}
	}
	if placed < 0 {
		t.Fatal("09:00:00 row missing")
	}
	// Monday is the first column
	cell := grid.Slots[placed].Days[0]
	if cell == nil {
		t.Fatal("expected Monday 09:00 cell occupied")
	}
	if cell.Name != "Vinyasa Flow" {
		t.Errorf("cell holds %q, inactive class must not win", cell.Name)
	}
	if cell.HeightPx != 90 {
		t.Errorf("cell height = %d, want 90", cell.HeightPx)
	}
}

func TestBuildWeeklyGridFirstActiveMatchWins(t *testing.T) {
	a := db_models.ScheduleClass{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "First", DayOfWeek: 2, StartTime: "18:00:00", Active: true,
	}
	b := db_models.ScheduleClass{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Second", DayOfWeek: 2, StartTime: "18:00:00", Active: true,
	}

	grid := BuildWeeklyGrid([]db_models.ScheduleClass{a, b})

	for _, slot := range grid.Slots {
		if slot.StartTime != "18:00:00" {
			continue
		}
		cell := slot.Days[1] // Tuesday column
		if cell == nil {
			t.Fatal("expected Tuesday 18:00 occupied")
		}
		if cell.Name != "First" {
			t.Errorf("cell holds %q, want the first matching class", cell.Name)
		}
		return
	}
	t.Fatal("18:00:00 row missing")
}

func TestClassCRUDAndDayView(t *testing.T) {
	svc, cache := newScheduleService(t)
	ctx := context.Background()

	// empty day falls back to the default slots
	day, err := svc.DaySchedule(ctx, 1)
	if err != nil {
		t.Fatalf("DaySchedule: %v", err)
	}
	if len(day.Classes) != 0 || len(day.DefaultSlots) != 9 {
		t.Fatalf("empty day: classes=%d defaults=%d", len(day.Classes), len(day.DefaultSlots))
	}

	created, err := svc.CreateClass(ctx, request_models.CreateClassRequest{
		Name:            "Hatha Basics",
		DayOfWeek:       1,
		StartTime:       "9:00",
		DurationMinutes: 60,
		Instructor:      "Maya",
		Level:           "beginner",
	})
	if err != nil {
		t.Fatalf("CreateClass: %v", err)
	}
	if created.StartTime != "09:00:00" {
		t.Errorf("start time = %q, want normalized 09:00:00", created.StartTime)
	}
	if !created.Active {
		t.Error("active should default to true")
	}

	// once a class exists the day view stops offering defaults
	day, err = svc.DaySchedule(ctx, 1)
	if err != nil {
		t.Fatalf("DaySchedule: %v", err)
	}
	if len(day.Classes) != 1 || len(day.DefaultSlots) != 0 {
		t.Fatalf("day with class: classes=%d defaults=%d", len(day.Classes), len(day.DefaultSlots))
	}

	if _, err := svc.DaySchedule(ctx, 7); err != utils.ErrInvalidDayOfWeek {
		t.Errorf("day 7: got %v, want ErrInvalidDayOfWeek", err)
	}

	// the public grid gets cached, and any write drops it
	if _, err := svc.WeeklySchedule(ctx); err != nil {
		t.Fatalf("WeeklySchedule: %v", err)
	}
	if _, ok := cache.Get(CacheKeyPublicSchedule); !ok {
		t.Error("expected weekly grid cached after read")
	}

	id := uuid.MustParse(created.ID)
	if err := svc.DeleteClass(ctx, id); err != nil {
		t.Fatalf("DeleteClass: %v", err)
	}
	if _, ok := cache.Get(CacheKeyPublicSchedule); ok {
		t.Error("expected cache invalidated after delete")
	}
	if _, err := svc.GetClass(ctx, created.ID); err != utils.ErrClassNotFound {
		t.Errorf("after delete: got %v, want ErrClassNotFound", err)
	}
}

func TestCreateClassValidation(t *testing.T) {
	svc, _ := newScheduleService(t)
	ctx := context.Background()

	if _, err := svc.CreateClass(ctx, request_models.CreateClassRequest{
		Name: "Bad day", DayOfWeek: 9, StartTime: "09:00", DurationMinutes: 60,
	}); err != utils.ErrInvalidDayOfWeek {
		t.Errorf("day 9: got %v, want ErrInvalidDayOfWeek", err)
	}

	if _, err := svc.CreateClass(ctx, request_models.CreateClassRequest{
		Name: "Bad time", DayOfWeek: 1, StartTime: "late", DurationMinutes: 60,
	}); err != utils.ErrInvalidInput {
		t.Errorf("bad time: got %v, want ErrInvalidInput", err)
	}
}

func TestTemplatePrefill(t *testing.T) {
	svc, _ := newScheduleService(t)
	ctx := context.Background()

	template, err := svc.CreateTemplate(ctx, request_models.CreateTemplateRequest{
		Name:              "Yin Yoga",
		DurationMinutes:   90,
		Level:             "all",
		DefaultInstructor: "Sofia",
		Description:       "Slow, deep holds.",
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}

	prefill, err := svc.PrefillFromTemplate(ctx, template.ID)
	if err != nil {
		t.Fatalf("PrefillFromTemplate: %v", err)
	}
	if prefill.Name != "Yin Yoga" || prefill.DurationMinutes != 90 || prefill.Instructor != "Sofia" {
		t.Errorf("prefill = %+v", prefill)
	}
	if prefill.TemplateID == nil || prefill.TemplateID.String() != template.ID {
		t.Error("prefill should record the source template id")
	}

	// creating from the prefill, then editing the template, leaves the
	// class untouched
	prefill.StartTime = "19:00"
	created, err := svc.CreateClass(ctx, *prefill)
	if err != nil {
		t.Fatalf("CreateClass from prefill: %v", err)
	}

	if _, err := svc.UpdateTemplate(ctx, request_models.UpdateTemplateRequest{
		ID: uuid.MustParse(template.ID),
		CreateTemplateRequest: request_models.CreateTemplateRequest{
			Name:            "Yin Yoga Extended",
			DurationMinutes: 120,
		},
	}); err != nil {
		t.Fatalf("UpdateTemplate: %v", err)
	}

	refreshed, err := svc.GetClass(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetClass: %v", err)
	}
	if refreshed.Name != "Yin Yoga" || refreshed.DurationMinutes != 90 {
		t.Errorf("class changed after template edit: %+v", refreshed)
	}

	if _, err := svc.PrefillFromTemplate(ctx, uuid.NewString()); err != utils.ErrTemplateNotFound {
		t.Errorf("unknown template: got %v, want ErrTemplateNotFound", err)
	}
}
