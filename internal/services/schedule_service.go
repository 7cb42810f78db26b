package services

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"

	"lotus/internal/models/db_models"
	"lotus/internal/models/request_models"
	"lotus/internal/models/response_models"
	"lotus/internal/repositories"
	"lotus/pkg/utils"
)

// Column order of the weekly grid: Monday first, Sunday last.
var weekdayOrder = []int{1, 2, 3, 4, 5, 6, 0}

// Default slots shown when a day has no classes yet, and always merged
// into the weekly grid's time rows.
var defaultStartTimes = []string{
	"06:00:00", "07:30:00", "09:00:00",
	"10:30:00", "12:00:00", "16:00:00",
	"17:30:00", "19:00:00", "20:30:00",
}

type ScheduleServiceInterface interface {
	CreateClass(ctx context.Context, request request_models.CreateClassRequest) (*response_models.ClassResponse, error)
	UpdateClass(ctx context.Context, request request_models.UpdateClassRequest) (*response_models.ClassResponse, error)
	DeleteClass(ctx context.Context, id uuid.UUID) error
	GetClass(ctx context.Context, id string) (*response_models.ClassResponse, error)
	ListClasses(ctx context.Context) ([]response_models.ClassResponse, error)

	WeeklySchedule(ctx context.Context) (*response_models.WeeklySchedule, error)
	DaySchedule(ctx context.Context, dayOfWeek int) (*response_models.DaySchedule, error)

	CreateTemplate(ctx context.Context, request request_models.CreateTemplateRequest) (*response_models.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, request request_models.UpdateTemplateRequest) (*response_models.TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	ListTemplates(ctx context.Context) ([]response_models.TemplateResponse, error)
	PrefillFromTemplate(ctx context.Context, templateID string) (*request_models.CreateClassRequest, error)
}

type ScheduleService struct {
	classRepo    repositories.ClassRepository
	templateRepo repositories.TemplateRepository
	cache        PublicCache
}

func NewScheduleService(classRepo repositories.ClassRepository, templateRepo repositories.TemplateRepository, cache PublicCache) ScheduleServiceInterface {
	return &ScheduleService{
		classRepo:    classRepo,
		templateRepo: templateRepo,
		cache:        cache,
	}
}

func (s *ScheduleService) CreateClass(ctx context.Context, request request_models.CreateClassRequest) (*response_models.ClassResponse, error) {
	class, err := classFromRequest(request)
	if err != nil {
		return nil, err
	}

	if _, err := s.classRepo.Create(ctx, class); err != nil {
		log.Printf("Error creating class: %v", err)
		return nil, utils.ErrDatabaseError
	}

	s.cache.Invalidate(CacheKeyPublicSchedule)

	resp := toClassResponse(*class)
	return &resp, nil
}

func (s *ScheduleService) UpdateClass(ctx context.Context, request request_models.UpdateClassRequest) (*response_models.ClassResponse, error) {
	existing, err := s.classRepo.GetByID(ctx, request.ID.String())
	if err != nil {
		log.Printf("Error fetching class %s: %v", request.ID, err)
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrClassNotFound
	}

	updated, err := classFromRequest(request.CreateClassRequest)
	if err != nil {
		return nil, err
	}
	updated.BaseModel = existing.BaseModel

	if err := s.classRepo.Update(ctx, updated); err != nil {
		log.Printf("Error updating class %s: %v", request.ID, err)
		return nil, utils.ErrDatabaseError
	}

	s.cache.Invalidate(CacheKeyPublicSchedule)

	resp := toClassResponse(*updated)
	return &resp, nil
}

func (s *ScheduleService) DeleteClass(ctx context.Context, id uuid.UUID) error {
	existing, err := s.classRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching class %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrClassNotFound
	}

	if err := s.classRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting class %s: %v", id, err)
		return utils.ErrDatabaseError
	}

	s.cache.Invalidate(CacheKeyPublicSchedule)
	return nil
}

func (s *ScheduleService) GetClass(ctx context.Context, id string) (*response_models.ClassResponse, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching class %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if class == nil {
		return nil, utils.ErrClassNotFound
	}

	resp := toClassResponse(*class)
	return &resp, nil
}

func (s *ScheduleService) ListClasses(ctx context.Context) ([]response_models.ClassResponse, error) {
	classes, err := s.classRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing classes: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ClassResponse, 0, len(classes))
	for _, class := range classes {
		out = append(out, toClassResponse(class))
	}
	return out, nil
}

// WeeklySchedule builds the full grid: one row per start time present
// in the data (plus the default times), seven day columns Monday-first.
func (s *ScheduleService) WeeklySchedule(ctx context.Context) (*response_models.WeeklySchedule, error) {
	if cached, ok := s.cache.Get(CacheKeyPublicSchedule); ok {
		if grid, ok := cached.(*response_models.WeeklySchedule); ok {
			return grid, nil
		}
	}

	classes, err := s.classRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing classes: %v", err)
		return nil, utils.ErrDatabaseError
	}

	grid := BuildWeeklyGrid(classes)
	s.cache.Set(CacheKeyPublicSchedule, grid)
	return grid, nil
}

// BuildWeeklyGrid is the pure bucketing step, separated out so it can
// be tested without a store.
func BuildWeeklyGrid(classes []db_models.ScheduleClass) *response_models.WeeklySchedule {
	timeSet := make(map[string]struct{})
	for _, t := range defaultStartTimes {
		timeSet[t] = struct{}{}
	}
	for _, class := range classes {
		timeSet[class.StartTime] = struct{}{}
	}

	times := make([]string, 0, len(timeSet))
	for t := range timeSet {
		times = append(times, t)
	}
	sort.Strings(times)

	grid := &response_models.WeeklySchedule{
		DayOrder: append([]int(nil), weekdayOrder...),
		Slots:    make([]response_models.TimeSlot, 0, len(times)),
	}

	for _, t := range times {
		slot := response_models.TimeSlot{
			StartTime:   t,
			DisplayTime: utils.FormatTimeForDisplay(t),
			Days:        make([]*response_models.GridCell, len(weekdayOrder)),
		}
		for i, day := range weekdayOrder {
			// first matching active class wins; additional classes in
			// the same slot are not rendered
			for _, class := range classes {
				if class.Active && class.DayOfWeek == day && class.StartTime == t {
					slot.Days[i] = &response_models.GridCell{
						ClassID:         class.ID.String(),
						Name:            class.Name,
						Instructor:      class.Instructor,
						Level:           class.Level,
						DurationMinutes: class.DurationMinutes,
						HeightPx:        SlotHeight(class.DurationMinutes),
					}
					break
				}
			}
		}
		grid.Slots = append(grid.Slots, slot)
	}

	return grid
}

// SlotHeight is the grid's presentational sizing rule:
// max(duration/60 * 80 - 10, 70) pixels.
func SlotHeight(durationMinutes int) int {
	h := int(float64(durationMinutes)/60*80 - 10)
	if h < 70 {
		return 70
	}
	return h
}

// DaySchedule returns either the day's classes or the default empty
// slots, never a merge of the two.
func (s *ScheduleService) DaySchedule(ctx context.Context, dayOfWeek int) (*response_models.DaySchedule, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, utils.ErrInvalidDayOfWeek
	}

	classes, err := s.classRepo.ListByDay(ctx, dayOfWeek)
	if err != nil {
		log.Printf("Error listing classes for day %d: %v", dayOfWeek, err)
		return nil, utils.ErrDatabaseError
	}

	day := &response_models.DaySchedule{DayOfWeek: dayOfWeek}
	if len(classes) == 0 {
		day.DefaultSlots = append([]string(nil), defaultStartTimes...)
		return day, nil
	}

	day.Classes = make([]response_models.ClassResponse, 0, len(classes))
	for _, class := range classes {
		day.Classes = append(day.Classes, toClassResponse(class))
	}
	return day, nil
}

func (s *ScheduleService) CreateTemplate(ctx context.Context, request request_models.CreateTemplateRequest) (*response_models.TemplateResponse, error) {
	template := &db_models.ClassTemplate{
		Name:              request.Name,
		DurationMinutes:   request.DurationMinutes,
		Level:             request.Level,
		DefaultInstructor: request.DefaultInstructor,
		Description:       request.Description,
	}

	if _, err := s.templateRepo.Create(ctx, template); err != nil {
		log.Printf("Error creating template: %v", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toTemplateResponse(*template)
	return &resp, nil
}

// UpdateTemplate edits the template only; classes already created from
// it keep their copied values.
func (s *ScheduleService) UpdateTemplate(ctx context.Context, request request_models.UpdateTemplateRequest) (*response_models.TemplateResponse, error) {
	existing, err := s.templateRepo.GetByID(ctx, request.ID.String())
	if err != nil {
		log.Printf("Error fetching template %s: %v", request.ID, err)
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrTemplateNotFound
	}

	existing.Name = request.Name
	existing.DurationMinutes = request.DurationMinutes
	existing.Level = request.Level
	existing.DefaultInstructor = request.DefaultInstructor
	existing.Description = request.Description

	if err := s.templateRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating template %s: %v", request.ID, err)
		return nil, utils.ErrDatabaseError
	}

	resp := toTemplateResponse(*existing)
	return &resp, nil
}

func (s *ScheduleService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	existing, err := s.templateRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching template %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrTemplateNotFound
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting template %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScheduleService) ListTemplates(ctx context.Context) ([]response_models.TemplateResponse, error) {
	templates, err := s.templateRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing templates: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TemplateResponse, 0, len(templates))
	for _, template := range templates {
		out = append(out, toTemplateResponse(template))
	}
	return out, nil
}

// PrefillFromTemplate copies the template's shape into a class request
// the way the admin form does. The new class records the template id
// but is otherwise unlinked.
func (s *ScheduleService) PrefillFromTemplate(ctx context.Context, templateID string) (*request_models.CreateClassRequest, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		log.Printf("Error fetching template %s: %v", templateID, err)
		return nil, utils.ErrDatabaseError
	}
	if template == nil {
		return nil, utils.ErrTemplateNotFound
	}

	id := template.ID
	return &request_models.CreateClassRequest{
		TemplateID:      &id,
		Name:            template.Name,
		DurationMinutes: template.DurationMinutes,
		Instructor:      template.DefaultInstructor,
		Level:           template.Level,
		Description:     template.Description,
	}, nil
}

func classFromRequest(request request_models.CreateClassRequest) (*db_models.ScheduleClass, error) {
	if request.DayOfWeek < 0 || request.DayOfWeek > 6 {
		return nil, utils.ErrInvalidDayOfWeek
	}

	startTime, err := utils.ParseClock(request.StartTime)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	return &db_models.ScheduleClass{
		TemplateID:      request.TemplateID,
		Name:            request.Name,
		DayOfWeek:       request.DayOfWeek,
		StartTime:       startTime,
		DurationMinutes: request.DurationMinutes,
		Instructor:      request.Instructor,
		Level:           request.Level,
		Capacity:        request.Capacity,
		Description:     request.Description,
		Active:          active,
	}, nil
}

func toClassResponse(class db_models.ScheduleClass) response_models.ClassResponse {
	var templateID *string
	if class.TemplateID != nil {
		s := class.TemplateID.String()
		templateID = &s
	}
	return response_models.ClassResponse{
		ID:              class.ID.String(),
		TemplateID:      templateID,
		Name:            class.Name,
		DayOfWeek:       class.DayOfWeek,
		StartTime:       class.StartTime,
		DurationMinutes: class.DurationMinutes,
		Instructor:      class.Instructor,
		Level:           class.Level,
		Capacity:        class.Capacity,
		Description:     class.Description,
		Active:          class.Active,
	}
}

func toTemplateResponse(template db_models.ClassTemplate) response_models.TemplateResponse {
	return response_models.TemplateResponse{
		ID:                template.ID.String(),
		Name:              template.Name,
		DurationMinutes:   template.DurationMinutes,
		Level:             template.Level,
		DefaultInstructor: template.DefaultInstructor,
		Description:       template.Description,
	}
}
