package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lotus/internal/models/request_models"
	"lotus/internal/services"
	"lotus/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
	calendarService services.CalendarServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface, calendarService services.CalendarServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		calendarService: calendarService,
	}
}

func (s *ScheduleController) ListClasses(c *gin.Context) {
	classes, err := s.scheduleService.ListClasses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, classes, "Classes fetched successfully")
}

func (s *ScheduleController) GetClass(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Class ID is required")
		return
	}

	class, err := s.scheduleService.GetClass(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, class, "Class fetched successfully")
}

func (s *ScheduleController) CreateClass(c *gin.Context) {
	var req request_models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	class, err := s.scheduleService.CreateClass(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, class, "Class created successfully")
}

func (s *ScheduleController) UpdateClass(c *gin.Context) {
	var req request_models.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	class, err := s.scheduleService.UpdateClass(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, class, "Class updated successfully")
}

func (s *ScheduleController) DeleteClass(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid class ID")
		return
	}

	if err := s.scheduleService.DeleteClass(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Class deleted successfully")
}

func (s *ScheduleController) WeeklySchedule(c *gin.Context) {
	grid, err := s.scheduleService.WeeklySchedule(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, grid, "Schedule fetched successfully")
}

func (s *ScheduleController) DaySchedule(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day of week")
		return
	}

	schedule, err := s.scheduleService.DaySchedule(c.Request.Context(), day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Day schedule fetched successfully")
}

// Calendar renders the 4-week grid. An optional ?date=YYYY-MM-DD query
// moves the reference date; the default is today.
func (s *ScheduleController) Calendar(c *gin.Context) {
	refDate := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		refDate = parsed
	}

	calendar, err := s.calendarService.Calendar(c.Request.Context(), refDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, calendar, "Calendar fetched successfully")
}

func (s *ScheduleController) ListTemplates(c *gin.Context) {
	templates, err := s.scheduleService.ListTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "Templates fetched successfully")
}

func (s *ScheduleController) CreateTemplate(c *gin.Context) {
	var req request_models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	template, err := s.scheduleService.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template created successfully")
}

func (s *ScheduleController) UpdateTemplate(c *gin.Context) {
	var req request_models.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	template, err := s.scheduleService.UpdateTemplate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template updated successfully")
}

func (s *ScheduleController) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := s.scheduleService.DeleteTemplate(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Template deleted successfully")
}

// PrefillFromTemplate backs the template dropdown in the class form.
func (s *ScheduleController) PrefillFromTemplate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Template ID is required")
		return
	}

	prefill, err := s.scheduleService.PrefillFromTemplate(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefill, "Template applied")
}
