package request_models

import "github.com/google/uuid"

type CreateClassRequest struct {
	TemplateID      *uuid.UUID `json:"template_id"`
	Name            string     `json:"name" binding:"required"`
	DayOfWeek       int        `json:"day_of_week"`
	StartTime       string     `json:"start_time" binding:"required"`
	DurationMinutes int        `json:"duration_minutes" binding:"required"`
	Instructor      string     `json:"instructor"`
	Level           string     `json:"level"`
	Capacity        int        `json:"capacity"`
	Description     string     `json:"description"`
	Active          *bool      `json:"active"`
}

type UpdateClassRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateClassRequest
}

type CreateTemplateRequest struct {
	Name              string `json:"name" binding:"required"`
	DurationMinutes   int    `json:"duration_minutes" binding:"required"`
	Level             string `json:"level"`
	DefaultInstructor string `json:"default_instructor"`
	Description       string `json:"description"`
}

type UpdateTemplateRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateTemplateRequest
}
