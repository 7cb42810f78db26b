package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"lotus/internal/models/request_models"
	"lotus/internal/services"
	"lotus/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

func (s *SettingsController) ListSettings(c *gin.Context) {
	settings, err := s.settingsService.ListSettings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings fetched successfully")
}

func (s *SettingsController) UpsertSetting(c *gin.Context) {
	var req request_models.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	setting, err := s.settingsService.UpsertSetting(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, setting, "Setting saved successfully")
}

func (s *SettingsController) SaveCategory(c *gin.Context) {
	var req request_models.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	report, err := s.settingsService.SaveCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "All settings saved"
	if report.Failed > 0 {
		message = "Some settings failed to save"
	}
	utils.RespondSuccess(c, report, message)
}

// PublicSettings is the unauthenticated endpoint the marketing site
// reads on every page load.
func (s *SettingsController) PublicSettings(c *gin.Context) {
	settings, err := s.settingsService.PublicSettings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings fetched successfully")
}

func (s *SettingsController) UploadSettingImage(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, "Setting key is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	setting, err := s.settingsService.UploadSettingImage(c.Request.Context(), key, request_models.FileUpload{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, setting, "Image uploaded and setting saved")
}
