package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lotus/internal/models/request_models"
	"lotus/internal/services"
	"lotus/pkg/utils"
)

type RetreatsController struct {
	retreatService services.RetreatServiceInterface
}

func NewRetreatsController(retreatService services.RetreatServiceInterface) *RetreatsController {
	return &RetreatsController{
		retreatService: retreatService,
	}
}

// ListRetreats godoc
// @Summary List retreats split into upcoming and past
// @Tags Retreats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/retreats [get]
func (r *RetreatsController) ListRetreats(c *gin.Context) {
	list, err := r.retreatService.ListRetreats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Retreats fetched successfully")
}

func (r *RetreatsController) GetRetreat(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Retreat ID is required")
		return
	}

	retreat, err := r.retreatService.GetRetreat(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, retreat, "Retreat fetched successfully")
}

func (r *RetreatsController) CreateRetreat(c *gin.Context) {
	var req request_models.CreateRetreatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	retreat, err := r.retreatService.CreateRetreat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, retreat, "Retreat created successfully")
}

func (r *RetreatsController) UpdateRetreat(c *gin.Context) {
	var req request_models.UpdateRetreatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	retreat, err := r.retreatService.UpdateRetreat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, retreat, "Retreat updated successfully")
}

func (r *RetreatsController) DeleteRetreat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid retreat ID")
		return
	}

	if err := r.retreatService.DeleteRetreat(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Retreat deleted successfully")
}

func (r *RetreatsController) SetFeatured(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid retreat ID")
		return
	}

	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := r.retreatService.SetFeatured(c.Request.Context(), id, req.Featured); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Retreat featured flag updated")
}

// DuplicateRetreat godoc
// @Summary Clone a retreat one year forward as an inactive draft
// @Tags Retreats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/retreats/{id}/duplicate [post]
func (r *RetreatsController) DuplicateRetreat(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Retreat ID is required")
		return
	}

	retreat, err := r.retreatService.DuplicateRetreat(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, retreat, "Retreat duplicated successfully")
}

func (r *RetreatsController) CreateRegistration(c *gin.Context) {
	var req request_models.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reg, err := r.retreatService.CreateRegistration(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reg, "Registration created successfully")
}

func (r *RetreatsController) ListRegistrations(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Retreat ID is required")
		return
	}

	regs, err := r.retreatService.ListRegistrations(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, regs, "Registrations fetched successfully")
}

func (r *RetreatsController) UpdatePayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Registration ID is required")
		return
	}

	var req request_models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reg, err := r.retreatService.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reg, "Payment updated successfully")
}

// ExportRegistrations streams the CSV as a download.
func (r *RetreatsController) ExportRegistrations(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Retreat ID is required")
		return
	}

	data, err := r.retreatService.ExportRegistrationsCSV(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "registrations-"+id+".csv"))
	c.Data(http.StatusOK, "text/csv", data)
}
