package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitalis/internal/models/request_models"
	"vitalis/internal/services"
	"vitalis/pkg/utils"
)

type AdminController struct {
	adminService     services.AdminServiceInterface
	dashboardService services.DashboardServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface, dashboardService services.DashboardServiceInterface) *AdminController {
	return &AdminController{
		adminService:     adminService,
		dashboardService: dashboardService,
	}
}

// ExecuteAction godoc
// @Summary Run an admin mutation action
// @Description Dispatch on the action field: update_booking_status, confirm_member, append_medical_record, clear_all_data
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdminActionRequest true "Action payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/actions [post]
func (a *AdminController) ExecuteAction(c *gin.Context) {
	var req request_models.AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.adminService.Execute(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "")
}

func (a *AdminController) ListPatientRecords(c *gin.Context) {
	records, err := a.adminService.ListPatientRecords(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, records, "")
}

func (a *AdminController) GetDashboard(c *gin.Context) {
	report, err := a.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}
