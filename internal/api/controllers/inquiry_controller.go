package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vitalis/internal/models/request_models"
	"vitalis/internal/models/response_models"
	"vitalis/internal/services"
	"vitalis/pkg/utils"
)

type InquiryController struct {
	inquiryService services.InquiryServiceInterface
}

func NewInquiryController(inquiryService services.InquiryServiceInterface) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
	}
}

func (i *InquiryController) CreateInquiry(c *gin.Context) {
	var req request_models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	inquiry, err := i.inquiryService.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, inquiry, "Inquiry received")
}

func (i *InquiryController) ListInquiries(c *gin.Context) {
	inquiries, err := i.inquiryService.ListInquiries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, inquiries, "")
}

func (i *InquiryController) UpdateInquiryStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid inquiry id")
		return
	}

	var req request_models.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	inquiry, err := i.inquiryService.UpdateInquiryStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, inquiry, "Inquiry updated")
}

// ConvertInquiry turns an inquiry into a pending member, optionally carrying
// the referral code the inquirer mentioned.
func (i *InquiryController) ConvertInquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid inquiry id")
		return
	}

	var req request_models.ConvertInquiryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	member, err := i.inquiryService.ConvertInquiry(c.Request.Context(), id, req.ReferredBy)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MemberToResponse(member), "Inquiry converted")
}
