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

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

func (m *MemberController) ListMembers(c *gin.Context) {
	members, err := m.memberService.ListMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MembersToResponse(members), "")
}

func (m *MemberController) ListExpiredMembers(c *gin.Context) {
	members, err := m.memberService.ListExpiredMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MembersToResponse(members), "")
}

func (m *MemberController) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	member, err := m.memberService.GetMember(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MemberToResponse(member), "")
}

// ConfirmMember godoc
// @Summary Confirm a pending member
// @Description Activate a pending membership, assign the referral code and record the registration payment
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/members/{id}/confirm [post]
func (m *MemberController) ConfirmMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req request_models.ConfirmMemberRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	member, err := m.memberService.ConfirmMember(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MemberToResponse(member), "Member confirmed")
}

func (m *MemberController) RenewMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req request_models.RenewMemberRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	member, err := m.memberService.RenewMember(c.Request.Context(), id, req.MembershipType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MemberToResponse(member), "Membership renewed")
}

func (m *MemberController) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	if err := m.memberService.DeleteMember(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Member deleted")
}

func (m *MemberController) ListMemberTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	txns, err := m.memberService.ListTransactions(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, txns, "")
}
