package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vitalis/internal/models/request_models"
	"vitalis/internal/services"
	"vitalis/pkg/utils"
)

type BenefitController struct {
	benefitService services.BenefitServiceInterface
}

func NewBenefitController(benefitService services.BenefitServiceInterface) *BenefitController {
	return &BenefitController{
		benefitService: benefitService,
	}
}

func (b *BenefitController) CreateBenefit(c *gin.Context) {
	var req request_models.CreateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	benefit, err := b.benefitService.CreateBenefit(c.Request.Context(), req.Tier, req.Name, req.BenefitType, req.TotalQuantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, benefit, "Benefit created")
}

func (b *BenefitController) ListBenefits(c *gin.Context) {
	tier := c.Query("tier")
	if tier == "" {
		utils.RespondError(c, http.StatusBadRequest, "tier query parameter is required")
		return
	}

	benefits, err := b.benefitService.ListBenefits(c.Request.Context(), tier)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, benefits, "")
}

func (b *BenefitController) DeleteBenefit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid benefit id")
		return
	}

	if err := b.benefitService.DeleteBenefit(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Benefit deleted")
}

// ToggleClaim godoc
// @Summary Toggle a benefit session claim
// @Description Claim the session, or unclaim it if already claimed
// @Tags Benefits
// @Accept json
// @Produce json
// @Param request body request_models.ToggleClaimRequest true "Claim payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/claims/toggle [post]
func (b *BenefitController) ToggleClaim(c *gin.Context) {
	var req request_models.ToggleClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	memberID, _ := uuid.Parse(req.MemberID)
	benefitID, _ := uuid.Parse(req.BenefitID)

	claims, err := b.benefitService.ToggleClaim(c.Request.Context(), memberID, benefitID, req.SessionNumber)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, claims, "")
}

func (b *BenefitController) ListClaims(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	claims, err := b.benefitService.ListClaims(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, claims, "")
}

func (b *BenefitController) GetClaimedCount(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}
	benefitID, err := uuid.Parse(c.Query("benefit_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "benefit_id query parameter is required")
		return
	}

	count, err := b.benefitService.ClaimedCount(c.Request.Context(), memberID, benefitID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"claimed_count": count}, "")
}

func (b *BenefitController) GrantReward(c *gin.Context) {
	var req request_models.GrantRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	memberID, _ := uuid.Parse(req.MemberID)

	reward, err := b.benefitService.GrantReward(c.Request.Context(), memberID, req.Reward)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reward, "Reward granted")
}

func (b *BenefitController) ToggleRewardClaimed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid reward id")
		return
	}

	reward, err := b.benefitService.ToggleRewardClaimed(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reward, "")
}

func (b *BenefitController) ListRewards(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	rewards, err := b.benefitService.ListRewards(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rewards, "")
}

func (b *BenefitController) DeleteReward(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid reward id")
		return
	}

	if err := b.benefitService.DeleteReward(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Reward deleted")
}
