package request_models

type CreateBenefitRequest struct {
	Tier          string `json:"tier" binding:"required,oneof=Green Gold Platinum"`
	Name          string `json:"name" binding:"required,min=2,max=100"`
	BenefitType   string `json:"benefit_type" binding:"required,oneof=claimable inclusion"`
	TotalQuantity int    `json:"total_quantity" binding:"omitempty,min=1"`
}

type ToggleClaimRequest struct {
	MemberID      string `json:"member_id" binding:"required,uuid4"`
	BenefitID     string `json:"benefit_id" binding:"required,uuid4"`
	SessionNumber int    `json:"session_number" binding:"required,min=1"`
}

type GrantRewardRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid4"`
	Reward   string `json:"reward" binding:"required,min=2,max=200"`
}
