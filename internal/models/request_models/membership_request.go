package request_models

type CreateInquiryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required,min=7,max=20"`
	DesiredTier string `json:"desired_tier" binding:"required,oneof=Green Gold Platinum"`
	Message     string `json:"message"`
}

type ConfirmMemberRequest struct {
	PaymentStatus string `json:"payment_status" binding:"omitempty,oneof=paid unpaid partial"`
}

type RenewMemberRequest struct {
	// Empty tier keeps the member's current one.
	MembershipType string `json:"membership_type" binding:"omitempty,oneof=Green Gold Platinum"`
}

type ConvertInquiryRequest struct {
	// Referral code of the member who brought the inquirer in, if any.
	ReferredBy string `json:"referred_by" binding:"omitempty,len=6"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted converted"`
}
