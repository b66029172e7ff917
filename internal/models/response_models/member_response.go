package response_models

import (
	"github.com/google/uuid"

	"vitalis/internal/models/db_models"
	"vitalis/pkg/utils"
)

type MemberResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	MembershipType string    `json:"membership_type"`
	Status         string    `json:"status"`
	StartDate      string    `json:"membership_start_date,omitempty"`
	ExpiryDate     string    `json:"membership_expiry_date,omitempty"`
	PaymentStatus  string    `json:"payment_status"`
	AmountPaid     int64     `json:"amount_paid"`
	ReferralCode   string    `json:"referral_code,omitempty"`
	ReferredBy     string    `json:"referred_by,omitempty"`
	ReferralCount  int       `json:"referral_count"`
	Expired        bool      `json:"expired"`
}

func MemberToResponse(m *db_models.Member) MemberResponse {
	out := MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		MembershipType: string(m.MembershipType),
		Status:         string(m.Status),
		PaymentStatus:  m.PaymentStatus,
		AmountPaid:     m.AmountPaidMinor,
		ReferralCount:  m.ReferralCount,
		Expired:        m.IsExpired(utils.NowClinic()),
	}
	if m.MembershipStartDate != nil {
		out.StartDate = utils.FormatDateClinic(*m.MembershipStartDate)
	}
	if m.MembershipExpiryDate != nil {
		out.ExpiryDate = utils.FormatDateClinic(*m.MembershipExpiryDate)
	}
	if m.ReferralCode != nil {
		out.ReferralCode = *m.ReferralCode
	}
	if m.ReferredBy != nil {
		out.ReferredBy = *m.ReferredBy
	}
	return out
}

func MembersToResponse(members []db_models.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, MemberToResponse(&members[i]))
	}
	return out
}
