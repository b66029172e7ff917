package db_models

import "github.com/google/uuid"

// ReferralReward is a free-text perk granted by an admin for successful
// referrals. Rewards are not derived from referral_count automatically.
type ReferralReward struct {
	BaseModel
	MemberID  uuid.UUID `gorm:"index"`
	Reward    string    `gorm:"not null"`
	Claimed   bool      `gorm:"default:false"`
	ClaimedAt *int64

	Member Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
