package db_models

import "github.com/google/uuid"

type BenefitType string

const (
	BenefitTypeClaimable BenefitType = "claimable"
	BenefitTypeInclusion BenefitType = "inclusion"
)

// MembershipBenefit defines a named perk attached to a membership tier.
// Claimable benefits carry a total session quantity; inclusions do not.
type MembershipBenefit struct {
	BaseModel
	Tier          MembershipTier `gorm:"index"`
	Name          string         `gorm:"not null"`
	BenefitType   BenefitType    `gorm:"index"`
	TotalQuantity int
}

// BenefitClaim marks one claimed session of a claimable benefit.
// Claiming the same session again removes the row (toggle).
type BenefitClaim struct {
	BaseModel
	MemberID      uuid.UUID `gorm:"index;uniqueIndex:idx_claim_session"`
	BenefitID     uuid.UUID `gorm:"index;uniqueIndex:idx_claim_session"`
	SessionNumber int       `gorm:"uniqueIndex:idx_claim_session"`

	Member  Member            `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Benefit MembershipBenefit `gorm:"foreignKey:BenefitID;constraint:OnDelete:CASCADE"`
}
