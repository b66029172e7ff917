package db_models

import "time"

type MembershipTier string

const (
	TierGreen    MembershipTier = "Green"
	TierGold     MembershipTier = "Gold"
	TierPlatinum MembershipTier = "Platinum"
)

type MemberStatus string

const (
	MemberStatusPending MemberStatus = "pending"
	MemberStatusActive  MemberStatus = "active"
	MemberStatusExpired MemberStatus = "expired"
)

// TierPriceMinor maps a membership tier to its annual price in minor units.
var TierPriceMinor = map[MembershipTier]int64{
	TierGreen:    8888,
	TierGold:     18888,
	TierPlatinum: 38888,
}

type Member struct {
	BaseModel
	Name  string `gorm:"not null"`
	Email string `gorm:"uniqueIndex"`
	Phone string

	MembershipType MembershipTier `gorm:"index"`
	Status         MemberStatus   `gorm:"index"`

	// Unix seconds; nil until the member is confirmed.
	MembershipStartDate  *int64
	MembershipExpiryDate *int64

	PaymentStatus   string
	AmountPaidMinor int64

	// Assigned exactly once, at confirmation. Six uppercase letters,
	// possibly with a numeric disambiguation suffix.
	ReferralCode  *string `gorm:"uniqueIndex;size:6"`
	ReferredBy    *string `gorm:"size:6"`
	ReferralCount int     `gorm:"default:0"`
}

// IsExpired is the single expiry predicate used by every read path.
// A member counts as expired when the stored status says so or when the
// expiry date has passed; no background job transitions the row.
func (m *Member) IsExpired(now time.Time) bool {
	if m.Status == MemberStatusExpired {
		return true
	}
	if m.MembershipExpiryDate != nil && *m.MembershipExpiryDate < now.Unix() {
		return true
	}
	return false
}
