package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionType string

const (
	TxnTypeRegistration TransactionType = "membership_registration"
	TxnTypeRenewal      TransactionType = "membership_renewal"
)

// Transaction is an append-only financial record tied to a membership event.
// Rows are never updated or deleted by the lifecycle flows.
type Transaction struct {
	BaseModel
	MemberID        uuid.UUID       `gorm:"index"`
	AmountMinor     int64           // e.g., 8888 = ₱88.88
	Currency        string          `gorm:"size:3"`
	TransactionType TransactionType `gorm:"index"`
	PaymentStatus   string
	Description     string

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Member Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
