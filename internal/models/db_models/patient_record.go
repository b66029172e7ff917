package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PatientRecord is the clinical mirror of a member or walk-in customer.
// Membership fields are denormalized here so history survives member deletion.
type PatientRecord struct {
	BaseModel
	Name  string `gorm:"not null"`
	Email string `gorm:"index"`
	Phone string

	BookingID *uuid.UUID `gorm:"index"`
	Booking   *Booking   `gorm:"foreignKey:BookingID"`

	Membership           *MembershipTier
	MembershipStatus     *MemberStatus
	MembershipExpiryDate *int64

	// Append-only list of {note, recorded_at} entries.
	MedicalNotes datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
