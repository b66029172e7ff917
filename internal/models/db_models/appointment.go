package db_models

import "github.com/google/uuid"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusDone      AppointmentStatus = "done"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Appointment is the scheduled slot an admin assigns to a confirmed booking.
type Appointment struct {
	BaseModel
	BookingID    uuid.UUID `gorm:"index"`
	ScheduledAt  int64     `gorm:"not null"`
	Practitioner string
	Status       AppointmentStatus `gorm:"index;default:scheduled"`

	Booking Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}
