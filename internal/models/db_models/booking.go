package db_models

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	BaseModel
	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"index"`
	CustomerPhone string

	Service       string `gorm:"not null"`
	PreferredDate string // "2006-01-02"
	PreferredTime string // "15:04"

	Status BookingStatus `gorm:"index;default:pending"`
	Notes  string
}
