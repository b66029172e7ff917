package db_models

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusConverted InquiryStatus = "converted"
)

type MembershipInquiry struct {
	BaseModel
	Name  string `gorm:"not null"`
	Email string `gorm:"index"`
	Phone string

	DesiredTier MembershipTier
	Message     string

	Status InquiryStatus `gorm:"index;default:new"`
}
