package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vitalis/internal/models/db_models"
	"vitalis/pkg/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&db_models.Member{},
		&db_models.Booking{},
		&db_models.Appointment{},
		&db_models.PatientRecord{},
		&db_models.MembershipBenefit{},
		&db_models.BenefitClaim{},
		&db_models.ReferralReward{},
		&db_models.Transaction{},
		&db_models.MembershipInquiry{},
		&db_models.AdminSetting{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// mockMailService records calls without touching the network.
type mockMailService struct {
	confirmedSent int
	bookingSent   int
	statusSent    int
	inquirySent   int
}

func (m *mockMailService) SendBookingReceived(*db_models.Booking) error {
	m.bookingSent++
	return nil
}

func (m *mockMailService) SendBookingStatusUpdate(*db_models.Booking) error {
	m.statusSent++
	return nil
}

func (m *mockMailService) SendInquiryReceived(*db_models.MembershipInquiry) error {
	m.inquirySent++
	return nil
}

func (m *mockMailService) SendMembershipConfirmed(*db_models.Member) error {
	m.confirmedSent++
	return nil
}

func clinicDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, utils.ClinicLocation())
}
