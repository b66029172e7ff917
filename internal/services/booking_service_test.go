package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
	"vitalis/internal/models/request_models"
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

func newTestBookingService(t *testing.T, db *gorm.DB, mail IMailService) BookingServiceInterface {
	return NewBookingService(
		repositories.NewBookingRepository(db),
		repositories.NewPatientRepository(db),
		mail,
	)
}

func TestCreateBooking_SendsConfirmation(t *testing.T) {
	db := setupTestDB(t)
	mail := &mockMailService{}
	svc := newTestBookingService(t, db, mail)

	booking, err := svc.CreateBooking(context.Background(), request_models.CreateBookingRequest{
		CustomerName:  "First Timer",
		CustomerEmail: "first@example.com",
		CustomerPhone: "09171234567",
		Service:       "Gold Facial",
		PreferredDate: "2026-07-10",
		PreferredTime: "14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.BookingStatusPending, booking.Status)
	assert.Equal(t, 1, mail.bookingSent)
}

func TestUpdateBookingStatus_CompletedOpensPatientRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(t, db, nil)

	booking := &db_models.Booking{
		CustomerName:  "New Patient",
		CustomerEmail: "newpatient@example.com",
		CustomerPhone: "09170000000",
		Service:       "Facial",
		Status:        db_models.BookingStatusConfirmed,
	}
	require.NoError(t, db.Create(booking).Error)

	_, err := svc.UpdateBookingStatus(context.Background(), booking.ID, string(db_models.BookingStatusCompleted))
	require.NoError(t, err)

	var record db_models.PatientRecord
	require.NoError(t, db.First(&record, "email = ?", "newpatient@example.com").Error)
	assert.Equal(t, "New Patient", record.Name)
	require.NotNil(t, record.BookingID)
	assert.Equal(t, booking.ID, *record.BookingID)
}

func TestUpdateBookingStatus_CompletedKeepsExistingRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(t, db, nil)

	record := &db_models.PatientRecord{Name: "Returning", Email: "returning@example.com"}
	require.NoError(t, db.Create(record).Error)

	booking := &db_models.Booking{
		CustomerName:  "Returning",
		CustomerEmail: "returning@example.com",
		Service:       "Facial",
		Status:        db_models.BookingStatusConfirmed,
	}
	require.NoError(t, db.Create(booking).Error)

	_, err := svc.UpdateBookingStatus(context.Background(), booking.ID, string(db_models.BookingStatusCompleted))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&db_models.PatientRecord{}).
		Where("email = ?", "returning@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestScheduleAndListAppointments(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(t, db, nil)

	booking := &db_models.Booking{
		CustomerName:  "Scheduled",
		CustomerEmail: "scheduled@example.com",
		Service:       "Facial",
		Status:        db_models.BookingStatusConfirmed,
	}
	require.NoError(t, db.Create(booking).Error)

	scheduledAt := clinicDate(2026, time.August, 3).Unix()
	appt, err := svc.ScheduleAppointment(context.Background(), request_models.ScheduleAppointmentRequest{
		BookingID:    booking.ID.String(),
		ScheduledAt:  scheduledAt,
		Practitioner: "Dr. Reyes",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.AppointmentStatusScheduled, appt.Status)

	appts, err := svc.ListAppointments(context.Background(), booking.ID)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, scheduledAt, appts[0].ScheduledAt)
	assert.Equal(t, "Dr. Reyes", appts[0].Practitioner)
}

func TestListAppointments_UnknownBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(t, db, nil)

	_, err := svc.ListAppointments(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}
