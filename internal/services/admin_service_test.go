package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
	"vitalis/internal/models/request_models"
	"vitalis/internal/repositories"
)

func newTestAdminService(t *testing.T, db *gorm.DB) AdminServiceInterface {
	bookingSvc := NewBookingService(repositories.NewBookingRepository(db), repositories.NewPatientRepository(db), nil)
	memberSvc := newTestMemberService(t, db, clinicDate(2026, time.July, 1), nil)
	return NewAdminService(db, bookingSvc, memberSvc, repositories.NewPatientRepository(db))
}

func TestExecute_UpdateBookingStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAdminService(t, db)

	booking := &db_models.Booking{
		CustomerName:  "Walk In",
		CustomerEmail: "walkin@example.com",
		Service:       "Gold Facial",
		Status:        db_models.BookingStatusPending,
	}
	require.NoError(t, db.Create(booking).Error)

	result, err := svc.Execute(context.Background(), request_models.AdminActionRequest{
		Action:    "update_booking_status",
		BookingID: booking.ID.String(),
		Status:    string(db_models.BookingStatusConfirmed),
	})
	require.NoError(t, err)

	updated, ok := result["booking"].(*db_models.Booking)
	require.True(t, ok)
	assert.Equal(t, db_models.BookingStatusConfirmed, updated.Status)
}

func TestExecute_ConfirmMember(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAdminService(t, db)

	member := seedMember(t, db, &db_models.Member{
		Name:           "Via Action",
		Email:          "viaaction@example.com",
		MembershipType: db_models.TierGreen,
		Status:         db_models.MemberStatusPending,
	})

	result, err := svc.Execute(context.Background(), request_models.AdminActionRequest{
		Action:   "confirm_member",
		MemberID: member.ID.String(),
	})
	require.NoError(t, err)

	confirmed, ok := result["member"].(*db_models.Member)
	require.True(t, ok)
	assert.Equal(t, db_models.MemberStatusActive, confirmed.Status)
	assert.NotNil(t, confirmed.ReferralCode)
}

func TestExecute_AppendMedicalRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAdminService(t, db)

	record := &db_models.PatientRecord{
		Name:         "Charted",
		Email:        "charted@example.com",
		MedicalNotes: []byte(`[{"note":"initial consult","recorded_at":1700000000}]`),
	}
	require.NoError(t, db.Create(record).Error)

	result, err := svc.Execute(context.Background(), request_models.AdminActionRequest{
		Action:          "append_medical_record",
		PatientRecordID: record.ID.String(),
		Note:            "follow-up scheduled",
	})
	require.NoError(t, err)

	updated, ok := result["patient_record"].(*db_models.PatientRecord)
	require.True(t, ok)

	var notes []medicalNote
	require.NoError(t, json.Unmarshal(updated.MedicalNotes, &notes))
	require.Len(t, notes, 2)
	assert.Equal(t, "initial consult", notes[0].Note)
	assert.Equal(t, "follow-up scheduled", notes[1].Note)
	assert.NotZero(t, notes[1].RecordedAt)
}

func TestExecute_ClearAllData(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAdminService(t, db)

	member := seedActiveMember(t, db, "wipe@example.com")
	benefit := seedClaimable(t, db, 6)
	require.NoError(t, db.Create(&db_models.BenefitClaim{
		MemberID: member.ID, BenefitID: benefit.ID, SessionNumber: 1,
	}).Error)
	require.NoError(t, db.Create(&db_models.Booking{
		CustomerName: "Gone", CustomerEmail: "gone@example.com",
		Service: "Facial", Status: db_models.BookingStatusPending,
	}).Error)
	require.NoError(t, db.Create(&db_models.AdminSetting{
		Key: db_models.SettingKeyAdminPasswordHash, Value: "hash",
	}).Error)

	result, err := svc.Execute(context.Background(), request_models.AdminActionRequest{
		Action: "clear_all_data",
	})
	require.NoError(t, err)
	assert.Equal(t, true, result["cleared"])

	for _, table := range []interface{}{
		&db_models.Member{}, &db_models.Booking{}, &db_models.BenefitClaim{},
	} {
		var count int64
		require.NoError(t, db.Model(table).Count(&count).Error)
		assert.Zero(t, count)
	}

	// The operator credential survives the wipe.
	var settings int64
	require.NoError(t, db.Model(&db_models.AdminSetting{}).Count(&settings).Error)
	assert.Equal(t, int64(1), settings)
}

func TestExecute_UnknownAction(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAdminService(t, db)

	_, err := svc.Execute(context.Background(), request_models.AdminActionRequest{Action: "drop_tables"})
	assert.Error(t, err)
}
