package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
	"vitalis/internal/models/request_models"
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

// AdminServiceInterface executes the discriminated admin mutation actions.
// Each action returns the affected row keyed by its entity name.
type AdminServiceInterface interface {
	Execute(ctx context.Context, req request_models.AdminActionRequest) (map[string]interface{}, error)
	ListPatientRecords(ctx context.Context) ([]db_models.PatientRecord, error)
}

type AdminService struct {
	db          *gorm.DB
	bookingSvc  BookingServiceInterface
	memberSvc   MemberServiceInterface
	patientRepo repositories.PatientRepository
}

func NewAdminService(
	db *gorm.DB,
	bookingSvc BookingServiceInterface,
	memberSvc MemberServiceInterface,
	patientRepo repositories.PatientRepository,
) AdminServiceInterface {
	return &AdminService{
		db:          db,
		bookingSvc:  bookingSvc,
		memberSvc:   memberSvc,
		patientRepo: patientRepo,
	}
}

func (s *AdminService) Execute(ctx context.Context, req request_models.AdminActionRequest) (map[string]interface{}, error) {
	switch req.Action {
	case "update_booking_status":
		return s.updateBookingStatus(ctx, req)
	case "confirm_member":
		return s.confirmMember(ctx, req)
	case "append_medical_record":
		return s.appendMedicalRecord(ctx, req)
	case "clear_all_data":
		return s.clearAllData(ctx)
	default:
		return nil, errors.New("unknown action")
	}
}

func (s *AdminService) updateBookingStatus(ctx context.Context, req request_models.AdminActionRequest) (map[string]interface{}, error) {
	id, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, utils.ErrBookingNotFound
	}

	booking, err := s.bookingSvc.UpdateBookingStatus(ctx, id, req.Status)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"booking": booking}, nil
}

func (s *AdminService) confirmMember(ctx context.Context, req request_models.AdminActionRequest) (map[string]interface{}, error) {
	id, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, utils.ErrMemberNotFound
	}

	member, err := s.memberSvc.ConfirmMember(ctx, id, "")
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"member": member}, nil
}

// ListPatientRecords exposes the clinical roster so the front desk can find
// record ids for the append_medical_record action.
func (s *AdminService) ListPatientRecords(ctx context.Context) ([]db_models.PatientRecord, error) {
	records, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return records, nil
}

type medicalNote struct {
	Note       string `json:"note"`
	RecordedAt int64  `json:"recorded_at"`
}

func (s *AdminService) appendMedicalRecord(ctx context.Context, req request_models.AdminActionRequest) (map[string]interface{}, error) {
	id, err := uuid.Parse(req.PatientRecordID)
	if err != nil {
		return nil, utils.ErrRecordNotFound
	}

	record, err := s.patientRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrRecordNotFound
	}

	var notes []medicalNote
	if len(record.MedicalNotes) > 0 {
		if err := json.Unmarshal(record.MedicalNotes, &notes); err != nil {
			notes = nil
		}
	}
	notes = append(notes, medicalNote{
		Note:       req.Note,
		RecordedAt: utils.NowUnixSeconds(),
	})

	raw, err := json.Marshal(notes)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	record.MedicalNotes = raw

	if err := s.patientRepo.Save(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return map[string]interface{}{"patient_record": record}, nil
}

// clearAllData wipes operational rows in one transaction; admin settings are
// kept so the operator password survives.
func (s *AdminService) clearAllData(ctx context.Context) (map[string]interface{}, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&db_models.BenefitClaim{},
			&db_models.ReferralReward{},
			&db_models.Transaction{},
			&db_models.Appointment{},
			&db_models.PatientRecord{},
			&db_models.Booking{},
			&db_models.MembershipInquiry{},
			&db_models.Member{},
		}
		for _, table := range tables {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return map[string]interface{}{"cleared": true}, nil
}
