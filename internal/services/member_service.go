package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

type MemberServiceInterface interface {
	ListMembers(ctx context.Context) ([]db_models.Member, error)
	ListExpiredMembers(ctx context.Context) ([]db_models.Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (*db_models.Member, error)
	ConfirmMember(ctx context.Context, id uuid.UUID, paymentStatus string) (*db_models.Member, error)
	RenewMember(ctx context.Context, id uuid.UUID, newTier string) (*db_models.Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	ListTransactions(ctx context.Context, memberID uuid.UUID) ([]db_models.Transaction, error)
}

type MemberService struct {
	db         *gorm.DB
	memberRepo repositories.MemberRepository
	txnRepo    repositories.TransactionRepository
	mail       IMailService

	now func() time.Time
}

func NewMemberService(db *gorm.DB, memberRepo repositories.MemberRepository, txnRepo repositories.TransactionRepository, mail IMailService) MemberServiceInterface {
	return &MemberService{
		db:         db,
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
		mail:       mail,
		now:        utils.NowClinic,
	}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]db_models.Member, error) {
	members, err := s.memberRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return members, nil
}

func (s *MemberService) ListExpiredMembers(ctx context.Context) ([]db_models.Member, error) {
	members, err := s.memberRepo.ListExpired(ctx, s.now())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return members, nil
}

func (s *MemberService) GetMember(ctx context.Context, id uuid.UUID) (*db_models.Member, error) {
	member, err := s.memberRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return member, nil
}

// ConfirmMember moves a pending member to active: assigns the referral code,
// sets the one-year membership window, credits the referrer if the inquiry
// carried a known code, mirrors the patient record, and appends the
// registration transaction. Everything runs in one database transaction so a
// failed step leaves no partial state.
func (s *MemberService) ConfirmMember(ctx context.Context, id uuid.UUID, paymentStatus string) (*db_models.Member, error) {
	var confirmed *db_models.Member

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewMemberRepository(tx)

		member, err := repo.FindById(ctx, id)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if member == nil {
			return utils.ErrMemberNotFound
		}
		if member.Status != db_models.MemberStatusPending {
			return utils.ErrMemberNotPending
		}

		now := s.now()
		start := now.Unix()
		expiry := utils.OneYearFrom(now).Unix()

		code, err := s.uniqueReferralCode(ctx, repo, member.Name)
		if err != nil {
			return err
		}

		if member.ReferredBy != nil && strings.TrimSpace(*member.ReferredBy) != "" {
			// Best effort: an unknown code is ignored, not an error.
			referrer, err := repo.FindActiveByReferralCode(ctx, *member.ReferredBy)
			if err != nil {
				return utils.ErrDatabaseError
			}
			if referrer != nil && referrer.ID != member.ID {
				if err := tx.Model(referrer).
					Update("referral_count", gorm.Expr("referral_count + 1")).Error; err != nil {
					return utils.ErrDatabaseError
				}
			}
		}

		if paymentStatus == "" {
			paymentStatus = "paid"
		}
		price := db_models.TierPriceMinor[member.MembershipType]

		member.Status = db_models.MemberStatusActive
		member.MembershipStartDate = &start
		member.MembershipExpiryDate = &expiry
		member.ReferralCode = &code
		member.PaymentStatus = paymentStatus
		member.AmountPaidMinor = price

		if err := tx.Save(member).Error; err != nil {
			return utils.ErrDatabaseError
		}

		if err := s.mirrorPatientRecord(ctx, tx, member); err != nil {
			return err
		}

		txn := &db_models.Transaction{
			MemberID:        member.ID,
			AmountMinor:     price,
			Currency:        "PHP",
			TransactionType: db_models.TxnTypeRegistration,
			PaymentStatus:   paymentStatus,
			Description:     fmt.Sprintf("%s membership registration", member.MembershipType),
		}
		if err := tx.Create(txn).Error; err != nil {
			return utils.ErrDatabaseError
		}

		confirmed = member
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.mail != nil {
		if err := s.mail.SendMembershipConfirmed(confirmed); err != nil {
			log.Printf("confirm member %s: confirmation mail failed: %v", confirmed.ID, err)
		}
	}

	return confirmed, nil
}

// RenewMember reactivates an expired membership. The new expiry is exactly
// one year from the renewal date, never extended from the old expiry, and a
// renewal transaction is appended at the (possibly changed) tier's price.
func (s *MemberService) RenewMember(ctx context.Context, id uuid.UUID, newTier string) (*db_models.Member, error) {
	var renewed *db_models.Member

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewMemberRepository(tx)

		member, err := repo.FindById(ctx, id)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if member == nil {
			return utils.ErrMemberNotFound
		}

		now := s.now()
		if !member.IsExpired(now) {
			return utils.ErrMemberNotExpired
		}

		if newTier != "" {
			member.MembershipType = db_models.MembershipTier(newTier)
		}

		start := now.Unix()
		expiry := utils.OneYearFrom(now).Unix()
		price := db_models.TierPriceMinor[member.MembershipType]

		member.Status = db_models.MemberStatusActive
		member.MembershipStartDate = &start
		member.MembershipExpiryDate = &expiry
		member.PaymentStatus = "paid"
		member.AmountPaidMinor = price

		if err := tx.Save(member).Error; err != nil {
			return utils.ErrDatabaseError
		}

		if err := s.mirrorPatientRecord(ctx, tx, member); err != nil {
			return err
		}

		txn := &db_models.Transaction{
			MemberID:        member.ID,
			AmountMinor:     price,
			Currency:        "PHP",
			TransactionType: db_models.TxnTypeRenewal,
			PaymentStatus:   "paid",
			Description:     fmt.Sprintf("%s membership renewal", member.MembershipType),
		}
		if err := tx.Create(txn).Error; err != nil {
			return utils.ErrDatabaseError
		}

		renewed = member
		return nil
	})
	if err != nil {
		return nil, err
	}

	return renewed, nil
}

// DeleteMember hard-removes the member row. Patient-record history is a
// separate entity and is deliberately left untouched.
func (s *MemberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	member, err := s.memberRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}

	if err := s.memberRepo.HardDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *MemberService) ListTransactions(ctx context.Context, memberID uuid.UUID) ([]db_models.Transaction, error) {
	member, err := s.memberRepo.FindById(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	txns, err := s.txnRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

// uniqueReferralCode derives the code from the name and, when a similarly
// prefixed member already took it, replaces the tail with a numeric suffix
// until the code is unused.
func (s *MemberService) uniqueReferralCode(ctx context.Context, repo repositories.MemberRepository, name string) (string, error) {
	base := GenerateReferralCode(name)

	candidate := base
	for i := 2; ; i++ {
		exists, err := repo.ReferralCodeExists(ctx, candidate)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if !exists {
			return candidate, nil
		}
		suffix := strconv.Itoa(i)
		candidate = base[:referralCodeLen-len(suffix)] + suffix
	}
}

// mirrorPatientRecord keeps the clinical record's membership snapshot in
// step with the member row, when a record exists for the member's email.
func (s *MemberService) mirrorPatientRecord(ctx context.Context, tx *gorm.DB, member *db_models.Member) error {
	patients := repositories.NewPatientRepository(tx)

	record, err := patients.FindByEmail(ctx, member.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if record == nil {
		return nil
	}

	tier := member.MembershipType
	status := member.Status
	record.Membership = &tier
	record.MembershipStatus = &status
	record.MembershipExpiryDate = member.MembershipExpiryDate

	if err := patients.Save(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
