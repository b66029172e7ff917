package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"vitalis/internal/models/db_models"
	"vitalis/internal/models/request_models"
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

type InquiryServiceInterface interface {
	CreateInquiry(ctx context.Context, req request_models.CreateInquiryRequest) (*db_models.MembershipInquiry, error)
	ListInquiries(ctx context.Context) ([]db_models.MembershipInquiry, error)
	UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status string) (*db_models.MembershipInquiry, error)
	ConvertInquiry(ctx context.Context, id uuid.UUID, referredBy string) (*db_models.Member, error)
}

type InquiryService struct {
	inquiryRepo repositories.InquiryRepository
	memberRepo  repositories.MemberRepository
	mail        IMailService
}

func NewInquiryService(
	inquiryRepo repositories.InquiryRepository,
	memberRepo repositories.MemberRepository,
	mail IMailService,
) InquiryServiceInterface {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		memberRepo:  memberRepo,
		mail:        mail,
	}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, req request_models.CreateInquiryRequest) (*db_models.MembershipInquiry, error) {
	inquiry := &db_models.MembershipInquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		DesiredTier: db_models.MembershipTier(req.DesiredTier),
		Message:     req.Message,
		Status:      db_models.InquiryStatusNew,
	}

	if err := s.inquiryRepo.Insert(ctx, inquiry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if s.mail != nil {
		if err := s.mail.SendInquiryReceived(inquiry); err != nil {
			log.Printf("inquiry %s: received mail failed: %v", inquiry.ID, err)
		}
	}

	return inquiry, nil
}

func (s *InquiryService) ListInquiries(ctx context.Context) ([]db_models.MembershipInquiry, error) {
	inquiries, err := s.inquiryRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return inquiries, nil
}

func (s *InquiryService) UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status string) (*db_models.MembershipInquiry, error) {
	inquiry, err := s.inquiryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if inquiry == nil {
		return nil, utils.ErrInquiryNotFound
	}

	inquiry.Status = db_models.InquiryStatus(status)
	if err := s.inquiryRepo.Save(ctx, inquiry); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return inquiry, nil
}

// ConvertInquiry creates a pending member from the inquiry; the member stays
// pending until an admin confirms payment. An optional referral code from the
// inquirer is stored as-is and resolved at confirmation time.
func (s *InquiryService) ConvertInquiry(ctx context.Context, id uuid.UUID, referredBy string) (*db_models.Member, error) {
	inquiry, err := s.inquiryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if inquiry == nil {
		return nil, utils.ErrInquiryNotFound
	}

	existing, err := s.memberRepo.FindByEmail(ctx, inquiry.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	member := &db_models.Member{
		Name:           inquiry.Name,
		Email:          inquiry.Email,
		Phone:          inquiry.Phone,
		MembershipType: inquiry.DesiredTier,
		Status:         db_models.MemberStatusPending,
		PaymentStatus:  "unpaid",
	}
	if code := strings.TrimSpace(referredBy); code != "" {
		member.ReferredBy = &code
	}

	if err := s.memberRepo.Insert(ctx, member); err != nil {
		return nil, utils.ErrDatabaseError
	}

	inquiry.Status = db_models.InquiryStatusConverted
	if err := s.inquiryRepo.Save(ctx, inquiry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return member, nil
}
