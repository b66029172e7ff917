package services

import (
	"context"
	"time"

	"vitalis/internal/models/db_models"
	"vitalis/internal/models/response_models"
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error)
}

type DashboardService struct {
	repo    repositories.DashboardRepository
	txnRepo repositories.TransactionRepository

	now func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository, txnRepo repositories.TransactionRepository) DashboardServiceInterface {
	return &DashboardService{
		repo:    repo,
		txnRepo: txnRepo,
		now:     utils.NowClinic,
	}
}

func (s *DashboardService) BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error) {
	now := s.now()

	totalMembers, err := s.repo.CountTotalMembers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	expiredMembers, err := s.repo.CountExpiredMembers(ctx, now)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pendingMembers, err := s.repo.CountMembersByStatus(ctx, db_models.MemberStatusPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pendingBookings, err := s.repo.CountBookingsByStatus(ctx, db_models.BookingStatusPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pendingInquiries, err := s.repo.CountInquiriesByStatus(ctx, db_models.InquiryStatusNew)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	revenue, err := s.repo.RevenueTotal(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	tierRows, err := s.repo.TierMix(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var tierMix []response_models.TierMixItem
	for _, r := range tierRows {
		tierMix = append(tierMix, response_models.TierMixItem{Tier: r.Tier, Count: r.Count})
	}

	recentTxns, err := s.txnRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var recent []response_models.RecentTransaction
	for _, t := range recentTxns {
		recent = append(recent, response_models.RecentTransaction{
			MemberName:  t.Member.Name,
			AmountMinor: t.AmountMinor,
			Type:        string(t.TransactionType),
			CreatedAt:   t.CreatedAt,
		})
	}

	// Active is whatever is neither pending nor lazily expired; counting it
	// from the same predicate keeps all three numbers consistent.
	active := totalMembers - expiredMembers - pendingMembers
	if active < 0 {
		active = 0
	}

	return &response_models.DashboardReport{
		TotalMembers:       totalMembers,
		ActiveMembers:      active,
		ExpiredMembers:     expiredMembers,
		PendingMembers:     pendingMembers,
		PendingBookings:    pendingBookings,
		PendingInquiries:   pendingInquiries,
		RevenueTotalMinor:  revenue,
		TierMix:            tierMix,
		RecentTransactions: recent,
	}, nil
}
