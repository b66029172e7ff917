package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

type TierCountRow struct {
	Tier  string
	Count int64
}

type DashboardRepository interface {
	CountMembersByStatus(ctx context.Context, status db_models.MemberStatus) (int64, error)
	CountTotalMembers(ctx context.Context) (int64, error)
	CountExpiredMembers(ctx context.Context, now time.Time) (int64, error)
	CountBookingsByStatus(ctx context.Context, status db_models.BookingStatus) (int64, error)
	CountInquiriesByStatus(ctx context.Context, status db_models.InquiryStatus) (int64, error)
	RevenueTotal(ctx context.Context) (int64, error)
	TierMix(ctx context.Context) ([]TierCountRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountMembersByStatus(ctx context.Context, status db_models.MemberStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountTotalMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Count(&count).Error
	return count, err
}

// CountExpiredMembers uses the same predicate as MemberRepository.ListExpired
// so the dashboard and the member list never disagree.
func (r *dashboardRepository) CountExpiredMembers(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("status = ? OR (membership_expiry_date IS NOT NULL AND membership_expiry_date < ?)",
			db_models.MemberStatusExpired, now.Unix()).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountBookingsByStatus(ctx context.Context, status db_models.BookingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountInquiriesByStatus(ctx context.Context, status db_models.InquiryStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.MembershipInquiry{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) RevenueTotal(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Select("COALESCE(SUM(amount_minor), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepository) TierMix(ctx context.Context) ([]TierCountRow, error) {
	var rows []TierCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Select("membership_type AS tier, COUNT(*) AS count").
		Group("membership_type").
		Scan(&rows).Error
	return rows, err
}
