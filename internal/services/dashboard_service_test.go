package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalis/internal/models/db_models"
	"vitalis/internal/repositories"
)

func TestBuildDashboard(t *testing.T) {
	db := setupTestDB(t)
	now := clinicDate(2026, time.June, 15)

	svc := NewDashboardService(
		repositories.NewDashboardRepository(db),
		repositories.NewTransactionRepository(db),
	).(*DashboardService)
	svc.now = func() time.Time { return now }

	past := clinicDate(2026, time.May, 1).Unix()
	future := clinicDate(2027, time.May, 1).Unix()

	healthy := seedMember(t, db, &db_models.Member{
		Name: "Healthy Gold", Email: "hg@example.com",
		MembershipType: db_models.TierGold, Status: db_models.MemberStatusActive,
		MembershipExpiryDate: &future,
	})
	seedMember(t, db, &db_models.Member{
		Name: "Lapsed Green", Email: "lg@example.com",
		MembershipType: db_models.TierGreen, Status: db_models.MemberStatusActive,
		MembershipExpiryDate: &past,
	})
	seedMember(t, db, &db_models.Member{
		Name: "Waiting Green", Email: "wg@example.com",
		MembershipType: db_models.TierGreen, Status: db_models.MemberStatusPending,
	})

	require.NoError(t, db.Create(&db_models.Booking{
		CustomerName: "Counted", CustomerEmail: "counted@example.com",
		Service: "Facial", Status: db_models.BookingStatusPending,
	}).Error)
	require.NoError(t, db.Create(&db_models.MembershipInquiry{
		Name: "Fresh", Email: "fresh@example.com",
		DesiredTier: db_models.TierGreen, Status: db_models.InquiryStatusNew,
	}).Error)
	require.NoError(t, db.Create(&db_models.Transaction{
		MemberID: healthy.ID, AmountMinor: 18888, Currency: "PHP",
		TransactionType: db_models.TxnTypeRegistration, PaymentStatus: "paid",
	}).Error)
	require.NoError(t, db.Create(&db_models.Transaction{
		MemberID: healthy.ID, AmountMinor: 18888, Currency: "PHP",
		TransactionType: db_models.TxnTypeRenewal, PaymentStatus: "paid",
	}).Error)

	report, err := svc.BuildDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalMembers)
	assert.Equal(t, int64(1), report.ActiveMembers)
	assert.Equal(t, int64(1), report.ExpiredMembers)
	assert.Equal(t, int64(1), report.PendingMembers)
	assert.Equal(t, int64(1), report.PendingBookings)
	assert.Equal(t, int64(1), report.PendingInquiries)
	assert.Equal(t, int64(37776), report.RevenueTotalMinor)
	assert.NotEmpty(t, report.TierMix)
	require.Len(t, report.RecentTransactions, 2)
	assert.Equal(t, "Healthy Gold", report.RecentTransactions[0].MemberName)
}
