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
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

func newTestBenefitService(t *testing.T, db *gorm.DB) *BenefitService {
	return NewBenefitService(
		repositories.NewBenefitRepository(db),
		repositories.NewRewardRepository(db),
		repositories.NewMemberRepository(db),
	).(*BenefitService)
}

func seedActiveMember(t *testing.T, db *gorm.DB, email string) *db_models.Member {
	expiry := clinicDate(2027, time.January, 1).Unix()
	return seedMember(t, db, &db_models.Member{
		Name:                 "Benefit Holder",
		Email:                email,
		MembershipType:       db_models.TierGold,
		Status:               db_models.MemberStatusActive,
		MembershipExpiryDate: &expiry,
	})
}

func seedClaimable(t *testing.T, db *gorm.DB, total int) *db_models.MembershipBenefit {
	benefit := &db_models.MembershipBenefit{
		Tier:          db_models.TierGold,
		Name:          "Facial Session",
		BenefitType:   db_models.BenefitTypeClaimable,
		TotalQuantity: total,
	}
	require.NoError(t, db.Create(benefit).Error)
	return benefit
}

func TestCreateBenefit_InclusionIgnoresQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBenefitService(t, db)

	benefit, err := svc.CreateBenefit(context.Background(), "Platinum", "Priority Booking", "inclusion", 12)
	require.NoError(t, err)
	assert.Equal(t, db_models.BenefitTypeInclusion, benefit.BenefitType)
	assert.Zero(t, benefit.TotalQuantity)
}

func TestListBenefits_FiltersByTier(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBenefitService(t, db)

	_, err := svc.CreateBenefit(context.Background(), "Gold", "Facial Session", "claimable", 6)
	require.NoError(t, err)
	_, err = svc.CreateBenefit(context.Background(), "Green", "Welcome Kit", "inclusion", 0)
	require.NoError(t, err)

	gold, err := svc.ListBenefits(context.Background(), "Gold")
	require.NoError(t, err)
	require.Len(t, gold, 1)
	assert.Equal(t, "Facial Session", gold[0].Name)
}

func TestToggleClaim_SelfInverse(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBenefitService(t, db)

	member := seedActiveMember(t, db, "claims@example.com")
	benefit := seedClaimable(t, db, 6)

	claims, err := svc.ToggleClaim(context.Background(), member.ID, benefit.ID, 3)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, 3, claims[0].SessionNumber)

	claims, err = svc.ToggleClaim(context.Background(), member.ID, benefit.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, claims)
}

func TestToggleClaim_SessionOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBenefitService(t, db)

	member := seedActiveMember(t, db, "range@example.com")
	benefit := seedClaimable(t, db, 6)

	_, err := svc.ToggleClaim(context.Background(), member.ID, benefit.ID, 7)
	assert.ErrorIs(t, err, utils.ErrSessionOutOfRange)

	_, err = svc.ToggleClaim(context.Background(), member.ID, benefit.ID, 0)
	assert.ErrorIs(t, err, utils.ErrSessionOutOfRange)
}

func TestClaimedCount(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBenefitService(t, db)

	member := seedActiveMember(t, db, "count@example.com")
	benefit := seedClaimable(t, db, 6)

	for _, session := range []int{1, 2, 5} {
		_, err := svc.ToggleClaim(context.Background(), member.ID, benefit.ID, session)
		require.NoError(t, err)
	}
	// Unclaim one back.
	_, err := svc.ToggleClaim(context.Background(), member.ID, benefit.ID, 2)
	require.NoError(t, err)

	count, err := svc.ClaimedCount(context.Background(), member.ID, benefit.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestToggleRewardClaimed_StampsAndClears(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBenefitService(t, db)
	stamp := clinicDate(2026, time.May, 20)
	svc.now = func() time.Time { return stamp }

	member := seedActiveMember(t, db, "reward@example.com")
	reward, err := svc.GrantReward(context.Background(), member.ID, "Free Gold Facial")
	require.NoError(t, err)
	assert.False(t, reward.Claimed)

	claimed, err := svc.ToggleRewardClaimed(context.Background(), reward.ID)
	require.NoError(t, err)
	assert.True(t, claimed.Claimed)
	require.NotNil(t, claimed.ClaimedAt)
	assert.Equal(t, stamp.Unix(), *claimed.ClaimedAt)

	unclaimed, err := svc.ToggleRewardClaimed(context.Background(), reward.ID)
	require.NoError(t, err)
	assert.False(t, unclaimed.Claimed)
	assert.Nil(t, unclaimed.ClaimedAt)
}

func TestGrantReward_UnknownMember(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBenefitService(t, db)

	_, err := svc.GrantReward(context.Background(), uuid.New(), "Free Facial")
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}

func TestDeleteBenefit_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBenefitService(t, db)

	err := svc.DeleteBenefit(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrBenefitNotFound)
}
