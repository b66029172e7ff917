package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vitalis/internal/models/db_models"
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

type BenefitServiceInterface interface {
	CreateBenefit(ctx context.Context, tier, name, benefitType string, totalQuantity int) (*db_models.MembershipBenefit, error)
	ListBenefits(ctx context.Context, tier string) ([]db_models.MembershipBenefit, error)
	DeleteBenefit(ctx context.Context, id uuid.UUID) error

	ToggleClaim(ctx context.Context, memberID, benefitID uuid.UUID, sessionNumber int) ([]db_models.BenefitClaim, error)
	ListClaims(ctx context.Context, memberID uuid.UUID) ([]db_models.BenefitClaim, error)
	ClaimedCount(ctx context.Context, memberID, benefitID uuid.UUID) (int64, error)

	GrantReward(ctx context.Context, memberID uuid.UUID, reward string) (*db_models.ReferralReward, error)
	ToggleRewardClaimed(ctx context.Context, rewardID uuid.UUID) (*db_models.ReferralReward, error)
	ListRewards(ctx context.Context, memberID uuid.UUID) ([]db_models.ReferralReward, error)
	DeleteReward(ctx context.Context, id uuid.UUID) error
}

type BenefitService struct {
	benefitRepo repositories.BenefitRepository
	rewardRepo  repositories.RewardRepository
	memberRepo  repositories.MemberRepository

	now func() time.Time
}

func NewBenefitService(
	benefitRepo repositories.BenefitRepository,
	rewardRepo repositories.RewardRepository,
	memberRepo repositories.MemberRepository,
) BenefitServiceInterface {
	return &BenefitService{
		benefitRepo: benefitRepo,
		rewardRepo:  rewardRepo,
		memberRepo:  memberRepo,
		now:         utils.NowClinic,
	}
}

func (s *BenefitService) CreateBenefit(ctx context.Context, tier, name, benefitType string, totalQuantity int) (*db_models.MembershipBenefit, error) {
	benefit := &db_models.MembershipBenefit{
		Tier:        db_models.MembershipTier(tier),
		Name:        name,
		BenefitType: db_models.BenefitType(benefitType),
	}
	if benefit.BenefitType == db_models.BenefitTypeClaimable {
		benefit.TotalQuantity = totalQuantity
	}

	if err := s.benefitRepo.InsertBenefit(ctx, benefit); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return benefit, nil
}

func (s *BenefitService) ListBenefits(ctx context.Context, tier string) ([]db_models.MembershipBenefit, error) {
	benefits, err := s.benefitRepo.ListBenefitsByTier(ctx, db_models.MembershipTier(tier))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return benefits, nil
}

func (s *BenefitService) DeleteBenefit(ctx context.Context, id uuid.UUID) error {
	benefit, err := s.benefitRepo.FindBenefitById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if benefit == nil {
		return utils.ErrBenefitNotFound
	}
	if err := s.benefitRepo.DeleteBenefit(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ToggleClaim claims the given session, or unclaims it if already claimed.
// It is self-inverse: calling twice with the same arguments restores the
// original claim set. Returns the member's updated claims.
func (s *BenefitService) ToggleClaim(ctx context.Context, memberID, benefitID uuid.UUID, sessionNumber int) ([]db_models.BenefitClaim, error) {
	member, err := s.memberRepo.FindById(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	benefit, err := s.benefitRepo.FindBenefitById(ctx, benefitID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if benefit == nil {
		return nil, utils.ErrBenefitNotFound
	}
	if benefit.BenefitType == db_models.BenefitTypeClaimable &&
		(sessionNumber < 1 || sessionNumber > benefit.TotalQuantity) {
		return nil, utils.ErrSessionOutOfRange
	}

	existing, err := s.benefitRepo.FindClaim(ctx, memberID, benefitID, sessionNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := s.benefitRepo.DeleteClaim(ctx, existing.ID); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		claim := &db_models.BenefitClaim{
			MemberID:      memberID,
			BenefitID:     benefitID,
			SessionNumber: sessionNumber,
		}
		if err := s.benefitRepo.InsertClaim(ctx, claim); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	claims, err := s.benefitRepo.ListClaims(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return claims, nil
}

func (s *BenefitService) ListClaims(ctx context.Context, memberID uuid.UUID) ([]db_models.BenefitClaim, error) {
	claims, err := s.benefitRepo.ListClaims(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return claims, nil
}

func (s *BenefitService) ClaimedCount(ctx context.Context, memberID, benefitID uuid.UUID) (int64, error) {
	count, err := s.benefitRepo.CountClaims(ctx, memberID, benefitID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (s *BenefitService) GrantReward(ctx context.Context, memberID uuid.UUID, reward string) (*db_models.ReferralReward, error) {
	member, err := s.memberRepo.FindById(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	row := &db_models.ReferralReward{
		MemberID: memberID,
		Reward:   reward,
	}
	if err := s.rewardRepo.Insert(ctx, row); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return row, nil
}

// ToggleRewardClaimed flips the claimed flag, stamping claimed_at when
// claiming and clearing it when unclaiming.
func (s *BenefitService) ToggleRewardClaimed(ctx context.Context, rewardID uuid.UUID) (*db_models.ReferralReward, error) {
	reward, err := s.rewardRepo.FindById(ctx, rewardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reward == nil {
		return nil, utils.ErrRewardNotFound
	}

	if reward.Claimed {
		reward.Claimed = false
		reward.ClaimedAt = nil
	} else {
		now := s.now().Unix()
		reward.Claimed = true
		reward.ClaimedAt = &now
	}

	if err := s.rewardRepo.Save(ctx, reward); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reward, nil
}

func (s *BenefitService) ListRewards(ctx context.Context, memberID uuid.UUID) ([]db_models.ReferralReward, error) {
	rewards, err := s.rewardRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rewards, nil
}

func (s *BenefitService) DeleteReward(ctx context.Context, id uuid.UUID) error {
	reward, err := s.rewardRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if reward == nil {
		return utils.ErrRewardNotFound
	}
	if err := s.rewardRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
