package benefits_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitalis/internal/repositories"
	"vitalis/internal/services"
)

var Module = fx.Provide(
	provideBenefitRepo, provideRewardRepo, provideBenefitService)

func provideBenefitRepo(db *gorm.DB) repositories.BenefitRepository {
	return repositories.NewBenefitRepository(db)
}

func provideRewardRepo(db *gorm.DB) repositories.RewardRepository {
	return repositories.NewRewardRepository(db)
}

func provideBenefitService(
	benefitRepo repositories.BenefitRepository,
	rewardRepo repositories.RewardRepository,
	memberRepo repositories.MemberRepository,
) services.BenefitServiceInterface {
	return services.NewBenefitService(benefitRepo, rewardRepo, memberRepo)
}
