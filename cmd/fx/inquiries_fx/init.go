package inquiries_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitalis/internal/repositories"
	"vitalis/internal/services"
)

var Module = fx.Provide(
	provideInquiryRepo, provideInquiryService)

func provideInquiryRepo(db *gorm.DB) repositories.InquiryRepository {
	return repositories.NewInquiryRepository(db)
}

func provideInquiryService(
	inquiryRepo repositories.InquiryRepository,
	memberRepo repositories.MemberRepository,
	mail services.IMailService,
) services.InquiryServiceInterface {
	return services.NewInquiryService(inquiryRepo, memberRepo, mail)
}
