package members_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitalis/internal/repositories"
	"vitalis/internal/services"
)

var Module = fx.Provide(
	provideMemberRepo, provideTransactionRepo, provideMemberService)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideMemberService(db *gorm.DB, memberRepo repositories.MemberRepository, txnRepo repositories.TransactionRepository, mail services.IMailService) services.MemberServiceInterface {
	return services.NewMemberService(db, memberRepo, txnRepo, mail)
}
