package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitalis/internal/repositories"
	"vitalis/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideAdminService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, txnRepo repositories.TransactionRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(repo, txnRepo)
}

func provideAdminService(
	db *gorm.DB,
	bookingSvc services.BookingServiceInterface,
	memberSvc services.MemberServiceInterface,
	patientRepo repositories.PatientRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(db, bookingSvc, memberSvc, patientRepo)
}
