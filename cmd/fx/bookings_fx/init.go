package bookings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitalis/internal/repositories"
	"vitalis/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	patientRepo repositories.PatientRepository,
	mail services.IMailService,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, patientRepo, mail)
}
