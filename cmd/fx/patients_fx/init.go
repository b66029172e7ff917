package patients_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitalis/internal/repositories"
)

var Module = fx.Provide(
	providePatientRepo)

func providePatientRepo(db *gorm.DB) repositories.PatientRepository {
	return repositories.NewPatientRepository(db)
}
