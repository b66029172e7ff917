package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

// Migrate keeps the schema in sync with the registered entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Member{},
		&db_models.Booking{},
		&db_models.Appointment{},
		&db_models.PatientRecord{},
		&db_models.MembershipBenefit{},
		&db_models.BenefitClaim{},
		&db_models.ReferralReward{},
		&db_models.Transaction{},
		&db_models.MembershipInquiry{},
		&db_models.AdminSetting{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
