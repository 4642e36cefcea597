package db

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/idohairstudios/salon-booking/internal/config"
	"github.com/idohairstudios/salon-booking/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.HairStyle{},
		&models.PriceVariation{},
		&models.AddOnService{},
		&models.AvailableDate{},
		&models.Appointment{},
		&models.AppointmentAddOn{},
		&models.PaymentRecord{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seedAdmin(db, cfg, log)

	return db
}

// seedAdmin creates the back-office login on first boot.
func seedAdmin(db *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	if cfg.AdminPassword == "" {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")
		return
	}

	admin := models.User{
		Name:         "Salon Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
		return
	}

	log.Info().Str("email", admin.Email).Msg("seeded admin user")
}
