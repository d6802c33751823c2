package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/discvault/api/internal/claims"
	"github.com/discvault/api/internal/config"
	"github.com/discvault/api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	// TranslateError is required: the claim store depends on duplicate-key
	// violations surfacing as gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models, including the claim table with
// its composite unique index on (lost_disc_id, claimer_id).
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Disc{},
		&models.DiscImage{},
		&models.LostDisc{},
		&models.LostDiscImage{},
		&models.Prompt{},
		&models.SystemLog{},
		&claims.Claim{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
