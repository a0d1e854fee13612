package database

import (
	"fmt"
	"log"
	"time"

	"trackr/backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database connection. GORM's logger writes through the
// given zerolog logger.
func Connect(dsn string, zl zerolog.Logger) (*gorm.DB, error) {
	customLogger := logger.New(
		log.New(zl.With().Str("component", "gorm").Logger(), "", 0),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := SetupJoinTables(db); err != nil {
		return nil, err
	}

	zl.Info().Msg("Database connection established.")
	return db, nil
}

// SetupJoinTables registers the custom join models so that many2many
// preloads use the gid/cid columns.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Game{}, "Consoles", &models.GameConsole{}); err != nil {
		return fmt.Errorf("setup gameconsoles join table: %w", err)
	}
	return nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.Profile{},
		&models.Console{},
		&models.Game{},
		&models.GameConsole{},
		&models.Achievement{},
		&models.UserGame{},
		&models.UserAchievement{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
