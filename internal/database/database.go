package database

import (
	"fmt"
	"time"

	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&models.Player{},
		&models.Genre{},
		&models.Publisher{},
		&models.Platform{},
		&models.Game{},
		&models.Rating{},
		&models.WishlistEntry{},
		&models.CompletedEntry{},
	}
}

// Config returns the gorm settings shared by production and tests.
func Config(log *logger.Logger) *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			log.Std(),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
		TranslateError: true,
	}
}

// Connect opens the PostgreSQL connection and runs migrations.
func Connect(dsn string, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), Config(log))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrated successfully", zap.Int("tables", len(Models())))

	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
