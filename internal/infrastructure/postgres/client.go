package postgres

import (
	"fmt"

	"github.com/qct/user-management/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database and runs migrations. TranslateError is
// enabled so unique-constraint violations surface as gorm.ErrDuplicatedKey
// regardless of driver.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema. Users must migrate before
// notifications so the cascade foreign key can be created.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Notification{}, &domain.Device{}, &domain.DeviceMetric{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
