// File: internal/platform/database/migrate.go
package database

import (
	"fmt"

	"synapse_backend/internal/listing"
	"synapse_backend/internal/notification"
	"synapse_backend/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate runs GORM schema migrations for all persisted models. The
// uuid-ossp extension is needed for uuid_generate_v4 column defaults.
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&listing.Listing{},
		&notification.Notification{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	logger.Info("Database schema migrated.")
	return nil
}
