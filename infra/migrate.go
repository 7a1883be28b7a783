package infra

import (
	"log/slog"

	"github.com/finflow/finflow/infra/repository"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted model, including
// the unique indexes and the ON DELETE CASCADE foreign keys the integrity
// rules rely on.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	logger.Info("Running database migration")
	if err := db.AutoMigrate(repository.AllModels()...); err != nil {
		return err
	}
	logger.Info("Database migration complete")
	return nil
}
