package migrations

import (
	"kart.link/configs/configslog"
	"kart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCategoriesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating categories table...")
	err := db.AutoMigrate(&models.Category{})
	if err != nil {
		configslog.Log.Error("Failed to migrate categories table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Categories table migrated successfully")
	return nil
}
