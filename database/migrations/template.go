package migrations

import (
	"kart.link/configs/configslog"
	"kart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTemplatesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating templates table...")
	err := db.AutoMigrate(&models.Template{})
	if err != nil {
		configslog.Log.Error("Failed to migrate templates table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Templates table migrated successfully")
	return nil
}
