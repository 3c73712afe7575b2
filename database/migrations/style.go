package migrations

import (
	"kart.link/configs/configslog"
	"kart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateStylesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating visual_styles table...")
	err := db.AutoMigrate(&models.VisualStyle{})
	if err != nil {
		configslog.Log.Error("Failed to migrate visual_styles table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Visual_styles table migrated successfully")
	return nil
}
