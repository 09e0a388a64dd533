package migrations

import (
	"vkart.link/configs/configslog"
	"vkart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateFontsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating fonts table...")
	err := db.AutoMigrate(&models.Font{})
	if err != nil {
		configslog.Log.Error("Failed to migrate fonts table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Fonts table migrated successfully")
	return nil
}
