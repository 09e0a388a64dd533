package migrations

import (
	"vkart.link/configs/configslog"
	"vkart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateVCardTables kök tabloyu ve dört çocuk tabloyu migrate eder.
// Slug üzerindeki global unique index burada oluşur; slug çakışmalarının
// tek otoritesi bu kısıtlamadır.
func MigrateVCardTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating v_cards & child tables...")
	err := db.AutoMigrate(
		&models.VCard{},
		&models.BusinessHour{},
		&models.ServiceItem{},
		&models.SocialLink{},
		&models.Testimonial{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate v_cards & child tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("v_cards & child tables migrated successfully")
	return nil
}
