package seeders

import (
	"errors"

	"vkart.link/configs/configslog"
	"vkart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedFonts varsayılan fontları idempotent olarak yükler:
// mevcut olanlar atlanır, eksikler eklenir.
func SeedFonts(db *gorm.DB) error {
	fontsToSeed := []models.Font{
		{Name: models.FontNameInter, Family: "'Inter', sans-serif", URL: "https://fonts.googleapis.com/css2?family=Inter:wght@400;600&display=swap"},
		{Name: models.FontNameRoboto, Family: "'Roboto', sans-serif", URL: "https://fonts.googleapis.com/css2?family=Roboto:wght@400;500&display=swap"},
		{Name: models.FontNamePlayfair, Family: "'Playfair Display', serif", URL: "https://fonts.googleapis.com/css2?family=Playfair+Display:wght@400;600&display=swap"},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Font seed işlemi başlıyor...")

	for _, fontToSeed := range fontsToSeed {
		var existingFont models.Font
		result := db.Where("name = ?", fontToSeed.Name).First(&existingFont)

		if result.Error == nil {
			configslog.SLog.Debugf("Font '%s' zaten mevcut, oluşturma atlanıyor.", fontToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Font kontrol edilirken veritabanı hatası",
				zap.String("font_name", fontToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Font '%s' oluşturuluyor...", fontToSeed.Name)

		if err := db.Create(&fontToSeed).Error; err != nil {
			configslog.Log.Error("Font oluşturulamadı",
				zap.String("font_name", fontToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni font başarıyla seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm fontlar zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("fontlar seed edilirken en az bir hata oluştu")
	}

	configslog.SLog.Info("Font seed işlemi başarıyla tamamlandı.")
	return nil
}
