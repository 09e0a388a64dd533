package services

import (
	"fmt"
	"testing"

	"vkart.link/configs/configslog"
	"vkart.link/database/seeders"
	"vkart.link/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB her test için izole bir in-memory sqlite veritabanı açar.
// TranslateError production bağlantısıyla aynı şekilde açıktır; unique
// ihlalleri burada da gorm.ErrDuplicatedKey olarak görünür.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if configslog.Log == nil {
		configslog.InitLogger()
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Font{},
		&models.VCard{},
		&models.BusinessHour{},
		&models.ServiceItem{},
		&models.SocialLink{},
		&models.Testimonial{},
	))
	require.NoError(t, seeders.SeedFonts(db))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// newTestService servis + altındaki bağlantıyı döndürür.
func newTestService(t *testing.T) (IVCardService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewVCardServiceWithDB(db), db
}
