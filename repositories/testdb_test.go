package repositories

import (
	"fmt"
	"testing"

	"vkart.link/configs/configslog"
	"vkart.link/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB her test için izole bir in-memory sqlite veritabanı açar.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if configslog.Log == nil {
		configslog.InitLogger()
	}

	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", t.Name())
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

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
