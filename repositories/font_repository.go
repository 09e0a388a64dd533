package repositories

import (
	"context"

	"vkart.link/configs/configsdatabase"
	"vkart.link/models"

	"gorm.io/gorm"
)

// IFontRepository font lookup tablosunun okuma işlemleri.
type IFontRepository interface {
	FindAll(ctx context.Context) ([]models.Font, error)
	FindByID(ctx context.Context, id uint) (*models.Font, error)
	FindByName(ctx context.Context, name string) (*models.Font, error)
}

// FontRepository IFontRepository'nin GORM implementasyonu.
type FontRepository struct {
	base *BaseRepository[models.Font]
	db   *gorm.DB
}

// NewFontRepository yeni bir FontRepository örneği oluşturur.
func NewFontRepository() IFontRepository {
	return NewFontRepositoryTx(configsdatabase.GetDB())
}

// NewFontRepositoryTx verilen transaction üzerinde çalışan örnek oluşturur.
func NewFontRepositoryTx(tx *gorm.DB) IFontRepository {
	return &FontRepository{base: NewBaseRepository[models.Font](tx), db: tx}
}

// FindAll tüm fontları ada göre sıralı döndürür.
func (r *FontRepository) FindAll(ctx context.Context) ([]models.Font, error) {
	fonts := []models.Font{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&fonts).Error
	return fonts, err
}

// FindByID fontu birincil anahtar ile bulur.
func (r *FontRepository) FindByID(ctx context.Context, id uint) (*models.Font, error) {
	return r.base.FindByID(ctx, id)
}

// FindByName fontu benzersiz adıyla bulur.
func (r *FontRepository) FindByName(ctx context.Context, name string) (*models.Font, error) {
	var font models.Font
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&font).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &font, nil
}

var _ IFontRepository = (*FontRepository)(nil)
