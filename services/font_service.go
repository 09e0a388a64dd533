package services

import (
	"context"
	"errors"

	"vkart.link/configs/configslog"
	"vkart.link/models"
	"vkart.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FontServiceError özel servis hataları
type FontServiceError string

func (e FontServiceError) Error() string { return string(e) }

const (
	ErrFontNotFound FontServiceError = "font bulunamadı"
)

// IFontService editörde seçilebilen fontların okuma işlemleri.
type IFontService interface {
	GetAllFonts(ctx context.Context) ([]models.Font, error)
	GetFontByID(ctx context.Context, id uint) (*models.Font, error)
}

// FontService IFontService arayüzünü uygular.
type FontService struct {
	repo repositories.IFontRepository
}

// NewFontService yeni bir FontService örneği oluşturur.
func NewFontService() IFontService {
	return &FontService{repo: repositories.NewFontRepository()}
}

// NewFontServiceWithDB verilen bağlantı ile servis oluşturur (testler için).
func NewFontServiceWithDB(db *gorm.DB) IFontService {
	return &FontService{repo: repositories.NewFontRepositoryTx(db)}
}

// GetAllFonts seed edilmiş fontları listeler.
func (s *FontService) GetAllFonts(ctx context.Context) ([]models.Font, error) {
	fonts, err := s.repo.FindAll(ctx)
	if err != nil {
		configslog.Log.Error("Fontlar listelenirken hata", zap.Error(err))
		return nil, err
	}
	return fonts, nil
}

// GetFontByID fontu ID ile getirir.
func (s *FontService) GetFontByID(ctx context.Context, id uint) (*models.Font, error) {
	font, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFontNotFound
		}
		return nil, err
	}
	return font, nil
}

var _ IFontService = (*FontService)(nil)
