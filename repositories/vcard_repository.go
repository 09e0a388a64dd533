package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"vkart.link/configs/configsdatabase"
	"vkart.link/configs/configslog"
	"vkart.link/models"
	"vkart.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VCardListItem listeleme için hafif projeksiyon: skaler alanlar + çocuk
// sayıları. Çocuk koleksiyonların kendisi yüklenmez.
type VCardListItem struct {
	ID                uint      `json:"id"`
	Slug              string    `json:"slug"`
	TemplateID        string    `json:"templateId"`
	Title             string    `json:"title"`
	Name              string    `json:"name"`
	PublishStatus     string    `json:"publishStatus"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	BusinessHourCount int       `gorm:"column:business_hour_count" json:"businessHourCount"`
	ServiceCount      int       `gorm:"column:service_count" json:"serviceCount"`
	SocialLinkCount   int       `gorm:"column:social_link_count" json:"socialLinkCount"`
	TestimonialCount  int       `gorm:"column:testimonial_count" json:"testimonialCount"`
}

// IVCardRepository kartvizit aggregate'inin veritabanı işlemleri.
// Tenant kapsamı burada sorgu koşulu olarak uygulanır: başka organizasyonun
// kaydı hiçbir zaman dönmez, ErrNotFound döner.
type IVCardRepository interface {
	CreateVCard(ctx context.Context, card *models.VCard) error
	FindByIDForOrganization(ctx context.Context, id, organizationID uint) (*models.VCard, error)
	FindByIDForOrganizationLocked(ctx context.Context, id, organizationID uint) (*models.VCard, error)
	FindAllForOrganization(ctx context.Context, organizationID uint, params queryparams.ListParams) ([]VCardListItem, int64, error)
	FindAllForOrganizationDetailed(ctx context.Context, organizationID uint, params queryparams.ListParams) ([]models.VCard, int64, error)
	CountForOrganization(ctx context.Context, organizationID uint) (int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsInOrganization(ctx context.Context, slug string, organizationID uint) (bool, error)
	UpdateVCard(ctx context.Context, card *models.VCard) error
	ReplaceBusinessHours(ctx context.Context, vcardID uint, rows []models.BusinessHour) error
	ReplaceServices(ctx context.Context, vcardID uint, rows []models.ServiceItem) error
	ReplaceSocialLinks(ctx context.Context, vcardID uint, rows []models.SocialLink) error
	ReplaceTestimonials(ctx context.Context, vcardID uint, rows []models.Testimonial) error
	DeleteVCard(ctx context.Context, card *models.VCard) error
	FindPublishedBySlug(ctx context.Context, slug string) (*models.VCard, error)
}

// VCardRepository IVCardRepository'nin GORM implementasyonu.
type VCardRepository struct {
	base *BaseRepository[models.VCard]
	db   *gorm.DB
}

// NewVCardRepository global bağlantı üzerinde çalışan repository oluşturur.
func NewVCardRepository() IVCardRepository {
	return NewVCardRepositoryTx(configsdatabase.GetDB())
}

// NewVCardRepositoryTx verilen transaction üzerinde çalışan repository
// oluşturur. Servis katmanı db.Transaction içinde bunu kullanır.
func NewVCardRepositoryTx(tx *gorm.DB) IVCardRepository {
	base := NewBaseRepository[models.VCard](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "updated_at", "title", "slug"})
	return &VCardRepository{base: base, db: tx}
}

// preloadAggregate aggregate'in dört çocuk koleksiyonunu ve fontu
// deterministik sırayla yükler: sıralı çocuklarda display_order, eşitlikte
// ekleme sırası (id) kazanır.
func preloadAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Font").
		Preload("BusinessHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Preload("Testimonials", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		})
}

// CreateVCard kök kaydı ve verilen çocuk satırlarını ekler.
// GORM ilişkili slice'ları aynı create içinde yazar; slug çakışması
// ErrDuplicateKey olarak döner. Çocuk satırlardaki ID ve VCardID
// alanları yazımdan önce sıfırlanır: istemciden gelen bir ID mevcut
// bir satırı upsert edip başka kartın çocuğunu bu karta taşıyabilirdi.
func (r *VCardRepository) CreateVCard(ctx context.Context, card *models.VCard) error {
	if card == nil {
		return errors.New("oluşturulacak kartvizit nil olamaz")
	}
	for i := range card.BusinessHours {
		card.BusinessHours[i].ID = 0
		card.BusinessHours[i].VCardID = 0
	}
	for i := range card.Services {
		card.Services[i].ID = 0
		card.Services[i].VCardID = 0
	}
	for i := range card.SocialLinks {
		card.SocialLinks[i].ID = 0
		card.SocialLinks[i].VCardID = 0
	}
	for i := range card.Testimonials {
		card.Testimonials[i].ID = 0
		card.Testimonials[i].VCardID = 0
	}
	return translateError(r.db.WithContext(ctx).Create(card).Error)
}

// FindByIDForOrganization kaydı id + organizationId koşuluyla bulur.
func (r *VCardRepository) FindByIDForOrganization(ctx context.Context, id, organizationID uint) (*models.VCard, error) {
	if id == 0 || organizationID == 0 {
		return nil, ErrNotFound
	}
	var card models.VCard
	err := preloadAggregate(r.db.WithContext(ctx)).
		Where("organization_id = ?", organizationID).
		First(&card, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &card, nil
}

// FindByIDForOrganizationLocked aynı sorguyu FOR UPDATE kilidi ile yapar.
// Transaction içinde update/delete öncesi çağrılmalıdır. SQLite tek yazarlı
// olduğundan kilit ifadesini desteklemez, orada atlanır.
func (r *VCardRepository) FindByIDForOrganizationLocked(ctx context.Context, id, organizationID uint) (*models.VCard, error) {
	if id == 0 || organizationID == 0 {
		return nil, ErrNotFound
	}
	query := preloadAggregate(r.db.WithContext(ctx))
	if r.db.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var card models.VCard
	err := query.Where("organization_id = ?", organizationID).First(&card, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &card, nil
}

// organizationScope listeleme sorgularının ortak filtrelerini uygular.
func organizationScope(db *gorm.DB, organizationID uint, params queryparams.ListParams) *gorm.DB {
	query := db.Where("organization_id = ?", organizationID)
	if params.Status != "" {
		query = query.Where("publish_status = ?", params.Status)
	}
	if params.Name != "" {
		search := "%" + strings.ToLower(params.Name) + "%"
		query = query.Where("lower(title) LIKE ? OR lower(name) LIKE ?", search, search)
	}
	return query
}

// FindAllForOrganization hafif projeksiyon listesi döndürür;
// updated_at DESC varsayılan sıralamadır.
func (r *VCardRepository) FindAllForOrganization(ctx context.Context, organizationID uint, params queryparams.ListParams) ([]VCardListItem, int64, error) {
	items := []VCardListItem{}
	var totalCount int64

	query := organizationScope(r.db.WithContext(ctx).Model(&models.VCard{}), organizationID, params)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return items, 0, nil
	}

	err := query.
		Select(`v_cards.id, v_cards.slug, v_cards.template_id, v_cards.title, v_cards.name,
			v_cards.publish_status, v_cards.created_at, v_cards.updated_at,
			(SELECT count(*) FROM business_hours WHERE business_hours.v_card_id = v_cards.id) AS business_hour_count,
			(SELECT count(*) FROM service_items WHERE service_items.v_card_id = v_cards.id) AS service_count,
			(SELECT count(*) FROM social_links WHERE social_links.v_card_id = v_cards.id) AS social_link_count,
			(SELECT count(*) FROM testimonials WHERE testimonials.v_card_id = v_cards.id) AS testimonial_count`).
		Order(r.base.SortClause(params, "updated_at")).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Scan(&items).Error
	if err != nil {
		configslog.Log.Error("VCardRepository.FindAllForOrganization: DB error",
			zap.Uint("organization_id", organizationID), zap.Error(err))
		return nil, 0, err
	}
	return items, totalCount, nil
}

// FindAllForOrganizationDetailed tam aggregate listesi döndürür
// (çocuk koleksiyonlarına ihtiyaç duyan çağıranlar için).
func (r *VCardRepository) FindAllForOrganizationDetailed(ctx context.Context, organizationID uint, params queryparams.ListParams) ([]models.VCard, int64, error) {
	cards := []models.VCard{}
	var totalCount int64

	query := organizationScope(r.db.WithContext(ctx).Model(&models.VCard{}), organizationID, params)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return cards, 0, nil
	}

	err := preloadAggregate(query).
		Order(r.base.SortClause(params, "updated_at")).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&cards).Error
	if err != nil {
		configslog.Log.Error("VCardRepository.FindAllForOrganizationDetailed: DB error",
			zap.Uint("organization_id", organizationID), zap.Error(err))
		return nil, 0, err
	}
	return cards, totalCount, nil
}

// CountForOrganization organizasyonun toplam kart sayısını döndürür.
func (r *VCardRepository) CountForOrganization(ctx context.Context, organizationID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VCard{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error
	return count, err
}

// SlugExists slug'ın organizasyondan bağımsız var olup olmadığını söyler.
// Yalnızca bilgilendirici bir ön kontroldür; otorite unique index'tir.
func (r *VCardRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VCard{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// SlugExistsInOrganization editör ön kontrolü: slug bu organizasyonda
// kullanılıyor mu. Yarış penceresi vardır; create/update yine de
// ErrDuplicateKey ile başarısız olabilir.
func (r *VCardRepository) SlugExistsInOrganization(ctx context.Context, slug string, organizationID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VCard{}).
		Where("slug = ? AND organization_id = ?", slug, organizationID).
		Count(&count).Error
	return count > 0, err
}

// UpdateVCard yalnızca kök kaydın skaler alanlarını kaydeder.
// Çocuk koleksiyonlar Replace* metodları ile değiştirilir.
func (r *VCardRepository) UpdateVCard(ctx context.Context, card *models.VCard) error {
	if card == nil || card.ID == 0 {
		return errors.New("güncellenecek kartvizit geçersiz")
	}
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(card).Error)
}

// replaceCollection tek koleksiyonun tamamını değiştirir:
// önce o tipin tüm satırları silinir, sonra verilenler eklenir.
// Çağıranın transaction'ı içinde çalışır; yarım değişim gözlenemez.
func replaceCollection[T any](ctx context.Context, db *gorm.DB, vcardID uint, rows []T) error {
	if vcardID == 0 {
		return errors.New("geçersiz kartvizit ID")
	}
	var model T
	if err := db.WithContext(ctx).Where("v_card_id = ?", vcardID).Delete(&model).Error; err != nil {
		return translateError(err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *VCardRepository) ReplaceBusinessHours(ctx context.Context, vcardID uint, rows []models.BusinessHour) error {
	for i := range rows {
		rows[i].ID = 0
		rows[i].VCardID = vcardID
	}
	return replaceCollection(ctx, r.db, vcardID, rows)
}

func (r *VCardRepository) ReplaceServices(ctx context.Context, vcardID uint, rows []models.ServiceItem) error {
	for i := range rows {
		rows[i].ID = 0
		rows[i].VCardID = vcardID
	}
	return replaceCollection(ctx, r.db, vcardID, rows)
}

func (r *VCardRepository) ReplaceSocialLinks(ctx context.Context, vcardID uint, rows []models.SocialLink) error {
	for i := range rows {
		rows[i].ID = 0
		rows[i].VCardID = vcardID
	}
	return replaceCollection(ctx, r.db, vcardID, rows)
}

func (r *VCardRepository) ReplaceTestimonials(ctx context.Context, vcardID uint, rows []models.Testimonial) error {
	for i := range rows {
		rows[i].ID = 0
		rows[i].VCardID = vcardID
	}
	return replaceCollection(ctx, r.db, vcardID, rows)
}

// DeleteVCard kök kaydı ve dört çocuk koleksiyonunu siler.
// FK'lerde cascade tanımlı olsa da silme burada açıkça yapılır ki davranış
// sürücüden bağımsız deterministik olsun.
func (r *VCardRepository) DeleteVCard(ctx context.Context, card *models.VCard) error {
	if card == nil || card.ID == 0 {
		return errors.New("silinecek kartvizit geçersiz")
	}
	db := r.db.WithContext(ctx)
	if err := db.Where("v_card_id = ?", card.ID).Delete(&models.BusinessHour{}).Error; err != nil {
		return translateError(err)
	}
	if err := db.Where("v_card_id = ?", card.ID).Delete(&models.ServiceItem{}).Error; err != nil {
		return translateError(err)
	}
	if err := db.Where("v_card_id = ?", card.ID).Delete(&models.SocialLink{}).Error; err != nil {
		return translateError(err)
	}
	if err := db.Where("v_card_id = ?", card.ID).Delete(&models.Testimonial{}).Error; err != nil {
		return translateError(err)
	}
	return translateError(db.Delete(&models.VCard{}, card.ID).Error)
}

// FindPublishedBySlug tenant kapsamı OLMAYAN tek sorgudur: public
// çözümleme için slug ile yalnızca PUBLISHED kaydı bulur.
func (r *VCardRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.VCard, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var card models.VCard
	err := preloadAggregate(r.db.WithContext(ctx)).
		Where("slug = ? AND publish_status = ?", slug, models.PublishStatusPublished).
		First(&card).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &card, nil
}

var _ IVCardRepository = (*VCardRepository)(nil)
