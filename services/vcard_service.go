package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vkart.link/configs/configsdatabase"
	"vkart.link/configs/configslog"
	"vkart.link/models"
	"vkart.link/pkg/queryparams"
	"vkart.link/repositories"
	"vkart.link/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// VCardServiceError özel servis hataları
type VCardServiceError string

func (e VCardServiceError) Error() string { return string(e) }

const (
	ErrVCardNotFound       VCardServiceError = "kartvizit bulunamadı"
	ErrVCardSlugTaken      VCardServiceError = "bu slug zaten kullanımda"
	ErrVCardInvalidInput   VCardServiceError = "geçersiz girdi verisi"
	ErrVCardCreationFailed VCardServiceError = "kartvizit oluşturulamadı"
	ErrVCardUpdateFailed   VCardServiceError = "kartvizit güncellenemedi"
	ErrVCardDeletionFailed VCardServiceError = "kartvizit silinemedi"
	ErrVCardFontNotFound   VCardServiceError = "seçilen font bulunamadı"
	ErrVCardPasswordFailed VCardServiceError = "erişim şifresi oluşturulamadı"
)

// CreateVCardInput yeni kartvizit girdisi. Çocuk koleksiyonlar opsiyoneldir;
// verilmeyenler boş koleksiyon olarak başlar.
type CreateVCardInput struct {
	Slug       string `json:"slug"`
	TemplateID string `json:"templateId"`
	Title      string `json:"title"`
	Name       string `json:"name"`

	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	Banner   string `json:"banner"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	Address  string `json:"address"`

	ThemeConfig *models.ThemeConfig `json:"themeConfig"`
	FontID      *uint               `json:"fontId"`

	// Boş bırakılırsa DRAFT başlar.
	PublishStatus string `json:"publishStatus"`

	BusinessHours []models.BusinessHour `json:"businessHours"`
	Services      []models.ServiceItem  `json:"services"`
	SocialLinks   []models.SocialLink   `json:"socialLinks"`
	Testimonials  []models.Testimonial  `json:"testimonials"`
}

// UpdateVCardInput kısmi güncelleme girdisi. Skaler alanlarda nil pointer
// "dokunma" demektir. Çocuk koleksiyonlarda nil "dokunma", boş slice
// "tamamını sil" demektir; dolu slice koleksiyonun tamamını değiştirir.
type UpdateVCardInput struct {
	Slug       *string `json:"slug"`
	TemplateID *string `json:"templateId"`
	Title      *string `json:"title"`
	Name       *string `json:"name"`

	JobTitle *string `json:"jobTitle"`
	Company  *string `json:"company"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
	Banner   *string `json:"banner"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Website  *string `json:"website"`
	Address  *string `json:"address"`

	ThemeConfig *models.ThemeConfig `json:"themeConfig"`
	// FontID 0 verilirse font bağlantısı kaldırılır.
	FontID *uint `json:"fontId"`

	BusinessHours *[]models.BusinessHour `json:"businessHours"`
	Services      *[]models.ServiceItem  `json:"services"`
	SocialLinks   *[]models.SocialLink   `json:"socialLinks"`
	Testimonials  *[]models.Testimonial  `json:"testimonials"`
}

// IVCardService kartvizit aggregate'inin tüm işlemleri. Tenant kapsamlı
// operasyonlar organizationId'yi koşul olarak taşır; ResolvePublicVCard
// tek kapsamsız okumadır.
type IVCardService interface {
	CreateVCard(ctx context.Context, organizationID uint, input CreateVCardInput) (*models.VCard, error)
	GetVCardByID(ctx context.Context, id, organizationID uint) (*models.VCard, error)
	GetVCardsForOrganization(ctx context.Context, organizationID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetVCardsForOrganizationDetailed(ctx context.Context, organizationID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetVCardCountForOrganization(ctx context.Context, organizationID uint) (int64, error)
	IsSlugTakenInOrganization(ctx context.Context, slug string, organizationID uint) (bool, error)
	SuggestSlug(ctx context.Context, slug string) (string, error)
	UpdateVCard(ctx context.Context, id, organizationID uint, input UpdateVCardInput) (*models.VCard, error)
	DeleteVCard(ctx context.Context, id, organizationID uint) (*models.VCard, error)
	PublishVCard(ctx context.Context, id, organizationID uint) (*models.VCard, error)
	UnpublishVCard(ctx context.Context, id, organizationID uint) (*models.VCard, error)
	SetAccessPassword(ctx context.Context, id, organizationID uint, plainPassword string) error
	VerifyAccessPassword(card *models.VCard, plainPassword string) bool
	ResolvePublicVCard(ctx context.Context, slug string) (*models.VCard, error)
}

// VCardService IVCardService arayüzünü uygular.
type VCardService struct {
	repo     repositories.IVCardRepository
	fontRepo repositories.IFontRepository
	db       *gorm.DB
}

// NewVCardService yeni bir VCardService örneği oluşturur.
func NewVCardService() IVCardService {
	return NewVCardServiceWithDB(configsdatabase.GetDB())
}

// NewVCardServiceWithDB verilen bağlantı ile servis oluşturur (testler için).
func NewVCardServiceWithDB(db *gorm.DB) IVCardService {
	return &VCardService{
		repo:     repositories.NewVCardRepositoryTx(db),
		fontRepo: repositories.NewFontRepositoryTx(db),
		db:       db,
	}
}

// --- Validasyon ---

// ValidateCreateVCardInput zorunlu kök alanları ve slug karakter setini doğrular.
func ValidateCreateVCardInput(input CreateVCardInput) error {
	if input.Slug == "" || input.TemplateID == "" || input.Title == "" || input.Name == "" {
		return fmt.Errorf("%w: slug, templateId, title ve name zorunludur", ErrVCardInvalidInput)
	}
	if !utils.IsValidSlug(utils.NormalizeSlug(input.Slug)) {
		return fmt.Errorf("%w: slug URL-güvenli değil", ErrVCardInvalidInput)
	}
	switch input.PublishStatus {
	case "", models.PublishStatusDraft, models.PublishStatusPublished:
	default:
		return fmt.Errorf("%w: geçersiz yayın durumu '%s'", ErrVCardInvalidInput, input.PublishStatus)
	}
	return validateBusinessHours(input.BusinessHours)
}

// validateBusinessHours gün tokenlarını doğrular. Aynı güne birden fazla
// satır bilinçli olarak serbesttir.
func validateBusinessHours(hours []models.BusinessHour) error {
	for _, h := range hours {
		if !models.IsValidWeekday(h.Day) {
			return fmt.Errorf("%w: geçersiz gün '%s'", ErrVCardInvalidInput, h.Day)
		}
	}
	return nil
}

// translateRepoError repository sentinel'lerini servis hatalarına çevirir.
func translateRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return ErrVCardNotFound
	case errors.Is(err, repositories.ErrDuplicateKey):
		return ErrVCardSlugTaken
	default:
		return err
	}
}

// resolveFont fontId verilmişse varlığını doğrular.
func (s *VCardService) resolveFont(ctx context.Context, fontID *uint) (*models.Font, error) {
	if fontID == nil || *fontID == 0 {
		return nil, nil
	}
	font, err := s.fontRepo.FindByID(ctx, *fontID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVCardFontNotFound
		}
		return nil, err
	}
	return font, nil
}

// --- Servis Metodları ---

// CreateVCard kök kaydı ve verilen çocuk koleksiyonlarını TEK transaction
// içinde oluşturur. Dönen aggregate'te dört koleksiyon da mevcuttur
// (verilmeyenler boş). Slug çakışması ErrVCardSlugTaken döner; otorite
// veritabanındaki global unique index'tir, ön kontrol yapılmaz.
func (s *VCardService) CreateVCard(ctx context.Context, organizationID uint, input CreateVCardInput) (*models.VCard, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("%w: geçersiz organizasyon ID", ErrVCardInvalidInput)
	}
	if err := ValidateCreateVCardInput(input); err != nil {
		return nil, err
	}

	font, err := s.resolveFont(ctx, input.FontID)
	if err != nil {
		return nil, err
	}

	status := input.PublishStatus
	if status == "" {
		status = models.PublishStatusDraft
	}

	card := models.VCard{
		OrganizationID: organizationID,
		Slug:           utils.NormalizeSlug(input.Slug),
		TemplateID:     input.TemplateID,
		Title:          input.Title,
		Name:           input.Name,
		JobTitle:       input.JobTitle,
		Company:        input.Company,
		Bio:            input.Bio,
		Avatar:         input.Avatar,
		Banner:         input.Banner,
		Phone:          input.Phone,
		Email:          input.Email,
		Website:        input.Website,
		Address:        input.Address,
		FontID:         input.FontID,
		PublishStatus:  status,
		BusinessHours:  input.BusinessHours,
		Services:       input.Services,
		SocialLinks:    input.SocialLinks,
		Testimonials:   input.Testimonials,
	}
	if font == nil {
		card.FontID = nil
	}
	if input.ThemeConfig != nil {
		card.ThemeConfig = input.ThemeConfig.MarshalBytes()
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewVCardRepositoryTx(tx)
		if err := repoTx.CreateVCard(ctx, &card); err != nil {
			return translateRepoError(err)
		}
		return nil
	})
	if txErr != nil {
		if !errors.Is(txErr, ErrVCardSlugTaken) {
			configslog.Log.Error("CreateVCard: transaction hatası",
				zap.Uint("organization_id", organizationID), zap.String("slug", card.Slug), zap.Error(txErr))
		}
		return nil, txErr
	}

	hydrateAggregate(&card)
	card.Font = font
	configslog.SLog.Infof("Kartvizit oluşturuldu: ID %d, slug '%s', org %d", card.ID, card.Slug, organizationID)
	return &card, nil
}

// GetVCardByID kaydı tenant kapsamında getirir. Başka organizasyonun
// kaydı için ErrVCardNotFound döner, veri asla sızmaz.
func (s *VCardService) GetVCardByID(ctx context.Context, id, organizationID uint) (*models.VCard, error) {
	card, err := s.repo.FindByIDForOrganization(ctx, id, organizationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVCardNotFound
		}
		configslog.Log.Error("GetVCardByID: repo hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	hydrateAggregate(card)
	return card, nil
}

// GetVCardsForOrganization hafif projeksiyon listesini sayfalayarak döndürür.
func (s *VCardService) GetVCardsForOrganization(ctx context.Context, organizationID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("%w: geçersiz organizasyon ID", ErrVCardInvalidInput)
	}
	normalizeListParams(&params)

	items, totalCount, err := s.repo.FindAllForOrganization(ctx, organizationID, params)
	if err != nil {
		configslog.Log.Error("Organizasyon kartvizitleri listelenirken hata",
			zap.Uint("organization_id", organizationID), zap.Error(err))
		return nil, err
	}
	return paginated(items, totalCount, params), nil
}

// GetVCardsForOrganizationDetailed tam aggregate listesi döndürür;
// tüm çocuk koleksiyonlara ihtiyaç duyan çağıranlar içindir.
func (s *VCardService) GetVCardsForOrganizationDetailed(ctx context.Context, organizationID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("%w: geçersiz organizasyon ID", ErrVCardInvalidInput)
	}
	normalizeListParams(&params)

	cards, totalCount, err := s.repo.FindAllForOrganizationDetailed(ctx, organizationID, params)
	if err != nil {
		configslog.Log.Error("Organizasyon kartvizitleri (detaylı) listelenirken hata",
			zap.Uint("organization_id", organizationID), zap.Error(err))
		return nil, err
	}
	for i := range cards {
		hydrateAggregate(&cards[i])
	}
	return paginated(cards, totalCount, params), nil
}

// GetVCardCountForOrganization organizasyonun toplam kart sayısını döndürür.
func (s *VCardService) GetVCardCountForOrganization(ctx context.Context, organizationID uint) (int64, error) {
	return s.repo.CountForOrganization(ctx, organizationID)
}

// IsSlugTakenInOrganization editörler için bilgilendirici ön kontroldür.
// "Müsait" cevabı garanti değildir: create/update anına kadar başka bir
// yazar slug'ı alabilir, çağıran ErrVCardSlugTaken'a yine de hazır olmalı.
func (s *VCardService) IsSlugTakenInOrganization(ctx context.Context, slug string, organizationID uint) (bool, error) {
	slug = utils.NormalizeSlug(slug)
	if slug == "" || organizationID == 0 {
		return false, fmt.Errorf("%w: slug ve organizasyon ID zorunlu", ErrVCardInvalidInput)
	}
	return s.repo.SlugExistsInOrganization(ctx, slug, organizationID)
}

// SuggestSlug alınmış bir slug için müsait bir alternatif önerir:
// taban + rastgele ek. Öneri globaldir (unique index de global) ama
// garantisi yoktur; create anında yine de ErrVCardSlugTaken dönebilir.
func (s *VCardService) SuggestSlug(ctx context.Context, slug string) (string, error) {
	base := utils.NormalizeSlug(slug)
	if !utils.IsValidSlug(base) {
		return "", fmt.Errorf("%w: slug URL-güvenli değil", ErrVCardInvalidInput)
	}
	// Ek ile birlikte uzunluk sınırı aşılmamalı.
	if len(base) > utils.SlugMaxLength-7 {
		base = strings.TrimRight(base[:utils.SlugMaxLength-7], "-_")
	}

	for attempt := 0; attempt < 5; attempt++ {
		suffix, err := utils.GenerateSlugSuffix(6)
		if err != nil {
			return "", err
		}
		candidate := base + "-" + suffix
		taken, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrVCardSlugTaken
}

// UpdateVCard skaler alanları ve verilen çocuk koleksiyonlarını TEK
// transaction içinde günceller. Girdide mevcut olan her koleksiyon (boş
// olsa bile) öncekinin tamamının yerine geçer; verilmeyenlere dokunulmaz.
func (s *VCardService) UpdateVCard(ctx context.Context, id, organizationID uint, input UpdateVCardInput) (*models.VCard, error) {
	if id == 0 || organizationID == 0 {
		return nil, fmt.Errorf("%w: geçersiz ID veya organizasyon ID", ErrVCardInvalidInput)
	}
	if input.BusinessHours != nil {
		if err := validateBusinessHours(*input.BusinessHours); err != nil {
			return nil, err
		}
	}

	var updated *models.VCard
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewVCardRepositoryTx(tx)
		fontRepoTx := repositories.NewFontRepositoryTx(tx)

		// Kaydı kilitli al; organizasyon eşleşmezse ErrNotFound gelir.
		card, err := repoTx.FindByIDForOrganizationLocked(ctx, id, organizationID)
		if err != nil {
			return translateRepoError(err)
		}

		if err := applyScalarPatch(card, input); err != nil {
			return err
		}

		if input.FontID != nil {
			if *input.FontID == 0 {
				card.FontID = nil
				card.Font = nil
			} else {
				font, fontErr := fontRepoTx.FindByID(ctx, *input.FontID)
				if fontErr != nil {
					if errors.Is(fontErr, repositories.ErrNotFound) {
						return ErrVCardFontNotFound
					}
					return fontErr
				}
				card.FontID = input.FontID
				card.Font = font
			}
		}

		if err := repoTx.UpdateVCard(ctx, card); err != nil {
			return translateRepoError(err)
		}

		// Koleksiyon değişimleri: her biri tek "replace" işlemidir ve
		// hepsi bu transaction'ın içinde kalır.
		if input.BusinessHours != nil {
			if err := repoTx.ReplaceBusinessHours(ctx, card.ID, *input.BusinessHours); err != nil {
				return translateRepoError(err)
			}
		}
		if input.Services != nil {
			if err := repoTx.ReplaceServices(ctx, card.ID, *input.Services); err != nil {
				return translateRepoError(err)
			}
		}
		if input.SocialLinks != nil {
			if err := repoTx.ReplaceSocialLinks(ctx, card.ID, *input.SocialLinks); err != nil {
				return translateRepoError(err)
			}
		}
		if input.Testimonials != nil {
			if err := repoTx.ReplaceTestimonials(ctx, card.ID, *input.Testimonials); err != nil {
				return translateRepoError(err)
			}
		}

		// Hydrate edilmiş sonucu aynı transaction'dan oku.
		updated, err = repoTx.FindByIDForOrganization(ctx, id, organizationID)
		if err != nil {
			return translateRepoError(err)
		}
		return nil
	})
	if txErr != nil {
		if !errors.Is(txErr, ErrVCardNotFound) && !errors.Is(txErr, ErrVCardSlugTaken) &&
			!errors.Is(txErr, ErrVCardInvalidInput) && !errors.Is(txErr, ErrVCardFontNotFound) {
			configslog.Log.Error("UpdateVCard: transaction hatası", zap.Uint("id", id), zap.Error(txErr))
		}
		return nil, txErr
	}

	hydrateAggregate(updated)
	configslog.SLog.Infof("Kartvizit güncellendi: ID %d", id)
	return updated, nil
}

// DeleteVCard kaydı ve dört çocuk koleksiyonunu tek transaction içinde
// siler; silinen aggregate'i döndürür.
func (s *VCardService) DeleteVCard(ctx context.Context, id, organizationID uint) (*models.VCard, error) {
	if id == 0 || organizationID == 0 {
		return nil, fmt.Errorf("%w: geçersiz ID veya organizasyon ID", ErrVCardInvalidInput)
	}

	var removed *models.VCard
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewVCardRepositoryTx(tx)

		card, err := repoTx.FindByIDForOrganizationLocked(ctx, id, organizationID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := repoTx.DeleteVCard(ctx, card); err != nil {
			configslog.Log.Error("Kartvizit silinirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrVCardDeletionFailed
		}
		removed = card
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	hydrateAggregate(removed)
	configslog.SLog.Infof("Kartvizit silindi: ID %d", id)
	return removed, nil
}

// setPublishStatus DRAFT<->PUBLISHED geçişlerinin ortak gövdesi.
// Hedef duruma zaten ulaşılmışsa işlem idempotenttir, hata dönmez.
func (s *VCardService) setPublishStatus(ctx context.Context, id, organizationID uint, status string) (*models.VCard, error) {
	if id == 0 || organizationID == 0 {
		return nil, fmt.Errorf("%w: geçersiz ID veya organizasyon ID", ErrVCardInvalidInput)
	}

	var result *models.VCard
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewVCardRepositoryTx(tx)

		card, err := repoTx.FindByIDForOrganizationLocked(ctx, id, organizationID)
		if err != nil {
			return translateRepoError(err)
		}
		if card.PublishStatus == status {
			result = card
			return nil
		}
		card.PublishStatus = status
		if err := repoTx.UpdateVCard(ctx, card); err != nil {
			return translateRepoError(err)
		}
		result = card
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	hydrateAggregate(result)
	return result, nil
}

// PublishVCard kartı PUBLISHED durumuna geçirir; public slug çözümlemesi
// bu andan itibaren kartı görür.
func (s *VCardService) PublishVCard(ctx context.Context, id, organizationID uint) (*models.VCard, error) {
	card, err := s.setPublishStatus(ctx, id, organizationID, models.PublishStatusPublished)
	if err != nil {
		return nil, err
	}
	configslog.SLog.Infof("Kartvizit yayınlandı: ID %d, slug '%s'", card.ID, card.Slug)
	return card, nil
}

// UnpublishVCard kartı DRAFT durumuna geri alır; public çözümleme artık
// kartı bilinmeyen slug'dan ayırt edilemez şekilde bulamaz.
func (s *VCardService) UnpublishVCard(ctx context.Context, id, organizationID uint) (*models.VCard, error) {
	card, err := s.setPublishStatus(ctx, id, organizationID, models.PublishStatusDraft)
	if err != nil {
		return nil, err
	}
	configslog.SLog.Infof("Kartvizit yayından kaldırıldı: ID %d, slug '%s'", card.ID, card.Slug)
	return card, nil
}

// SetAccessPassword public sayfa için opsiyonel erişim şifresini ayarlar.
// Boş şifre korumayı kaldırır.
func (s *VCardService) SetAccessPassword(ctx context.Context, id, organizationID uint, plainPassword string) error {
	if id == 0 || organizationID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya organizasyon ID", ErrVCardInvalidInput)
	}

	hash := ""
	if plainPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
		if err != nil {
			return ErrVCardPasswordFailed
		}
		hash = string(hashed)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewVCardRepositoryTx(tx)
		card, err := repoTx.FindByIDForOrganizationLocked(ctx, id, organizationID)
		if err != nil {
			return translateRepoError(err)
		}
		card.AccessPasswordHash = hash
		return translateRepoError(repoTx.UpdateVCard(ctx, card))
	})
}

// VerifyAccessPassword public sayfadaki şifre denemesini doğrular.
// Şifresiz kartlar her zaman erişilebilir.
func (s *VCardService) VerifyAccessPassword(card *models.VCard, plainPassword string) bool {
	if card == nil {
		return false
	}
	if !card.HasAccessPassword() {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(card.AccessPasswordHash), []byte(plainPassword)) == nil
}

// ResolvePublicVCard public slug çözümlemesidir: tenant parametresi yoktur,
// yalnızca PUBLISHED kayıtlar bulunur. Var olmayan slug ile DRAFT kartın
// slug'ı çağırana aynı ErrVCardNotFound olarak görünür.
func (s *VCardService) ResolvePublicVCard(ctx context.Context, slug string) (*models.VCard, error) {
	slug = utils.NormalizeSlug(slug)
	if slug == "" {
		return nil, ErrVCardNotFound
	}
	card, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVCardNotFound
		}
		configslog.Log.Error("ResolvePublicVCard: repo hatası", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	hydrateAggregate(card)
	return card, nil
}

// --- Yardımcılar ---

// applyScalarPatch nil olmayan pointer alanları kök kayda uygular.
// OrganizationID değiştirilemez.
func applyScalarPatch(card *models.VCard, input UpdateVCardInput) error {
	if input.Slug != nil {
		slug := utils.NormalizeSlug(*input.Slug)
		if !utils.IsValidSlug(slug) {
			return fmt.Errorf("%w: slug URL-güvenli değil", ErrVCardInvalidInput)
		}
		card.Slug = slug
	}
	if input.TemplateID != nil {
		if *input.TemplateID == "" {
			return fmt.Errorf("%w: templateId boş olamaz", ErrVCardInvalidInput)
		}
		card.TemplateID = *input.TemplateID
	}
	if input.Title != nil {
		if *input.Title == "" {
			return fmt.Errorf("%w: title boş olamaz", ErrVCardInvalidInput)
		}
		card.Title = *input.Title
	}
	if input.Name != nil {
		if *input.Name == "" {
			return fmt.Errorf("%w: name boş olamaz", ErrVCardInvalidInput)
		}
		card.Name = *input.Name
	}
	if input.JobTitle != nil {
		card.JobTitle = *input.JobTitle
	}
	if input.Company != nil {
		card.Company = *input.Company
	}
	if input.Bio != nil {
		card.Bio = *input.Bio
	}
	if input.Avatar != nil {
		card.Avatar = *input.Avatar
	}
	if input.Banner != nil {
		card.Banner = *input.Banner
	}
	if input.Phone != nil {
		card.Phone = *input.Phone
	}
	if input.Email != nil {
		card.Email = *input.Email
	}
	if input.Website != nil {
		card.Website = *input.Website
	}
	if input.Address != nil {
		card.Address = *input.Address
	}
	if input.ThemeConfig != nil {
		card.ThemeConfig = input.ThemeConfig.MarshalBytes()
	}
	return nil
}

// hydrateAggregate nil çocuk slice'larını boş koleksiyona çevirir:
// dönen aggregate'te dört koleksiyon her zaman mevcuttur.
func hydrateAggregate(card *models.VCard) {
	if card == nil {
		return
	}
	if card.BusinessHours == nil {
		card.BusinessHours = []models.BusinessHour{}
	}
	if card.Services == nil {
		card.Services = []models.ServiceItem{}
	}
	if card.SocialLinks == nil {
		card.SocialLinks = []models.SocialLink{}
	}
	if card.Testimonials == nil {
		card.Testimonials = []models.Testimonial{}
	}
}

// normalizeListParams sayfalama/sıralama varsayılanlarını uygular.
// Spesifik varsayılan: updated_at DESC.
func normalizeListParams(params *queryparams.ListParams) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "updated_at"
	}
}

// paginated sonuç + meta zarfını kurar.
func paginated(data interface{}, totalCount int64, params queryparams.ListParams) *queryparams.PaginatedResult {
	return &queryparams.PaginatedResult{
		Data: data,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}
}

var _ IVCardService = (*VCardService)(nil)
