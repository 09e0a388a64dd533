package handlers // handlers/api paketi

import (
	"context"
	"errors"

	"vkart.link/configs/configslog"
	"vkart.link/models"
	"vkart.link/pkg/queryparams"
	"vkart.link/services"
	"vkart.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VCardHandler organizasyonun kendi kartvizitleri için JSON API handler'ı.
// organizationID üst katmandaki güvenilir gateway tarafından doğrulanıp
// locals'a konur; burada ayrıca yetki kontrolü yapılmaz.
type VCardHandler struct {
	service services.IVCardService
}

// NewVCardHandler yeni bir VCardHandler örneği oluşturur.
func NewVCardHandler() *VCardHandler {
	return &VCardHandler{service: services.NewVCardService()}
}

// organizationID locals'tan tenant kimliğini okur.
func organizationID(c *fiber.Ctx) (uint, bool) {
	orgID, ok := c.Locals("organizationID").(uint)
	return orgID, ok && orgID != 0
}

// statusForError servis hatasını HTTP durum koduna çevirir.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrVCardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrVCardSlugTaken):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrVCardFontNotFound):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrVCardInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError hata zarfını yazar. Beklenmeyen hatalarda detay sızdırılmaz.
func respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "beklenmeyen bir hata oluştu"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// CreateVCard yeni kartvizit oluşturur. POST /api/v1/vcards
func (h *VCardHandler) CreateVCard(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}

	var input services.CreateVCardInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi: " + err.Error()})
	}

	card, err := h.service.CreateVCard(c.UserContext(), orgID, input)
	if err != nil {
		if statusForError(err) == fiber.StatusInternalServerError {
			configslog.Log.Error("API - CreateVCard", zap.Uint("organization_id", orgID), zap.Error(err))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// ListVCards hafif projeksiyon listesini döndürür. GET /api/v1/vcards
func (h *VCardHandler) ListVCards(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API - ListVCards: query parse hatası", zap.Error(err))
		params = queryparams.DefaultListParams("updated_at")
	}

	result, err := h.service.GetVCardsForOrganization(c.UserContext(), orgID, params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ListVCardsDetailed tam aggregate listesini döndürür. GET /api/v1/vcards/detailed
func (h *VCardHandler) ListVCardsDetailed(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("updated_at")
	}

	result, err := h.service.GetVCardsForOrganizationDetailed(c.UserContext(), orgID, params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetVCard tek kartviziti getirir. GET /api/v1/vcards/:id
func (h *VCardHandler) GetVCard(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	card, err := h.service.GetVCardByID(c.UserContext(), uint(id), orgID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(card)
}

// UpdateVCard kısmi güncelleme yapar; gövdede bulunan her çocuk koleksiyon
// (boş dizi dahil) öncekinin tamamının yerine geçer. PUT /api/v1/vcards/:id
func (h *VCardHandler) UpdateVCard(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	var input services.UpdateVCardInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi: " + err.Error()})
	}

	card, err := h.service.UpdateVCard(c.UserContext(), uint(id), orgID, input)
	if err != nil {
		if statusForError(err) == fiber.StatusInternalServerError {
			configslog.Log.Error("API - UpdateVCard", zap.Int("id", id), zap.Error(err))
		}
		return respondError(c, err)
	}
	return c.JSON(card)
}

// DeleteVCard kartviziti ve çocuklarını siler. DELETE /api/v1/vcards/:id
func (h *VCardHandler) DeleteVCard(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	card, err := h.service.DeleteVCard(c.UserContext(), uint(id), orgID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(card)
}

// PublishVCard kartı yayınlar. POST /api/v1/vcards/:id/publish
func (h *VCardHandler) PublishVCard(c *fiber.Ctx) error {
	return h.transition(c, h.service.PublishVCard)
}

// UnpublishVCard kartı yayından kaldırır. POST /api/v1/vcards/:id/unpublish
func (h *VCardHandler) UnpublishVCard(c *fiber.Ctx) error {
	return h.transition(c, h.service.UnpublishVCard)
}

// transition publish/unpublish geçişlerinin ortak gövdesi.
func (h *VCardHandler) transition(c *fiber.Ctx, fn func(ctx context.Context, id, organizationID uint) (*models.VCard, error)) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	card, err := fn(c.UserContext(), uint(id), orgID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(card)
}

// SetAccessPassword public sayfanın erişim şifresini ayarlar veya kaldırır.
// PUT /api/v1/vcards/:id/password
func (h *VCardHandler) SetAccessPassword(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	if err := h.service.SetAccessPassword(c.UserContext(), uint(id), orgID, body.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// CheckSlug editör için bilgilendirici slug kontrolü.
// "available: true" cevabı garanti değildir; create/update anında başka
// bir yazar slug'ı almış olabilir. GET /api/v1/vcards/slug-available?slug=...
func (h *VCardHandler) CheckSlug(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}
	slug := utils.NormalizeSlug(c.Query("slug"))
	if !utils.IsValidSlug(slug) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slug URL-güvenli değil"})
	}

	taken, err := h.service.IsSlugTakenInOrganization(c.UserContext(), slug, orgID)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{"slug": slug, "available": !taken}
	if taken {
		// Alınmışsa müsait bir alternatif önerilir. Öneri üretilemezse
		// cevap önerisiz döner, istek başarısız sayılmaz.
		if suggestion, sErr := h.service.SuggestSlug(c.UserContext(), slug); sErr == nil {
			resp["suggestion"] = suggestion
		}
	}
	return c.JSON(resp)
}

// CountVCards organizasyonun toplam kart sayısını döndürür.
// GET /api/v1/vcards/count
func (h *VCardHandler) CountVCards(c *fiber.Ctx) error {
	orgID, ok := organizationID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
	}

	count, err := h.service.GetVCardCountForOrganization(c.UserContext(), orgID)
	if err != nil {
		configslog.Log.Error("API - CountVCards", zap.Uint("organization_id", orgID), zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}
