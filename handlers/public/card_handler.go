package handlers // handlers/public paketi

import (
	"errors"

	"vkart.link/configs/configslog"
	"vkart.link/pkg/cardpage"
	"vkart.link/pkg/themes"
	"vkart.link/services"
	"vkart.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicCardHandler public slug isteklerini yönetir: slug -> yayımlanmış
// aggregate -> statik HTML. Tenant parametresi yoktur.
type PublicCardHandler struct {
	cardService services.IVCardService
}

// NewPublicCardHandler yeni bir PublicCardHandler örneği oluşturur.
func NewPublicCardHandler() *PublicCardHandler {
	return &PublicCardHandler{cardService: services.NewVCardService()}
}

// HandleCard gelen :slug parametresi için kart sayfasını döndürür.
// Var olmayan slug ile DRAFT kartın slug'ı aynı 404 sayfasını üretir;
// yayımlanmamış kartların varlığı dışarı sızmaz.
func (h *PublicCardHandler) HandleCard(c *fiber.Ctx) error {
	slug := utils.NormalizeSlug(c.Params("slug"))
	if !utils.IsValidSlug(slug) {
		return h.renderNotFound(c)
	}

	card, err := h.cardService.ResolvePublicVCard(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrVCardNotFound) {
			return h.renderNotFound(c)
		}
		configslog.Log.Error("HandleCard: ResolvePublicVCard hatası", zap.String("slug", slug), zap.Error(err))
		return h.renderError(c)
	}

	// Opsiyonel erişim şifresi: yanlış/eksik denemede şifre formu gösterilir.
	if card.HasAccessPassword() {
		attempt := c.FormValue("pw", c.Query("pw"))
		if !h.cardService.VerifyAccessPassword(card, attempt) {
			return c.Status(fiber.StatusUnauthorized).Render("public/password", fiber.Map{
				"Title": card.Title,
				"Slug":  slug,
			})
		}
	}

	theme := themes.Get(card.TemplateID)
	doc := cardpage.Render(card, theme)

	// Çıktı deterministik olduğu için içerik özeti ETag olarak kullanılabilir.
	etag := `"` + cardpage.ContentHash(card) + `"`
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderETag, etag)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}

// renderNotFound standart 404 sayfasını render eder.
func (h *PublicCardHandler) renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": "Aradığınız kartvizit bulunamadı.",
	}, "layouts/error_layout")
}

// renderError standart 500 hata sayfasını render eder.
func (h *PublicCardHandler) renderError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": "Kartvizit yüklenirken bir sorun oluştu.",
	}, "layouts/error_layout")
}
