package handlers

import (
	"errors"

	"vkart.link/configs/configslog"
	"vkart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FontHandler editörün seçebileceği fontları listeler.
type FontHandler struct {
	service services.IFontService
}

// NewFontHandler yeni bir FontHandler örneği oluşturur.
func NewFontHandler() *FontHandler {
	return &FontHandler{service: services.NewFontService()}
}

// ListFonts seed edilmiş fontları döndürür. GET /api/v1/fonts
func (h *FontHandler) ListFonts(c *fiber.Ctx) error {
	fonts, err := h.service.GetAllFonts(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListFonts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "fontlar listelenemedi"})
	}
	return c.JSON(fiber.Map{"data": fonts})
}

// GetFont tek fontu getirir. GET /api/v1/fonts/:id
func (h *FontHandler) GetFont(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	font, err := h.service.GetFontByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrFontNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - GetFont", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "font getirilemedi"})
	}
	return c.JSON(font)
}
