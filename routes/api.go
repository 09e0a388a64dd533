package routes

import (
	"strconv"

	apihandlers "vkart.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// requireOrganization tenant kimliğini isteğe bağlar. organizationId üst
// katmandaki auth gateway'i tarafından doğrulanmış kabul edilir ve
// X-Organization-ID başlığı ile taşınır; çekirdek bu değere güvenir ve
// ayrıca yetkilendirme yapmaz.
func requireOrganization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("X-Organization-ID")
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "organizasyon bilgisi eksik"})
		}
		orgID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || orgID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "geçersiz organizasyon kimliği"})
		}
		c.Locals("organizationID", uint(orgID))
		return c.Next()
	}
}

// registerAPIRoutes authoring JSON API rotalarını tanımlar.
func registerAPIRoutes(app *fiber.App) {
	vcardHandler := apihandlers.NewVCardHandler()
	fontHandler := apihandlers.NewFontHandler()

	api := app.Group("/api/v1", requireOrganization())

	api.Get("/fonts", fontHandler.ListFonts)
	api.Get("/fonts/:id", fontHandler.GetFont)

	api.Post("/vcards", vcardHandler.CreateVCard)
	api.Get("/vcards", vcardHandler.ListVCards)
	api.Get("/vcards/detailed", vcardHandler.ListVCardsDetailed)
	api.Get("/vcards/count", vcardHandler.CountVCards)
	api.Get("/vcards/slug-available", vcardHandler.CheckSlug)
	api.Get("/vcards/:id", vcardHandler.GetVCard)
	api.Put("/vcards/:id", vcardHandler.UpdateVCard)
	api.Delete("/vcards/:id", vcardHandler.DeleteVCard)
	api.Post("/vcards/:id/publish", vcardHandler.PublishVCard)
	api.Post("/vcards/:id/unpublish", vcardHandler.UnpublishVCard)
	api.Put("/vcards/:id/password", vcardHandler.SetAccessPassword)
}
