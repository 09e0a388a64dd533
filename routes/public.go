package routes

import (
	publichandlers "vkart.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes public kart sayfasını (örn. /acme-dijital) yönetecek
// rotayı tanımlar. :slug catch-all olduğundan en son kayıt edilmelidir.
func registerPublicRoutes(app *fiber.App) {
	publicHandler := publichandlers.NewPublicCardHandler()

	app.Get("/:slug", publicHandler.HandleCard)
	// Şifreli kartlarda form POST ile deneme yapılır.
	app.Post("/:slug", publicHandler.HandleCard)
}
