package routes

import (
	link_handlers "kart.link/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerPublicCardRoutes public kart rotalarını tanımlar. Giriş gerekmez.
func registerPublicCardRoutes(app *fiber.App) {
	cardLinkHandler := link_handlers.NewCardLinkHandler()

	// Dış sözleşme: {origin}{path}?u={slug}. Parametre yoksa istek root
	// yönlendiricisine düşer.
	app.Get("/", func(c *fiber.Ctx) error {
		handled, err := cardLinkHandler.HandleCardQuery(c)
		if handled {
			return err
		}
		return rootRedirector(c)
	})

	app.Get("/k/:slug", cardLinkHandler.HandleCardPage)        // Kart sayfası
	app.Get("/k/:slug/vcard", cardLinkHandler.HandleVCard)     // Rehbere ekle
	app.Get("/k/:slug/qr.png", cardLinkHandler.HandleQRImage)  // Platform üretimi QR
	app.Get("/k/:slug/share", cardLinkHandler.HandleShareText) // Paylaşım metni (JSON)
}
