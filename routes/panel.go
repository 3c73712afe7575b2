package routes

import (
	panel_handlers "kart.link/handlers/panel"
	"kart.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları tanımlar. Sadece normal
// kullanıcıların (IsSystem == false) erişimine izin verilir.
func registerPanelRoutes(app *fiber.App) {
	panelHomeHandler := panel_handlers.NewPanelHomeHandler()
	cardHandler := panel_handlers.NewPanelCardHandler()
	uploadHandler := panel_handlers.NewPanelUploadHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(
		middlewares.AuthMiddleware, // 1. Giriş yapmış mı?
		middlewares.RequireUser(),  // 2. Normal kullanıcı mı?
	)

	// --- Panel Ana Sayfa ---
	panelGroup.Get("/home", panelHomeHandler.PanelHomeHandler) // GET /panel/home

	// --- Kullanıcının Kendi Kartvizitleri ---
	panelGroup.Get("/cards", cardHandler.ListCards)                  // GET /panel/cards
	panelGroup.Get("/cards/create", cardHandler.ShowCreateCard)      // GET /panel/cards/create
	panelGroup.Post("/cards/create", cardHandler.CreateCard)         // POST /panel/cards/create
	panelGroup.Get("/cards/update/:id", cardHandler.ShowUpdateCard)  // GET /panel/cards/update/{id}
	panelGroup.Post("/cards/update/:id", cardHandler.UpdateCard)     // POST /panel/cards/update/{id}
	panelGroup.Post("/cards/rename/:id", cardHandler.RenameSlug)     // POST /panel/cards/rename/{id}
	panelGroup.Get("/cards/preview/:id", cardHandler.PreviewCard)    // GET /panel/cards/preview/{id}
	panelGroup.Get("/cards/check-slug", cardHandler.CheckSlug)       // GET /panel/cards/check-slug?slug=
	panelGroup.Post("/uploads", uploadHandler.UploadImage)           // POST /panel/uploads (görsel)
	panelGroup.Post("/cards/delete/:id", cardHandler.DeleteCard)     // POST /panel/cards/delete/{id} (Formdan silme)
	panelGroup.Delete("/cards/delete/:id", cardHandler.DeleteCard)   // DELETE /panel/cards/delete/{id} (JS/API için)
}
