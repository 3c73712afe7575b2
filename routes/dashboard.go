package routes

import (
	dashboard_handlers "kart.link/handlers/dashboard"
	"kart.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki yönetici rotalarını tanımlar.
// Sadece yönetici hesapların (IsSystem == true) erişimine izin verilir.
func registerDashboardRoutes(app *fiber.App) {
	homeHandler := dashboard_handlers.NewDashboardHomeHandler()
	templateHandler := dashboard_handlers.NewDashboardTemplateHandler()
	styleHandler := dashboard_handlers.NewDashboardStyleHandler()
	categoryHandler := dashboard_handlers.NewDashboardCategoryHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,
		middlewares.RequireAdmin(),
	)

	// --- Yönetim Ana Sayfa ---
	dashboardGroup.Get("/home", homeHandler.DashboardHomeHandler)

	// --- Şablonlar ---
	dashboardGroup.Get("/templates", templateHandler.ListTemplates)
	dashboardGroup.Get("/templates/create", templateHandler.ShowCreateTemplate)
	dashboardGroup.Post("/templates/create", templateHandler.CreateTemplate)
	dashboardGroup.Get("/templates/update/:id", templateHandler.ShowUpdateTemplate)
	dashboardGroup.Post("/templates/update/:id", templateHandler.UpdateTemplate)
	dashboardGroup.Post("/templates/recount/:id", templateHandler.RecountUsage)
	dashboardGroup.Post("/templates/delete/:id", templateHandler.DeleteTemplate)
	dashboardGroup.Delete("/templates/delete/:id", templateHandler.DeleteTemplate)

	// --- Görsel Stiller ---
	dashboardGroup.Get("/styles", styleHandler.ListStyles)
	dashboardGroup.Get("/styles/create", styleHandler.ShowCreateStyle)
	dashboardGroup.Post("/styles/create", styleHandler.CreateStyle)
	dashboardGroup.Get("/styles/update/:id", styleHandler.ShowUpdateStyle)
	dashboardGroup.Post("/styles/update/:id", styleHandler.UpdateStyle)
	dashboardGroup.Post("/styles/delete/:id", styleHandler.DeleteStyle)
	dashboardGroup.Delete("/styles/delete/:id", styleHandler.DeleteStyle)

	// --- Kategoriler ---
	dashboardGroup.Get("/categories", categoryHandler.ListCategories)
	dashboardGroup.Get("/categories/create", categoryHandler.ShowCreateCategory)
	dashboardGroup.Post("/categories/create", categoryHandler.CreateCategory)
	dashboardGroup.Get("/categories/update/:id", categoryHandler.ShowUpdateCategory)
	dashboardGroup.Post("/categories/update/:id", categoryHandler.UpdateCategory)
	dashboardGroup.Post("/categories/delete/:id", categoryHandler.DeleteCategory)
	dashboardGroup.Delete("/categories/delete/:id", categoryHandler.DeleteCategory)
}
