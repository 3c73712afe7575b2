package routes

import (
	"kart.link/configs"
	"kart.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionAndLocals())

	registerAuthRoutes(app)
	registerDashboardRoutes(app)
	registerPanelRoutes(app)

	// Public kart rotaları: /k/:slug ve kökteki ?u= sorgusu.
	registerPublicCardRoutes(app)

	// 404 handler en sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve oturum bilgisini locals'a koyar.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		userID, idErr := utils.GetUserIDFromSession(sess)
		isSystem, sysErr := utils.GetIsSystemFromSession(sess)
		userName, nameOk := sess.Get(utils.SessionKeyUserName).(string)
		if idErr == nil {
			c.Locals("userID", userID)
		}
		if sysErr == nil {
			c.Locals("isSystem", isSystem)
		}
		if nameOk {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

// rootRedirector ?u= parametresi taşımayan kök istekleri oturum durumuna göre
// yönlendirir.
func rootRedirector(c *fiber.Ctx) error {
	userIDRaw := c.Locals("userID")
	isSystemRaw := c.Locals("isSystem")
	if userIDRaw == nil || isSystemRaw == nil {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	isSystem, ok := isSystemRaw.(bool)
	if !ok {
		return c.Redirect("/auth/login")
	}
	if isSystem {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// notFoundHandler eşleşmeyen rotalar için 404 yanıtı üretir.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title":   "Sayfa Bulunamadı",
			"HomeURL": "/",
		}, "layouts/error_layout")
	}
}
