package middlewares

import (
	"kart.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware giriş yapılmış mı kontrol eder; yoksa login'e yönlendirir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu sayfa için giriş yapmalısınız.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıyı login/register sayfalarından
// kendi ana sayfasına yönlendirir.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		if isSystem, ok := c.Locals("isSystem").(bool); ok && isSystem {
			return c.Redirect("/dashboard/home", fiber.StatusSeeOther)
		}
		return c.Redirect("/panel/home", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireUser yalnız normal kullanıcılara izin verir (IsSystem == false).
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isSystem, ok := c.Locals("isSystem").(bool); ok && isSystem {
			return c.Redirect("/dashboard/home", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireAdmin yalnız yönetici hesaplara izin verir (IsSystem == true).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSystem, ok := c.Locals("isSystem").(bool)
		if !ok || !isSystem {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu sayfa için yönetici yetkisi gerekir.")
			return c.Redirect("/panel/home", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
