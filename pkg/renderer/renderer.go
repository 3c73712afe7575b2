package renderer

import (
	"kart.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View katmanına flash mesajları ve ortak locals'ı tek noktadan geçiren
// render yardımcısı. Handler'lar fiber'ın Render'ını doğrudan çağırmaz.

const (
	FlashSuccessKeyView = "FlashSuccess"
	FlashErrorKeyView   = "FlashError"
)

// Render view'ı layout ile render eder; flash mesajları ve oturum bilgisini
// data'ya ekler.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	if _, exists := data[FlashSuccessKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, exists := data[FlashErrorKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}

	if userName, ok := c.Locals("userName").(string); ok {
		data["CurrentUserName"] = userName
	}
	if isSystem, ok := c.Locals("isSystem").(bool); ok {
		data["IsSystem"] = isSystem
	}

	if len(status) > 0 {
		c.Status(status[0])
	}
	return c.Render(view, data, layout)
}
