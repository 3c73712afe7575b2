package handlers // handlers/panel paketi

import (
	"kart.link/configs/configslog"
	"kart.link/pkg/renderer"
	"kart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelHomeHandler kullanıcı paneli ana sayfası.
type PanelHomeHandler struct {
	cardService services.ICardService
}

// NewPanelHomeHandler yeni bir PanelHomeHandler örneği oluşturur.
func NewPanelHomeHandler() *PanelHomeHandler {
	return &PanelHomeHandler{cardService: services.NewCardService()}
}

// PanelHomeHandler kullanıcının kart sayısı gibi özet bilgileri gösterir.
func (h *PanelHomeHandler) PanelHomeHandler(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	cardCount, err := h.cardService.GetCardCountForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - Home: kart sayısı alınamadı", zap.Uint("userID", userID), zap.Error(err))
	}

	return renderer.Render(c, "panel/home", "layouts/panel_layout", fiber.Map{
		"Title":     "Panel",
		"CardCount": cardCount,
	})
}
