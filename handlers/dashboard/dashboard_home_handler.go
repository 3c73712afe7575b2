package handlers // handlers/dashboard paketi

import (
	"kart.link/configs/configslog"
	"kart.link/pkg/queryparams"
	"kart.link/pkg/renderer"
	"kart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHomeHandler yönetici ana sayfası: şablon/stil özetleri.
type DashboardHomeHandler struct {
	templateService services.ITemplateService
	styleService    services.IStyleService
}

// NewDashboardHomeHandler yeni bir DashboardHomeHandler örneği oluşturur.
func NewDashboardHomeHandler() *DashboardHomeHandler {
	return &DashboardHomeHandler{
		templateService: services.NewTemplateService(),
		styleService:    services.NewStyleService(),
	}
}

// DashboardHomeHandler özet sayısı ve öne çıkan şablonları gösterir.
func (h *DashboardHomeHandler) DashboardHomeHandler(c *fiber.Ctx) error {
	templates, err := h.templateService.GetActiveTemplates()
	if err != nil {
		configslog.Log.Error("Dashboard - Home: şablonlar alınamadı", zap.Error(err))
	}

	var styleCount int64
	if result, sErr := h.styleService.GetAllStylesPaginated(queryparams.DefaultListParams("name")); sErr == nil {
		styleCount = result.Meta.TotalItems
	}

	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", fiber.Map{
		"Title":         "Yönetim",
		"Templates":     templates,
		"TemplateCount": len(templates),
		"StyleCount":    styleCount,
	})
}
