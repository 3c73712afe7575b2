package handlers // handlers/dashboard paketi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/cardconfig"
	"kart.link/pkg/flashmessages"
	"kart.link/pkg/queryparams"
	"kart.link/pkg/renderer"
	"kart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// DashboardStyleHandler yönetici görsel stil CRUD işlemleri.
type DashboardStyleHandler struct {
	service services.IStyleService
}

// NewDashboardStyleHandler yeni bir DashboardStyleHandler örneği oluşturur.
func NewDashboardStyleHandler() *DashboardStyleHandler {
	return &DashboardStyleHandler{service: services.NewStyleService()}
}

type styleForm struct {
	Name     string `form:"name"`
	IsActive bool   `form:"is_active"`
	Preset   string `form:"preset"` // JSON nesne
}

func (f styleForm) toModel() (*models.VisualStyle, error) {
	var preset cardconfig.Params
	if f.Preset != "" {
		if err := json.Unmarshal([]byte(f.Preset), &preset); err != nil {
			return nil, fmt.Errorf("stil ön ayarı çözümlenemedi: %w", err)
		}
	}
	return &models.VisualStyle{
		Name:     f.Name,
		IsActive: f.IsActive,
		Preset:   datatypes.NewJSONType(preset),
	}, nil
}

// ListStyles tüm görsel stilleri sayfalayarak listeler.
func (h *DashboardStyleHandler) ListStyles(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("name")
	}
	params.Validate()

	result, err := h.service.GetAllStylesPaginated(params)
	renderData := fiber.Map{
		"Title":  "Görsel Stiller",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Stiller listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.VisualStyle{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListStyles Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/styles/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ShowCreateStyle stil oluşturma formunu gösterir.
func (h *DashboardStyleHandler) ShowCreateStyle(c *fiber.Ctx) error {
	return renderer.Render(c, "dashboard/styles/create", "layouts/dashboard_layout", fiber.Map{
		"Title":    "Yeni Görsel Stil",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

// CreateStyle yeni görsel stil oluşturur.
func (h *DashboardStyleHandler) CreateStyle(c *fiber.Ctx) error {
	var form styleForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/dashboard/styles/create", fiber.StatusSeeOther)
	}

	style, err := form.toModel()
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/dashboard/styles/create", fiber.StatusSeeOther)
	}

	if err := h.service.CreateStyle(c.UserContext(), style); err != nil {
		configslog.Log.Error("Dashboard - CreateStyle Error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Stil oluşturulamadı: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/dashboard/styles/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Görsel stil başarıyla oluşturuldu.")
	return c.Redirect("/dashboard/styles", fiber.StatusFound)
}

// ShowUpdateStyle stil düzenleme formunu gösterir.
func (h *DashboardStyleHandler) ShowUpdateStyle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/styles")
	}

	style, err := h.service.GetStyleByID(uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Stil bulunamadı.")
		return c.Redirect("/dashboard/styles")
	}
	presetJSON, _ := json.Marshal(style.Preset.Data())

	return renderer.Render(c, "dashboard/styles/update", "layouts/dashboard_layout", fiber.Map{
		"Title":      "Stili Düzenle",
		"Style":      style,
		"PresetJSON": string(presetJSON),
		"FormData":   flashmessages.GetFlashFormData(c),
	})
}

// UpdateStyle görsel stili günceller.
func (h *DashboardStyleHandler) UpdateStyle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/styles")
	}
	styleID := uint(id)
	redirectPathOnError := fmt.Sprintf("/dashboard/styles/update/%d", styleID)

	var form styleForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	existing, err := h.service.GetStyleByID(styleID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Stil bulunamadı.")
		return c.Redirect("/dashboard/styles")
	}

	style, err := form.toModel()
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	style.BaseModel = existing.BaseModel

	if err := h.service.UpdateStyle(c.UserContext(), style); err != nil {
		configslog.Log.Error("Dashboard - UpdateStyle Error", zap.Uint("id", styleID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Stil güncellenemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Görsel stil başarıyla güncellendi.")
	return c.Redirect(redirectPathOnError, fiber.StatusFound)
}

// DeleteStyle görsel stili siler. Stiller yalnız şablon yazım zamanında
// kullanıldığından mevcut şablonlar etkilenmez.
func (h *DashboardStyleHandler) DeleteStyle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/styles")
	}

	if err := h.service.DeleteStyle(c.UserContext(), uint(id)); err != nil {
		configslog.Log.Error("Dashboard - DeleteStyle Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Stil silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Görsel stil başarıyla silindi.")
	}
	return c.Redirect("/dashboard/styles", fiber.StatusSeeOther)
}
