package handlers // handlers/dashboard paketi

import (
	"encoding/json"
	"errors"
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

// DashboardTemplateHandler yönetici şablon CRUD işlemleri.
type DashboardTemplateHandler struct {
	service         services.ITemplateService
	styleService    services.IStyleService
	categoryService services.ICategoryService
}

// NewDashboardTemplateHandler yeni bir DashboardTemplateHandler örneği oluşturur.
func NewDashboardTemplateHandler() *DashboardTemplateHandler {
	return &DashboardTemplateHandler{
		service:         services.NewTemplateService(),
		styleService:    services.NewStyleService(),
		categoryService: services.NewCategoryService(),
	}
}

// templateForm şablon yazım formu. Config editor'ün ürettiği JSON string'dir.
type templateForm struct {
	Name       string `form:"name"`
	NameTR     string `form:"name_tr"`
	CategoryID uint   `form:"category_id"`
	IsActive   bool   `form:"is_active"`
	IsFeatured bool   `form:"is_featured"`
	SortOrder  int    `form:"sort_order"`
	Config     string `form:"config"`   // JSON nesne
	StyleID    uint   `form:"style_id"` // 0 ise stil uygulanmaz
}

func (f templateForm) toModel(h *DashboardTemplateHandler) (*models.Template, error) {
	var config cardconfig.Params
	if f.Config != "" {
		if err := json.Unmarshal([]byte(f.Config), &config); err != nil {
			return nil, fmt.Errorf("şablon konfigürasyonu çözümlenemedi: %w", err)
		}
	}

	// Stil seçildiyse ön ayar alanları konfigürasyonun üstüne yazılır.
	if f.StyleID != 0 {
		applied, err := h.styleService.ApplyToConfig(f.StyleID, config)
		if err != nil {
			return nil, err
		}
		config = applied
	}

	template := &models.Template{
		Name:       f.Name,
		NameTR:     f.NameTR,
		IsActive:   f.IsActive,
		IsFeatured: f.IsFeatured,
		SortOrder:  f.SortOrder,
		Config:     datatypes.NewJSONType(config),
	}
	if f.CategoryID != 0 {
		categoryID := f.CategoryID
		template.CategoryID = &categoryID
	}
	return template, nil
}

// ListTemplates tüm şablonları sayfalayarak listeler.
func (h *DashboardTemplateHandler) ListTemplates(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("sort_order")
	}
	params.Validate()

	result, err := h.service.GetAllTemplatesPaginated(params)
	renderData := fiber.Map{
		"Title":  "Şablonlar",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Şablonlar listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Template{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListTemplates Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/templates/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ShowCreateTemplate şablon oluşturma formunu gösterir.
func (h *DashboardTemplateHandler) ShowCreateTemplate(c *fiber.Ctx) error {
	categories, _ := h.categoryService.GetActiveCategories()
	styles, _ := h.styleService.GetActiveStyles()

	return renderer.Render(c, "dashboard/templates/create", "layouts/dashboard_layout", fiber.Map{
		"Title":      "Yeni Şablon",
		"Categories": categories,
		"Styles":     styles,
		"FormData":   flashmessages.GetFlashFormData(c),
	})
}

// CreateTemplate yeni şablon oluşturur.
func (h *DashboardTemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	var form templateForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/dashboard/templates/create", fiber.StatusSeeOther)
	}

	template, err := form.toModel(h)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/dashboard/templates/create", fiber.StatusSeeOther)
	}

	if err := h.service.CreateTemplate(c.UserContext(), template); err != nil {
		configslog.Log.Error("Dashboard - CreateTemplate Error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Şablon oluşturulamadı: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/dashboard/templates/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şablon başarıyla oluşturuldu.")
	return c.Redirect("/dashboard/templates", fiber.StatusFound)
}

// ShowUpdateTemplate şablon düzenleme formunu gösterir.
func (h *DashboardTemplateHandler) ShowUpdateTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/templates")
	}

	template, err := h.service.GetTemplateByID(uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Şablon bulunamadı.")
		return c.Redirect("/dashboard/templates")
	}

	categories, _ := h.categoryService.GetActiveCategories()
	styles, _ := h.styleService.GetActiveStyles()
	configJSON, _ := json.Marshal(template.Config.Data())

	var currentCategoryID uint
	if template.CategoryID != nil {
		currentCategoryID = *template.CategoryID
	}

	return renderer.Render(c, "dashboard/templates/update", "layouts/dashboard_layout", fiber.Map{
		"Title":             "Şablonu Düzenle",
		"Template":          template,
		"ConfigJSON":        string(configJSON),
		"CurrentCategoryID": currentCategoryID,
		"Categories":        categories,
		"Styles":            styles,
		"FormData":          flashmessages.GetFlashFormData(c),
	})
}

// UpdateTemplate şablonu günceller.
func (h *DashboardTemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/templates")
	}
	templateID := uint(id)
	redirectPathOnError := fmt.Sprintf("/dashboard/templates/update/%d", templateID)

	var form templateForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	existing, err := h.service.GetTemplateByID(templateID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Şablon bulunamadı.")
		return c.Redirect("/dashboard/templates")
	}

	template, err := form.toModel(h)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	template.BaseModel = existing.BaseModel
	template.UsageCount = existing.UsageCount // sayaç formdan değişmez

	if err := h.service.UpdateTemplate(c.UserContext(), template); err != nil {
		configslog.Log.Error("Dashboard - UpdateTemplate Error", zap.Uint("id", templateID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Şablon güncellenemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şablon başarıyla güncellendi.")
	return c.Redirect(redirectPathOnError, fiber.StatusFound)
}

// DeleteTemplate şablonu siler. Kullanımdaki şablon silinemez.
func (h *DashboardTemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/templates")
	}

	err = h.service.DeleteTemplate(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTemplateInUse) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		} else {
			configslog.Log.Error("Dashboard - DeleteTemplate Error", zap.Int("id", id), zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Şablon silinemedi: "+err.Error())
		}
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şablon başarıyla silindi.")
	}
	return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
}

// RecountUsage şablonun kullanım sayacını gerçek kart sayısından senkronlar.
func (h *DashboardTemplateHandler) RecountUsage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/templates")
	}

	if err := h.service.RecountUsage(c.UserContext(), uint(id)); err != nil {
		configslog.Log.Error("Dashboard - RecountUsage Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Sayaç güncellenemedi.")
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kullanım sayacı güncellendi.")
	}
	return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
}
