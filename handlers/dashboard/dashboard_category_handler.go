package handlers // handlers/dashboard paketi

import (
	"fmt"
	"net/http"

	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/flashmessages"
	"kart.link/pkg/queryparams"
	"kart.link/pkg/renderer"
	"kart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardCategoryHandler yönetici şablon kategorisi CRUD işlemleri.
type DashboardCategoryHandler struct {
	service services.ICategoryService
}

// NewDashboardCategoryHandler yeni bir DashboardCategoryHandler örneği oluşturur.
func NewDashboardCategoryHandler() *DashboardCategoryHandler {
	return &DashboardCategoryHandler{service: services.NewCategoryService()}
}

type categoryForm struct {
	Name     string `form:"name"`
	IsActive bool   `form:"is_active"`
}

// ListCategories tüm kategorileri sayfalayarak listeler.
func (h *DashboardCategoryHandler) ListCategories(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("name")
	}
	params.Validate()

	result, err := h.service.GetAllCategoriesPaginated(params)
	renderData := fiber.Map{
		"Title":  "Kategoriler",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kategoriler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Category{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListCategories Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/categories/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ShowCreateCategory kategori oluşturma formunu gösterir.
func (h *DashboardCategoryHandler) ShowCreateCategory(c *fiber.Ctx) error {
	return renderer.Render(c, "dashboard/categories/create", "layouts/dashboard_layout", fiber.Map{
		"Title":    "Yeni Kategori",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

// CreateCategory yeni kategori oluşturur.
func (h *DashboardCategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var form categoryForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/dashboard/categories/create", fiber.StatusSeeOther)
	}

	category := &models.Category{Name: form.Name, IsActive: form.IsActive}
	if err := h.service.CreateCategory(c.UserContext(), category); err != nil {
		configslog.Log.Error("Dashboard - CreateCategory Error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kategori oluşturulamadı: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/dashboard/categories/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kategori başarıyla oluşturuldu.")
	return c.Redirect("/dashboard/categories", fiber.StatusFound)
}

// ShowUpdateCategory kategori düzenleme formunu gösterir.
func (h *DashboardCategoryHandler) ShowUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/categories")
	}

	category, err := h.service.GetCategoryByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kategori bulunamadı.")
		return c.Redirect("/dashboard/categories")
	}

	return renderer.Render(c, "dashboard/categories/update", "layouts/dashboard_layout", fiber.Map{
		"Title":    "Kategoriyi Düzenle",
		"Category": category,
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

// UpdateCategory kategoriyi günceller.
func (h *DashboardCategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/categories")
	}
	categoryID := uint(id)
	redirectPathOnError := fmt.Sprintf("/dashboard/categories/update/%d", categoryID)

	var form categoryForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	existing, err := h.service.GetCategoryByID(c.UserContext(), categoryID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kategori bulunamadı.")
		return c.Redirect("/dashboard/categories")
	}

	existing.Name = form.Name
	existing.IsActive = form.IsActive

	if err := h.service.UpdateCategory(c.UserContext(), existing); err != nil {
		configslog.Log.Error("Dashboard - UpdateCategory Error", zap.Uint("id", categoryID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kategori güncellenemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kategori başarıyla güncellendi.")
	return c.Redirect(redirectPathOnError, fiber.StatusFound)
}

// DeleteCategory kategoriyi siler. Bağlı şablonlar silinmez, kategorisiz kalır.
func (h *DashboardCategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/categories")
	}

	if err := h.service.DeleteCategory(c.UserContext(), uint(id)); err != nil {
		configslog.Log.Error("Dashboard - DeleteCategory Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kategori silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kategori başarıyla silindi.")
	}
	return c.Redirect("/dashboard/categories", fiber.StatusSeeOther)
}
