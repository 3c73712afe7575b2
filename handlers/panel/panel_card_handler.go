package handlers // handlers/panel paketi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/cardconfig"
	"kart.link/pkg/cardrender"
	"kart.link/pkg/flashmessages"
	"kart.link/pkg/queryparams"
	"kart.link/pkg/renderer"
	"kart.link/pkg/sharetext"
	"kart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// PanelCardHandler kullanıcının kendi kartvizitleri için handler.
type PanelCardHandler struct {
	service         services.ICardService
	templateService services.ITemplateService
}

// NewPanelCardHandler yeni bir PanelCardHandler örneği oluşturur.
func NewPanelCardHandler() *PanelCardHandler {
	return &PanelCardHandler{
		service:         services.NewCardService(),
		templateService: services.NewTemplateService(),
	}
}

// cardForm editor formunun gönderdiği alanlar. Overrides alanı editor'ün
// ürettiği JSON string'dir; sunucu yalnızca geçerli JSON olduğunu doğrular.
type cardForm struct {
	Slug       string `form:"slug"`
	TemplateID uint   `form:"template_id"`
	IsEnabled  bool   `form:"is_enabled"`

	Name     string `form:"name"`
	Title    string `form:"title"`
	Company  string `form:"company"`
	Bio      string `form:"bio"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	WhatsApp string `form:"whatsapp"`
	Website  string `form:"website"`
	Address  string `form:"address"`

	ProfileImageURL string `form:"profile_image_url"`
	SocialLinks     string `form:"social_links"` // JSON dizi
	Overrides       string `form:"overrides"`    // JSON nesne
}

func (f cardForm) toInput() (services.CardInput, error) {
	detail := models.CardDetail{
		Name:            f.Name,
		Title:           f.Title,
		Company:         f.Company,
		Bio:             f.Bio,
		Email:           f.Email,
		Phone:           f.Phone,
		WhatsApp:        f.WhatsApp,
		Website:         f.Website,
		Address:         f.Address,
		ProfileImageURL: f.ProfileImageURL,
	}

	if f.SocialLinks != "" {
		var links []cardconfig.SocialLink
		if err := json.Unmarshal([]byte(f.SocialLinks), &links); err != nil {
			return services.CardInput{}, fmt.Errorf("sosyal bağlantılar çözümlenemedi: %w", err)
		}
		detail.SocialLinks = links
	}
	if f.Overrides != "" {
		var overrides cardconfig.Params
		if err := json.Unmarshal([]byte(f.Overrides), &overrides); err != nil {
			return services.CardInput{}, fmt.Errorf("görünüm ayarları çözümlenemedi: %w", err)
		}
		detail.Overrides = datatypes.NewJSONType(overrides)
	}

	return services.CardInput{
		Slug:       f.Slug,
		TemplateID: f.TemplateID,
		IsEnabled:  f.IsEnabled,
		Detail:     detail,
	}, nil
}

// ListCards kullanıcının kendi kartvizitlerini listeler.
func (h *PanelCardHandler) ListCards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum bilgileri geçersiz.")
		return c.Redirect("/auth/login")
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListCards: Query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetCardsForUser(c.UserContext(), userID, params)

	renderData := fiber.Map{
		"Title":  "Kartvizitlerim",
		"Result": paginatedResult,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kartvizitler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Card{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListCards Error", zap.Uint("userID", userID), zap.Error(err))
	}
	return renderer.Render(c, "panel/cards/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// ShowCreateCard yeni kartvizit oluşturma formunu gösterir.
func (h *PanelCardHandler) ShowCreateCard(c *fiber.Ctx) error {
	templates, err := h.templateService.GetActiveTemplates()
	if err != nil {
		configslog.Log.Error("Panel - ShowCreateCard: şablonlar alınamadı", zap.Error(err))
	}
	formData := flashmessages.GetFlashFormData(c)

	return renderer.Render(c, "panel/cards/create", "layouts/panel_layout", fiber.Map{
		"Title":     "Yeni Kartvizit Oluştur",
		"Templates": templates,
		"FormData":  formData,
	})
}

// CreateCard yeni kartvizit oluşturur.
func (h *PanelCardHandler) CreateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	var form cardForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	input, err := form.toInput()
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	card, err := h.service.CreateCard(c.UserContext(), userID, input)
	if err != nil {
		configslog.Log.Error("Panel - CreateCard Error", zap.Uint("creatorUserID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kartvizit oluşturulamadı: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla oluşturuldu.")
	return c.Redirect(fmt.Sprintf("/panel/cards/update/%d", card.ID), fiber.StatusFound)
}

// ShowUpdateCard kartvizit düzenleme formunu (editor) gösterir.
func (h *PanelCardHandler) ShowUpdateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}
	cardID := uint(id)

	card, err := h.service.GetCardByID(c.UserContext(), cardID, userID)
	if err != nil {
		errMsg := "Kartvizit bulunamadı veya bu kartviziti düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrCardNotFound) && !errors.Is(err, services.ErrCardForbidden) {
			errMsg = "Kartvizit bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/cards")
	}

	templates, tplErr := h.templateService.GetActiveTemplates()
	if tplErr != nil {
		configslog.Log.Error("Panel - ShowUpdateCard: şablonlar alınamadı", zap.Error(tplErr))
	}

	return renderer.Render(c, "panel/cards/update", "layouts/panel_layout", fiber.Map{
		"Title":     "Kartviziti Düzenle",
		"Card":      card,
		"Detail":    card.Detail,
		"Templates": templates,
		"FormData":  flashmessages.GetFlashFormData(c),
	})
}

// UpdateCard kartvizit bilgilerini günceller (tam değiştirme).
func (h *PanelCardHandler) UpdateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}
	cardID := uint(id)
	redirectPathOnError := fmt.Sprintf("/panel/cards/update/%d", cardID)

	var form cardForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	input, err := form.toInput()
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	err = h.service.UpdateCard(c.UserContext(), cardID, userID, input)
	if err != nil {
		errMsg := "Güncelleme hatası: " + err.Error()
		if errors.Is(err, services.ErrCardNotFound) || errors.Is(err, services.ErrCardForbidden) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
			return c.Redirect("/panel/cards")
		}
		configslog.Log.Error("Panel - UpdateCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla güncellendi.")
	return c.Redirect(redirectPathOnError, fiber.StatusFound)
}

// RenameSlug kartın public adresini değiştirir. Editor'de ayrı bir form olarak
// sunulur; diğer alanlardan bağımsız işler.
func (h *PanelCardHandler) RenameSlug(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}
	cardID := uint(id)
	redirectPath := fmt.Sprintf("/panel/cards/update/%d", cardID)

	newSlug := c.FormValue("slug")
	if err := h.service.RenameSlug(c.UserContext(), cardID, userID, newSlug); err != nil {
		configslog.Log.Warn("Panel - RenameSlug Error", zap.Uint("id", cardID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Adres değiştirilemedi: "+err.Error())
		return c.Redirect(redirectPath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kart adresi güncellendi.")
	return c.Redirect(redirectPath, fiber.StatusFound)
}

// CheckSlug editor'ün kayıt öncesi uygunluk denetimi (JSON).
func (h *PanelCardHandler) CheckSlug(c *fiber.Ctx) error {
	slug := c.Query("slug")
	available, err := h.service.CheckSlugAvailable(c.UserContext(), slug)
	if err != nil {
		configslog.Log.Error("Panel - CheckSlug Error", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kontrol başarısız"})
	}
	return c.JSON(fiber.Map{"slug": slug, "available": available})
}

// PreviewCard editor önizlemesi: kart public sayfayla aynı ağaçla, fakat
// önizleme modunda render edilir (rehbere ekle butonu gizli).
func (h *PanelCardHandler) PreviewCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	card, err := h.service.GetCardByID(c.UserContext(), uint(id), userID)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	view := h.service.ComposeView(card, true, sharetext.LocaleTR, time.Now())
	standard, _ := view.Block.(*cardrender.StandardBlock)
	occasion, _ := view.Block.(*cardrender.OccasionBlock)
	return c.Render("public/card_view", fiber.Map{
		"Title":    card.Detail.Name,
		"View":     view,
		"Standard": standard,
		"Occasion": occasion,
		"Preview":  true,
	}, "layouts/public_layout")
}

// DeleteCard kartviziti siler.
func (h *PanelCardHandler) DeleteCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}
	cardID := uint(id)

	err = h.service.DeleteCard(c.UserContext(), cardID, userID)
	if err != nil {
		errMsg := "Silme hatası: " + err.Error()
		if !errors.Is(err, services.ErrCardNotFound) && !errors.Is(err, services.ErrCardForbidden) {
			configslog.Log.Error("Panel - DeleteCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla silindi.")
	}
	return c.Redirect("/panel/cards", fiber.StatusSeeOther)
}
