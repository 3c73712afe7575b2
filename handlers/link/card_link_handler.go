package handlers // handlers/link paketi

import (
	"errors"
	"time"

	"kart.link/configs"
	"kart.link/configs/configslog"
	"kart.link/pkg/cardrender"
	"kart.link/pkg/qrcompose"
	"kart.link/pkg/sharetext"
	"kart.link/pkg/vcard"
	"kart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardLinkHandler public kart isteklerini yönetir: kart sayfası, vCard
// indirme, QR görseli ve paylaşım metni.
type CardLinkHandler struct {
	cardService services.ICardService
}

// NewCardLinkHandler yeni bir CardLinkHandler örneği oluşturur.
func NewCardLinkHandler() *CardLinkHandler {
	return &CardLinkHandler{cardService: services.NewCardService()}
}

// HandleCardQuery kök URL'deki ?u={slug} parametresiyle kart sayfasını
// gösterir. Dış sözleşme: {origin}{path}?u={slug}. Parametre yoksa false
// döner ve istek root yönlendiricisine bırakılır.
func (h *CardLinkHandler) HandleCardQuery(c *fiber.Ctx) (bool, error) {
	slug := c.Query("u")
	if slug == "" {
		return false, nil
	}
	return true, h.renderCard(c, slug)
}

// HandleCardPage /k/:slug yolundaki kart sayfasını gösterir.
func (h *CardLinkHandler) HandleCardPage(c *fiber.Ctx) error {
	return h.renderCard(c, c.Params("slug"))
}

func (h *CardLinkHandler) renderCard(c *fiber.Ctx, slug string) error {
	card, err := h.cardService.GetCardBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return h.renderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("HandleCardPage: GetCardBySlug error", zap.String("slug", slug), zap.Error(err))
		return h.renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}

	view := h.cardService.ComposeView(card, false, sharetext.Locale(c.Query("locale", "tr")), time.Now())
	// Blok birleşik tiptir; template'e somut tip olarak geçilir.
	standard, _ := view.Block.(*cardrender.StandardBlock)
	occasion, _ := view.Block.(*cardrender.OccasionBlock)
	return c.Render("public/card_view", fiber.Map{
		"Title":    card.Detail.Name,
		"View":     view,
		"Standard": standard,
		"Occasion": occasion,
	}, "layouts/public_layout")
}

// HandleVCard /k/:slug/vcard — kart sahibini rehbere eklemek için vCard 3.0
// dosyası indirir.
func (h *CardLinkHandler) HandleVCard(c *fiber.Ctx) error {
	slug := c.Params("slug")
	card, err := h.cardService.GetCardBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return h.renderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("HandleVCard: GetCardBySlug error", zap.String("slug", slug), zap.Error(err))
		return h.renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}

	body := vcard.Build(vcard.Card{
		FullName: card.Detail.Name,
		Title:    card.Detail.Title,
		Company:  card.Detail.Company,
		Phone:    card.Detail.Phone,
		Email:    card.Detail.Email,
		Website:  card.Detail.Website,
		Address:  card.Detail.Address,
		Note:     card.Detail.Bio,
		Photo:    card.Detail.ProfileImageURL,
	})

	c.Set(fiber.HeaderContentType, vcard.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+vcard.Filename(card.Detail.Name)+`"`)
	return c.Send(body)
}

// HandleQRImage /k/:slug/qr.png — public kart URL'sini içeren, platformun
// kendi ürettiği PNG. Harici QR uç noktasına erişilemeyen ortamlar için.
func (h *CardLinkHandler) HandleQRImage(c *fiber.Ctx) error {
	slug := c.Params("slug")
	card, err := h.cardService.GetCardBySlug(c.UserContext(), slug)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	app := configs.Get()
	payload := qrcompose.CardURL(app.PublicOrigin, app.PublicBasePath, card.Slug)
	size := c.QueryInt("size", qrcompose.SizeShare)

	png, err := qrcompose.PNG(payload, size, c.Query("color"), c.Query("bgcolor"))
	if err != nil {
		configslog.Log.Error("HandleQRImage: PNG üretim hatası", zap.String("slug", slug), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// HandleShareText /k/:slug/share — mesajlaşma uygulamalarına yapıştırılacak
// yerele bağlı paylaşım metni (?locale=tr|en).
func (h *CardLinkHandler) HandleShareText(c *fiber.Ctx) error {
	slug := c.Params("slug")
	card, err := h.cardService.GetCardBySlug(c.UserContext(), slug)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kartvizit bulunamadı"})
	}

	app := configs.Get()
	url := qrcompose.CardURL(app.PublicOrigin, app.PublicBasePath, card.Slug)
	text := sharetext.Build(sharetext.Locale(c.Query("locale", "tr")), card.Detail.Name, card.Detail.Title, url)

	return c.JSON(fiber.Map{"text": text, "url": url})
}

// renderNotFound standart 404 sayfasını render eder.
func (h *CardLinkHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
		// Ziyaretçiye çıkış yolu: ana sayfaya dön bağlantısı.
		"HomeURL": "/",
	}, "layouts/error_layout")
}

// renderError standart 500 hata sayfasını render eder.
func (h *CardLinkHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	}, "layouts/error_layout")
}
