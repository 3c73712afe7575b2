package handlers // handlers/panel paketi

import (
	"os"
	"path/filepath"
	"strings"

	"kart.link/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload limitleri: profil görseli ve özel başlık görseli için.
const (
	uploadDir      = "./uploads"
	maxUploadBytes = 5 << 20 // 5 MB
)

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".svg": true,
}

// PanelUploadHandler editor görsel yüklemeleri (profil / başlık görseli).
type PanelUploadHandler struct{}

// NewPanelUploadHandler yeni bir PanelUploadHandler örneği oluşturur.
func NewPanelUploadHandler() *PanelUploadHandler {
	return &PanelUploadHandler{}
}

// UploadImage görseli uploads/ altına rastgele adla kaydeder ve public
// URL'sini döner. Dosya adı istemciden alınmaz; uzantı beyaz listeden geçer.
func (h *PanelUploadHandler) UploadImage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "görsel dosyası bulunamadı"})
	}
	if file.Size > maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "dosya çok büyük (en fazla 5 MB)"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": "desteklenmeyen dosya türü"})
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		configslog.Log.Error("Upload dizini oluşturulamadı", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(uploadDir, name)
	if err := c.SaveFile(file, dst); err != nil {
		configslog.Log.Error("Görsel kaydedilemedi", zap.Uint("userID", userID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	configslog.SLog.Infof("Görsel yüklendi: %s (kullanıcı %d)", name, userID)
	return c.JSON(fiber.Map{"url": "/uploads/" + name})
}
