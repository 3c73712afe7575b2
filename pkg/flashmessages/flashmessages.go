package flashmessages

import (
	"encoding/json"

	"kart.link/utils"

	"github.com/gofiber/fiber/v2"
)

// Tek seferlik flash mesajları: bir sonraki istekte okunduğunda silinir.

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// SetFlashMessage session'a flash mesaj yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage flash mesajı okur ve siler.
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return ""
	}
	msg, ok := sess.Get(key).(string)
	if !ok {
		return ""
	}
	sess.Delete(key)
	_ = sess.Save()
	return msg
}

// SetFlashFormData hata sonrası formu yeniden doldurmak için veriyi saklar.
func SetFlashFormData(c *fiber.Ctx, data any) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve siler. Veri yoksa nil map döner.
func GetFlashFormData(c *fiber.Ctx) map[string]any {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return data
}
