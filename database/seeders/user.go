package seeders

import (
	"errors"
	"os"

	"kart.link/configs/configslog"
	"kart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSystemUser yönetici hesabını oluşturur ya da şifresini env'den tazeler.
// SYSTEM_USER_EMAIL / SYSTEM_USER_PASSWORD ile yapılandırılır.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Warn("SYSTEM_USER_EMAIL/SYSTEM_USER_PASSWORD tanımlı değil, sistem kullanıcısı seed edilmeyecek.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)

	if result.Error == nil {
		// Mevcut: şifre env ile eşleşmiyorsa güncelle.
		if existing.CheckPassword(password) {
			configslog.SLog.Info("Sistem kullanıcısı zaten güncel.")
			return nil
		}
		if err := existing.SetPassword(password); err != nil {
			return err
		}
		if err := db.Model(&existing).Update("password_hash", existing.PasswordHash).Error; err != nil {
			configslog.Log.Error("Sistem kullanıcısı şifresi güncellenemedi", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Sistem kullanıcısının şifresi güncellendi.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	user := models.User{
		Name:     "Sistem Yöneticisi",
		Email:    email,
		IsSystem: true,
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem kullanıcısı oluşturuldu (ID: %d).", user.ID)
	return nil
}
