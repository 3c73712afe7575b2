package configs

import (
	"os"
	"time"

	"kart.link/configs/configsdatabase"
	"kart.link/configs/configslog"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// AppConfig uygulama genel ayarları.
type AppConfig struct {
	ListenAddr string
	// PublicOrigin kartların public URL'lerinde kullanılan origin (örn: https://kart.link).
	PublicOrigin string
	// PublicBasePath public kart sayfasının yolu. Kart URL şeması: {origin}{path}?u={slug}
	PublicBasePath string
}

var appConfig AppConfig

// LoadEnv .env dosyasını (varsa) ve uygulama ayarlarını yükler.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		// .env opsiyonel; production'da env değişkenleri dışarıdan gelir.
		configslog.SLog.Info(".env dosyası bulunamadı, mevcut ortam değişkenleri kullanılacak.")
	}

	appConfig = AppConfig{
		ListenAddr:     envOrDefault("LISTEN_ADDR", ":3000"),
		PublicOrigin:   envOrDefault("PUBLIC_ORIGIN", "http://localhost:3000"),
		PublicBasePath: envOrDefault("PUBLIC_BASE_PATH", "/"),
	}
}

// Get yüklü uygulama ayarlarını döndürür.
func Get() AppConfig {
	return appConfig
}

// GetDB configsdatabase üzerindeki bağlantıyı döndürür (servis katmanı için kısayol).
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

var sessionStore *session.Store

// SetupSession cookie tabanlı session store'u hazırlar.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	sessionStore = session.New(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     72 * time.Hour,
	})
	return sessionStore
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
