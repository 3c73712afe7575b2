package handlers // handlers/auth paketi

import (
	"strings"

	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/flashmessages"
	"kart.link/pkg/renderer"
	"kart.link/repositories"
	"kart.link/services"
	"kart.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler giriş/çıkış ve kayıt işlemleri.
type AuthHandler struct {
	authService services.IAuthService
	userRepo    repositories.IUserRepository
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(),
		userRepo:    repositories.NewUserRepository(),
	}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
		"Title": "Giriş Yap",
	})
}

// Login e-posta + şifre ile oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(c.UserContext(), email, password)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session açılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	// Oturum sabitleme koruması: giriş sonrası session yenilenir.
	if err := sess.Regenerate(); err != nil {
		configslog.Log.Error("Login: session yenilenemedi", zap.Error(err))
	}
	sess.Set(utils.SessionKeyUserID, user.ID)
	sess.Set(utils.SessionKeyIsSystem, user.IsSystem)
	sess.Set(utils.SessionKeyUserName, user.Name)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Kullanıcı giriş yaptı: %d", user.ID)
	if user.IsSystem {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// ShowRegister kayıt formunu gösterir.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/register", "layouts/auth_layout", fiber.Map{
		"Title": "Kayıt Ol",
	})
}

// Register yeni kullanıcı hesabı oluşturur.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	if name == "" || email == "" || len(password) < 8 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "İsim, e-posta ve en az 8 karakterlik şifre zorunludur.")
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	if _, err := h.userRepo.FindByEmail(c.UserContext(), email); err == nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu e-posta adresi zaten kayıtlı.")
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	user := models.User{Name: name, Email: strings.ToLower(email)}
	if err := user.SetPassword(password); err != nil {
		configslog.Log.Error("Register: şifre hashlenemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kayıt sırasında bir hata oluştu.")
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}
	if err := h.userRepo.Create(c.UserContext(), &user); err != nil {
		configslog.Log.Error("Register: kullanıcı oluşturulamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kayıt sırasında bir hata oluştu.")
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydı: %d (%s)", user.ID, user.Email)
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kayıt tamamlandı, giriş yapabilirsiniz.")
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Logout oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			configslog.Log.Error("Logout: session sonlandırılamadı", zap.Error(err))
		}
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}
