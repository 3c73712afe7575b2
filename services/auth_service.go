package services

import (
	"context"

	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/repositories"

	"go.uber.org/zap"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
)

// IAuthService kimlik doğrulama işlemleri.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

// Authenticate e-posta + şifre doğrular. Bulunamayan kullanıcı ile hatalı
// şifre dışarıya aynı hatayla döner.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		configslog.SLog.Warnf("Giriş denemesi başarısız (kullanıcı yok): %s", email)
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		configslog.Log.Warn("Giriş denemesi başarısız (şifre hatalı)", zap.Uint("userID", user.ID))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
