package repositories

import (
	"context"
	"errors"
	"strings"

	"kart.link/configs/configsdatabase"
	"kart.link/models"

	"gorm.io/gorm"
)

// IUserRepository kullanıcı sorguları için arayüz (yetki kontrolü ve giriş).
type IUserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	Base *BaseRepository[models.User]
	Db   *gorm.DB
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	return NewUserRepositoryTx(configsdatabase.GetDB())
}

// NewUserRepositoryTx transaction içinde çalışan repository oluşturur.
func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	return &UserRepository{Base: NewBaseRepository[models.User](tx), Db: tx}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.Base.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &user, err
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.Base.Create(ctx, user)
}

var _ IUserRepository = (*UserRepository)(nil)
