package repositories

import (
	"context"
	"errors"

	"kart.link/configs/configsdatabase"
	"kart.link/models"
	"kart.link/pkg/queryparams"

	"gorm.io/gorm"
)

// IStyleRepository görsel stil ön ayarları için arayüz.
type IStyleRepository interface {
	Create(ctx context.Context, style *models.VisualStyle) error
	FindByID(id uint) (*models.VisualStyle, error)
	Save(ctx context.Context, style *models.VisualStyle) error
	Delete(ctx context.Context, id uint) error
	ListActive() ([]models.VisualStyle, error)
	ListAllPaginated(params queryparams.ListParams) ([]models.VisualStyle, int64, error)
}

// StyleRepository IStyleRepository arayüzünü uygular.
type StyleRepository struct {
	Base *BaseRepository[models.VisualStyle]
	Db   *gorm.DB
}

// NewStyleRepository yeni bir StyleRepository örneği oluşturur.
func NewStyleRepository() IStyleRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.VisualStyle](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "is_active"})
	return &StyleRepository{Base: base, Db: db}
}

func (r *StyleRepository) Create(ctx context.Context, style *models.VisualStyle) error {
	return r.Base.Create(ctx, style)
}

func (r *StyleRepository) FindByID(id uint) (*models.VisualStyle, error) {
	style, err := r.Base.FindByID(context.Background(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return style, err
}

func (r *StyleRepository) Save(ctx context.Context, style *models.VisualStyle) error {
	return r.Base.Save(ctx, style)
}

func (r *StyleRepository) Delete(ctx context.Context, id uint) error {
	return r.Base.Delete(ctx, id)
}

func (r *StyleRepository) ListActive() ([]models.VisualStyle, error) {
	var results []models.VisualStyle
	err := r.Db.Where("is_active = ?", true).Order("name ASC").Find(&results).Error
	return results, err
}

func (r *StyleRepository) ListAllPaginated(params queryparams.ListParams) ([]models.VisualStyle, int64, error) {
	return r.Base.GetAll(params)
}

var _ IStyleRepository = (*StyleRepository)(nil)
