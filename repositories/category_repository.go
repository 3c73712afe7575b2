package repositories

import (
	"context"

	"kart.link/configs/configsdatabase"
	"kart.link/models"
	"kart.link/pkg/queryparams"

	"gorm.io/gorm"
)

// ICategoryRepository şablon kategorileri için arayüz.
type ICategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	Save(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	ListActive() ([]models.Category, error)
	ListAllPaginated(params queryparams.ListParams) ([]models.Category, int64, error)
}

// CategoryRepository ICategoryRepository arayüzünü uygular.
type CategoryRepository struct {
	Base *BaseRepository[models.Category]
	Db   *gorm.DB
}

// NewCategoryRepository yeni bir CategoryRepository örneği oluşturur.
func NewCategoryRepository() ICategoryRepository {
	return NewCategoryRepositoryTx(configsdatabase.GetDB())
}

// NewCategoryRepositoryTx transaction içinde çalışan repository oluşturur.
func NewCategoryRepositoryTx(tx *gorm.DB) ICategoryRepository {
	base := NewBaseRepository[models.Category](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "is_active"})
	return &CategoryRepository{Base: base, Db: tx}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.Base.Create(ctx, category)
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	return r.Base.FindByID(ctx, id)
}

func (r *CategoryRepository) Save(ctx context.Context, category *models.Category) error {
	return r.Base.Save(ctx, category)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.Base.Delete(ctx, id)
}

func (r *CategoryRepository) ListActive() ([]models.Category, error) {
	var results []models.Category
	err := r.Db.Where("is_active = ?", true).Order("name ASC").Find(&results).Error
	return results, err
}

func (r *CategoryRepository) ListAllPaginated(params queryparams.ListParams) ([]models.Category, int64, error) {
	return r.Base.GetAll(params)
}

var _ ICategoryRepository = (*CategoryRepository)(nil)
