package repositories

import (
	"context"
	"errors"

	"kart.link/configs/configsdatabase"
	"kart.link/models"
	"kart.link/pkg/queryparams"

	"gorm.io/gorm"
)

// ITemplateRepository şablon veritabanı işlemleri için arayüz.
type ITemplateRepository interface {
	Create(ctx context.Context, template *models.Template) error
	FindByID(id uint) (*models.Template, error)
	Save(ctx context.Context, template *models.Template) error
	Delete(ctx context.Context, id uint) error
	// ListActive son kullanıcı seçim listesi: öne çıkanlar önce, sonra
	// SortOrder artan, sonra yeniden eskiye.
	ListActive() ([]models.Template, error)
	ListAllPaginated(params queryparams.ListParams) ([]models.Template, int64, error)
	// AdjustUsageCount sayaç bakımı; delta negatifse sayaç sıfırın altına inmez.
	AdjustUsageCount(ctx context.Context, id uint, delta int) error
	SetUsageCount(ctx context.Context, id uint, count int64) error
	ClearCategory(ctx context.Context, categoryID uint) error
}

// TemplateRepository ITemplateRepository arayüzünü uygular.
type TemplateRepository struct {
	Base *BaseRepository[models.Template]
	Db   *gorm.DB
}

// NewTemplateRepository yeni bir TemplateRepository örneği oluşturur.
func NewTemplateRepository() ITemplateRepository {
	return NewTemplateRepositoryTx(configsdatabase.GetDB())
}

// NewTemplateRepositoryTx transaction içinde çalışan repository oluşturur.
func NewTemplateRepositoryTx(tx *gorm.DB) ITemplateRepository {
	base := NewBaseRepository[models.Template](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "sort_order", "usage_count", "is_active"})
	return &TemplateRepository{Base: base, Db: tx}
}

func (r *TemplateRepository) Create(ctx context.Context, template *models.Template) error {
	return r.Base.Create(ctx, template)
}

func (r *TemplateRepository) FindByID(id uint) (*models.Template, error) {
	var result models.Template
	err := r.Db.Preload("Category").First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &result, err
}

func (r *TemplateRepository) Save(ctx context.Context, template *models.Template) error {
	return r.Base.Save(ctx, template)
}

func (r *TemplateRepository) Delete(ctx context.Context, id uint) error {
	return r.Base.Delete(ctx, id)
}

func (r *TemplateRepository) ListActive() ([]models.Template, error) {
	var results []models.Template
	err := r.Db.Preload("Category").
		Where("is_active = ?", true).
		Order("is_featured DESC, sort_order ASC, created_at DESC").
		Find(&results).Error
	return results, err
}

func (r *TemplateRepository) ListAllPaginated(params queryparams.ListParams) ([]models.Template, int64, error) {
	return r.Base.GetAll(params)
}

func (r *TemplateRepository) AdjustUsageCount(ctx context.Context, id uint, delta int) error {
	// GREATEST ile sayaç sıfırın altına inmez; best-effort bakım.
	return r.Db.WithContext(ctx).Model(&models.Template{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("GREATEST(usage_count + ?, 0)", delta)).Error
}

func (r *TemplateRepository) SetUsageCount(ctx context.Context, id uint, count int64) error {
	return r.Db.WithContext(ctx).Model(&models.Template{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", count).Error
}

// ClearCategory kategorisi silinen şablonların bağını koparır.
func (r *TemplateRepository) ClearCategory(ctx context.Context, categoryID uint) error {
	return r.Db.WithContext(ctx).Model(&models.Template{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
}

var _ ITemplateRepository = (*TemplateRepository)(nil)
