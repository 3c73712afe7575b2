package services

import (
	"context"
	"errors"

	"kart.link/configs"
	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/queryparams"
	"kart.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryServiceError özel servis hataları
type CategoryServiceError string

func (e CategoryServiceError) Error() string { return string(e) }

const (
	ErrCategoryNotFound       CategoryServiceError = "kategori bulunamadı"
	ErrCategoryCreationFailed CategoryServiceError = "kategori oluşturulamadı"
	ErrCategoryUpdateFailed   CategoryServiceError = "kategori güncellenemedi"
	ErrCategoryDeletionFailed CategoryServiceError = "kategori silinemedi"
	ErrCategoryNameRequired   CategoryServiceError = "kategori adı zorunludur"
)

// ICategoryService şablon kategorileri yönetimi.
type ICategoryService interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	GetActiveCategories() ([]models.Category, error)
	GetAllCategoriesPaginated(params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

// CategoryService ICategoryService arayüzünü uygular.
type CategoryService struct {
	repo repositories.ICategoryRepository
	db   *gorm.DB
}

// NewCategoryService yeni bir CategoryService örneği oluşturur.
func NewCategoryService() ICategoryService {
	return &CategoryService{
		repo: repositories.NewCategoryRepository(),
		db:   configs.GetDB(),
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	if category == nil || category.Name == "" {
		return ErrCategoryNameRequired
	}
	if err := s.repo.Create(ctx, category); err != nil {
		configslog.Log.Error("Kategori oluşturulurken hata", zap.String("name", category.Name), zap.Error(err))
		return ErrCategoryCreationFailed
	}
	configslog.SLog.Infof("Kategori oluşturuldu: %s (ID: %d)", category.Name, category.ID)
	return nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetActiveCategories() ([]models.Category, error) {
	return s.repo.ListActive()
}

func (s *CategoryService) GetAllCategoriesPaginated(params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "name"
	}
	categories, totalCount, err := s.repo.ListAllPaginated(params)
	if err != nil {
		configslog.Log.Error("Kategoriler listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: categories,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, category *models.Category) error {
	if category == nil || category.Name == "" {
		return ErrCategoryNameRequired
	}
	if _, err := s.repo.FindByID(ctx, category.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	if err := s.repo.Save(ctx, category); err != nil {
		configslog.Log.Error("Kategori güncellenirken hata", zap.Uint("id", category.ID), zap.Error(err))
		return ErrCategoryUpdateFailed
	}
	return nil
}

// DeleteCategory kategoriyi siler; bağlı şablonların kategorisi temizlenir
// (SET NULL), şablonlar silinmez.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		tplRepoTx := repositories.NewTemplateRepositoryTx(tx)
		catRepoTx := repositories.NewCategoryRepositoryTx(tx)

		if err := tplRepoTx.ClearCategory(ctx, id); err != nil {
			return err
		}
		return catRepoTx.Delete(ctx, id)
	})
	if txErr != nil {
		configslog.Log.Error("Kategori silinirken hata", zap.Uint("id", id), zap.Error(txErr))
		return ErrCategoryDeletionFailed
	}
	configslog.SLog.Infof("Kategori silindi: ID %d", id)
	return nil
}

var _ ICategoryService = (*CategoryService)(nil)
