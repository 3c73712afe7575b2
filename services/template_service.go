package services

import (
	"context"
	"errors"
	"fmt"

	"kart.link/configs"
	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/queryparams"
	"kart.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TemplateServiceError özel servis hataları
type TemplateServiceError string

func (e TemplateServiceError) Error() string { return string(e) }

const (
	ErrTemplateNotFound       TemplateServiceError = "şablon bulunamadı"
	ErrTemplateCreationFailed TemplateServiceError = "şablon oluşturulamadı"
	ErrTemplateUpdateFailed   TemplateServiceError = "şablon güncellenemedi"
	ErrTemplateDeletionFailed TemplateServiceError = "şablon silinemedi"
	ErrTemplateInUse          TemplateServiceError = "şablon kullanımda olduğu için silinemez"
	ErrTplInvalidInput        TemplateServiceError = "geçersiz girdi verisi"
	ErrTemplateNameRequired   TemplateServiceError = "şablon adı zorunludur"
)

// ITemplateService şablon yönetimi (dashboard) ve seçim listesi (panel).
type ITemplateService interface {
	CreateTemplate(ctx context.Context, template *models.Template) error
	GetTemplateByID(id uint) (*models.Template, error)
	GetActiveTemplates() ([]models.Template, error)
	GetAllTemplatesPaginated(params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateTemplate(ctx context.Context, template *models.Template) error
	DeleteTemplate(ctx context.Context, id uint) error
	// RecountUsage sayaç bozulmalarına karşı gerçek kart sayısından senkronlar.
	RecountUsage(ctx context.Context, id uint) error
}

// TemplateService ITemplateService arayüzünü uygular.
type TemplateService struct {
	repo     repositories.ITemplateRepository
	cardRepo repositories.ICardRepository
	db       *gorm.DB
}

// NewTemplateService yeni bir TemplateService örneği oluşturur.
func NewTemplateService() ITemplateService {
	return &TemplateService{
		repo:     repositories.NewTemplateRepository(),
		cardRepo: repositories.NewCardRepository(),
		db:       configs.GetDB(),
	}
}

func validateTemplate(template *models.Template) error {
	if template == nil {
		return ErrTplInvalidInput
	}
	if template.Name == "" {
		return ErrTemplateNameRequired
	}
	return nil
}

func (s *TemplateService) CreateTemplate(ctx context.Context, template *models.Template) error {
	if err := validateTemplate(template); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, template); err != nil {
		configslog.Log.Error("Şablon oluşturulurken hata", zap.String("name", template.Name), zap.Error(err))
		return ErrTemplateCreationFailed
	}
	configslog.SLog.Infof("Şablon oluşturuldu: %s (ID: %d)", template.Name, template.ID)
	return nil
}

func (s *TemplateService) GetTemplateByID(id uint) (*models.Template, error) {
	template, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) GetActiveTemplates() ([]models.Template, error) {
	return s.repo.ListActive()
}

func (s *TemplateService) GetAllTemplatesPaginated(params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "sort_order"
	}
	templates, totalCount, err := s.repo.ListAllPaginated(params)
	if err != nil {
		configslog.Log.Error("Şablonlar listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: templates,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, template *models.Template) error {
	if err := validateTemplate(template); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(template.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	if err := s.repo.Save(ctx, template); err != nil {
		configslog.Log.Error("Şablon güncellenirken hata", zap.Uint("id", template.ID), zap.Error(err))
		return ErrTemplateUpdateFailed
	}
	configslog.SLog.Infof("Şablon güncellendi: ID %d", template.ID)
	return nil
}

// DeleteTemplate şablonu siler. Kart FK'sı RESTRICT olduğundan kullanımdaki
// şablon silinemez; hatayı veritabanına düşmeden önce burada yakalarız.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	count, err := s.cardRepo.CountCardsByTemplateID(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w (%d kart)", ErrTemplateInUse, count)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		configslog.Log.Error("Şablon silinirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrTemplateDeletionFailed
	}
	configslog.SLog.Infof("Şablon silindi: ID %d", id)
	return nil
}

// RecountUsage sayaç en-iyi-çaba tutulduğundan zamanla kayabilir; gerçek
// sayıyı kartlardan okuyup yazar.
func (s *TemplateService) RecountUsage(ctx context.Context, id uint) error {
	count, err := s.cardRepo.CountCardsByTemplateID(id)
	if err != nil {
		return err
	}
	return s.repo.SetUsageCount(ctx, id, count)
}

var _ ITemplateService = (*TemplateService)(nil)
