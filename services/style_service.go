package services

import (
	"context"
	"errors"

	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/cardconfig"
	"kart.link/pkg/queryparams"
	"kart.link/repositories"

	"go.uber.org/zap"
)

// StyleServiceError özel servis hataları
type StyleServiceError string

func (e StyleServiceError) Error() string { return string(e) }

const (
	ErrStyleNotFound       StyleServiceError = "görsel stil bulunamadı"
	ErrStyleCreationFailed StyleServiceError = "görsel stil oluşturulamadı"
	ErrStyleUpdateFailed   StyleServiceError = "görsel stil güncellenemedi"
	ErrStyleDeletionFailed StyleServiceError = "görsel stil silinemedi"
	ErrStyleNameRequired   StyleServiceError = "stil adı zorunludur"
)

// IStyleService görsel stil ön ayarları: dashboard CRUD + şablon konfigürasyonuna
// uygulama.
type IStyleService interface {
	CreateStyle(ctx context.Context, style *models.VisualStyle) error
	GetStyleByID(id uint) (*models.VisualStyle, error)
	GetActiveStyles() ([]models.VisualStyle, error)
	GetAllStylesPaginated(params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateStyle(ctx context.Context, style *models.VisualStyle) error
	DeleteStyle(ctx context.Context, id uint) error
	// ApplyToConfig stilin ön ayar alanlarını hedef konfigürasyonun üstüne
	// yazar. Yalnız stilde ayarlı (non-nil) alanlar taşınır; hedefin diğer
	// alanları korunur. Dönen değer yeni bir kopyadır.
	ApplyToConfig(styleID uint, target cardconfig.Params) (cardconfig.Params, error)
}

// StyleService IStyleService arayüzünü uygular.
type StyleService struct {
	repo repositories.IStyleRepository
}

// NewStyleService yeni bir StyleService örneği oluşturur.
func NewStyleService() IStyleService {
	return &StyleService{repo: repositories.NewStyleRepository()}
}

func (s *StyleService) CreateStyle(ctx context.Context, style *models.VisualStyle) error {
	if style == nil || style.Name == "" {
		return ErrStyleNameRequired
	}
	if err := s.repo.Create(ctx, style); err != nil {
		configslog.Log.Error("Görsel stil oluşturulurken hata", zap.String("name", style.Name), zap.Error(err))
		return ErrStyleCreationFailed
	}
	configslog.SLog.Infof("Görsel stil oluşturuldu: %s (ID: %d)", style.Name, style.ID)
	return nil
}

func (s *StyleService) GetStyleByID(id uint) (*models.VisualStyle, error) {
	style, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStyleNotFound
		}
		return nil, err
	}
	return style, nil
}

func (s *StyleService) GetActiveStyles() ([]models.VisualStyle, error) {
	return s.repo.ListActive()
}

func (s *StyleService) GetAllStylesPaginated(params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "name"
	}
	styles, totalCount, err := s.repo.ListAllPaginated(params)
	if err != nil {
		configslog.Log.Error("Görsel stiller listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: styles,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *StyleService) UpdateStyle(ctx context.Context, style *models.VisualStyle) error {
	if style == nil || style.Name == "" {
		return ErrStyleNameRequired
	}
	if _, err := s.repo.FindByID(style.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStyleNotFound
		}
		return err
	}
	if err := s.repo.Save(ctx, style); err != nil {
		configslog.Log.Error("Görsel stil güncellenirken hata", zap.Uint("id", style.ID), zap.Error(err))
		return ErrStyleUpdateFailed
	}
	return nil
}

func (s *StyleService) DeleteStyle(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStyleNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		configslog.Log.Error("Görsel stil silinirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrStyleDeletionFailed
	}
	configslog.SLog.Infof("Görsel stil silindi: ID %d", id)
	return nil
}

// ApplyToConfig stil ön ayarını şablon konfigürasyonuna tohumlar. Stiller
// başlık geometrisi + tema alanlarına odaklıdır; içerik görünürlüğü veya
// davet alanlarına dokunmaz.
func (s *StyleService) ApplyToConfig(styleID uint, target cardconfig.Params) (cardconfig.Params, error) {
	style, err := s.GetStyleByID(styleID)
	if err != nil {
		return target, err
	}
	preset := style.Preset.Data()

	copyStr := func(dst **string, src *string) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	copyInt := func(dst **int, src *int) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	copyBool := func(dst **bool, src *bool) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}

	copyStr(&target.ThemeType, preset.ThemeType)
	copyStr(&target.ThemeColor, preset.ThemeColor)
	copyStr(&target.ThemeGradient, preset.ThemeGradient)
	copyStr(&target.ThemeImage, preset.ThemeImage)
	copyBool(&target.DarkMode, preset.DarkMode)

	copyStr(&target.HeaderType, preset.HeaderType)
	copyInt(&target.HeaderHeight, preset.HeaderHeight)
	copyStr(&target.HeaderColor, preset.HeaderColor)
	copyBool(&target.HeaderGlassy, preset.HeaderGlassy)
	copyInt(&target.HeaderOpacity, preset.HeaderOpacity)

	copyStr(&target.PatternType, preset.PatternType)
	copyInt(&target.PatternOpacity, preset.PatternOpacity)
	copyInt(&target.PatternScale, preset.PatternScale)

	copyStr(&target.BodyAlign, preset.BodyAlign)
	copyInt(&target.BodyRadius, preset.BodyRadius)
	copyBool(&target.BodyGlassy, preset.BodyGlassy)
	copyInt(&target.BodyOpacity, preset.BodyOpacity)

	return target, nil
}

var _ IStyleService = (*StyleService)(nil)
