package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kart.link/configs"
	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/cardconfig"
	"kart.link/pkg/cardrender"
	"kart.link/pkg/queryparams"
	"kart.link/pkg/sharetext"
	"kart.link/repositories"
	"kart.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "kartvizit bulunamadı"
	ErrCardCreationFailed CardServiceError = "kartvizit oluşturulamadı"
	ErrCardUpdateFailed   CardServiceError = "kartvizit güncellenemedi"
	ErrCardDeletionFailed CardServiceError = "kartvizit silinemedi"
	ErrCardForbidden      CardServiceError = "bu işlem için yetkiniz yok"
	ErrCrdInvalidInput    CardServiceError = "geçersiz girdi verisi"
	ErrCardNameRequired   CardServiceError = "isim zorunludur"
	ErrCardSlugTaken      CardServiceError = "bu adres (slug) zaten kullanımda"
	ErrCrdTemplateMissing CardServiceError = "kartvizit şablonu bulunamadı"
)

// CardInput editor'ün her kayıtta gönderdiği tam kart verisi.
// Kayıt tam değiştirmedir (patch değil).
type CardInput struct {
	Slug       string
	TemplateID uint
	IsEnabled  bool
	Detail     models.CardDetail
}

// ICardService kartvizit işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, creatorUserID uint, input CardInput) (*models.Card, error)
	GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error)
	GetCardBySlug(ctx context.Context, slug string) (*models.Card, error) // Public erişim
	GetCardsForUser(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateCard(ctx context.Context, id uint, updatingUserID uint, input CardInput) error
	// RenameSlug slug değişikliği: canlı URL kimliği yalnız bu yoldan değişir.
	RenameSlug(ctx context.Context, id uint, requestingUserID uint, newSlug string) error
	DeleteCard(ctx context.Context, id uint, deletingUserID uint) error
	CheckSlugAvailable(ctx context.Context, slug string) (bool, error)
	GetCardCountForUser(ctx context.Context, creatorUserID uint) (int64, error)
	// ComposeView kart + şablon konfigürasyonundan görsel ağacı üretir.
	ComposeView(card *models.Card, preview bool, locale sharetext.Locale, now time.Time) cardrender.View
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo     repositories.ICardRepository
	tplRepo  repositories.ITemplateRepository
	userRepo repositories.IUserRepository
	db       *gorm.DB
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return &CardService{
		repo:     repositories.NewCardRepository(),
		tplRepo:  repositories.NewTemplateRepository(),
		userRepo: repositories.NewUserRepository(),
		db:       configs.GetDB(),
	}
}

// ValidateCardInput temel validasyonları yapar.
func ValidateCardInput(input CardInput) error {
	if input.Detail.Name == "" {
		return ErrCardNameRequired
	}
	if input.TemplateID == 0 {
		return ErrCrdTemplateMissing
	}
	return nil
}

// CreateCard yeni kartviziti, detayını ve slug'ını tek transaction içinde
// oluşturur; şablonun kullanım sayacını artırır.
func (s *CardService) CreateCard(ctx context.Context, creatorUserID uint, input CardInput) (*models.Card, error) {
	if err := ValidateCardInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz oluşturan kullanıcı ID", ErrCrdInvalidInput)
	}

	if _, err := s.tplRepo.FindByID(input.TemplateID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCrdTemplateMissing
		}
		return nil, err
	}

	var createdCard *models.Card

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, creatorUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		tplRepoTx := repositories.NewTemplateRepositoryTx(tx)

		// a. Slug belirle: boşsa rastgele ddd-ddd üret, doluysa sanitize et.
		slug, err := s.resolveSlug(cardRepoTx, input.Slug)
		if err != nil {
			return err
		}

		// b. Card + Detail oluştur (Detail cascade ile kaydedilir).
		card := models.Card{
			Slug:          slug,
			CreatorUserID: creatorUserID,
			TemplateID:    input.TemplateID,
			IsEnabled:     input.IsEnabled,
			Detail:        input.Detail,
		}
		if err := cardRepoTx.CreateCard(txCtx, &card); err != nil {
			configslog.Log.Error("Kartvizit oluşturulurken transaction hatası", zap.Error(err))
			return ErrCardCreationFailed
		}

		// c. Şablon benimsendi: kullanım sayacı +1 (best-effort bakım).
		if err := tplRepoTx.AdjustUsageCount(txCtx, input.TemplateID, 1); err != nil {
			configslog.Log.Warn("Şablon kullanım sayacı artırılamadı", zap.Uint("templateID", input.TemplateID), zap.Error(err))
		}

		createdCard = &card
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Kartvizit oluşturuldu: ID %d, slug %s", createdCard.ID, createdCard.Slug)
	return createdCard, nil
}

// resolveSlug girilen slug'ı doğrular ya da boşsa benzersiz rastgele üretir.
func (s *CardService) resolveSlug(repo repositories.ICardRepository, requested string) (string, error) {
	if requested != "" {
		slug := utils.SanitizeSlug(requested)
		if err := utils.ValidateSlug(slug); err != nil {
			return "", fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
		}
		exists, err := repo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrCardSlugTaken
		}
		return slug, nil
	}

	// Varsayılan: rastgele ddd-ddd; çakışırsa yeniden dene.
	const maxAttempts = 5
	for i := 0; i < maxAttempts; i++ {
		slug, err := utils.RandomSlug()
		if err != nil {
			return "", ErrCardCreationFailed
		}
		exists, err := repo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		configslog.SLog.Warnf("Slug çakışması, yeniden deneniyor: %s", slug)
	}
	return "", ErrCardCreationFailed
}

// GetCardByID belirli bir kartviziti ID ve kullanıcı yetkisine göre getirir.
func (s *CardService) GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error) {
	card, err := s.repo.GetCardByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByID: repo hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	requestingUser, userErr := s.userRepo.FindByID(ctx, requestingUserID)
	if userErr != nil {
		return nil, ErrCardForbidden
	}
	if !requestingUser.IsSystem && card.CreatorUserID != requestingUserID {
		configslog.Log.Warn("Yetkisiz kartvizit erişim denemesi",
			zap.Uint("cardID", id), zap.Uint("userID", requestingUserID))
		return nil, ErrCardForbidden
	}
	return card, nil
}

// GetCardBySlug public slug ile kartviziti getirir. Pasif kart, dışarıya
// "bulunamadı" olarak görünür.
func (s *CardService) GetCardBySlug(ctx context.Context, slug string) (*models.Card, error) {
	if slug == "" {
		return nil, ErrCardNotFound
	}
	card, err := s.repo.GetCardBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardBySlug: repo hatası", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	if !card.IsEnabled {
		configslog.SLog.Infof("Pasif kartvizit erişim denemesi: %s", slug)
		return nil, ErrCardNotFound
	}
	return card, nil
}

// GetCardsForUser kullanıcıya ait kartvizitleri sayfalayarak getirir.
func (s *CardService) GetCardsForUser(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if creatorUserID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	cards, totalCount, err := s.repo.FindAllCardsByUserIDPaginated(creatorUserID, params)
	if err != nil {
		configslog.Log.Error("Kullanıcı kartvizitleri alınırken hata", zap.Uint("creatorUserID", creatorUserID), zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateCard kartviziti tam değiştirme (full replace) ile günceller.
// Şablon değişmişse kullanım sayaçları taşınır.
func (s *CardService) UpdateCard(ctx context.Context, id uint, updatingUserID uint, input CardInput) error {
	if err := ValidateCardInput(input); err != nil {
		return fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}
	if id == 0 || updatingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya güncelleyen kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, updatingUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		tplRepoTx := repositories.NewTemplateRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		// a. Mevcut kaydı kilitli olarak al.
		var existingCard models.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Detail").First(&existingCard, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		// b. Yetki kontrolü.
		requestingUser, userErr := userRepoTx.FindByID(txCtx, updatingUserID)
		if userErr != nil {
			return ErrCardForbidden
		}
		if !requestingUser.IsSystem && existingCard.CreatorUserID != updatingUserID {
			return ErrCardForbidden
		}

		// c. Şablon değişimi: eski -1, yeni +1.
		if input.TemplateID != existingCard.TemplateID {
			if _, tplErr := tplRepoTx.FindByID(input.TemplateID); tplErr != nil {
				return ErrCrdTemplateMissing
			}
			if err := tplRepoTx.AdjustUsageCount(txCtx, existingCard.TemplateID, -1); err != nil {
				configslog.Log.Warn("Eski şablon sayacı azaltılamadı", zap.Error(err))
			}
			if err := tplRepoTx.AdjustUsageCount(txCtx, input.TemplateID, 1); err != nil {
				configslog.Log.Warn("Yeni şablon sayacı artırılamadı", zap.Error(err))
			}
			existingCard.TemplateID = input.TemplateID
		}

		// d. Ana kayıt + detay: tam değiştirme. Slug burada DEĞİŞMEZ
		// (yeniden adlandırma ayrı yol: RenameSlug).
		existingCard.IsEnabled = input.IsEnabled

		detail := input.Detail
		detail.ID = existingCard.Detail.ID
		detail.CardID = existingCard.ID
		detail.CreatedAt = existingCard.Detail.CreatedAt
		detail.CreatedBy = existingCard.Detail.CreatedBy

		if err := cardRepoTx.UpdateDetail(txCtx, &detail); err != nil {
			configslog.Log.Error("Kartvizit detayı güncellenirken hata", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}
		if err := cardRepoTx.UpdateCard(txCtx, &existingCard); err != nil {
			configslog.Log.Error("Kartvizit güncellenirken hata", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	configslog.SLog.Infof("Kartvizit güncellendi: ID %d", id)
	return nil
}

// RenameSlug kartın public kimliğini değiştirir. Anlamsal olarak eski
// adresin silinip yenisinin oluşturulmasıdır; tek transaction içinde atomik
// takasla uygulanır ki iki ad arasında sahipsiz an kalmasın.
func (s *CardService) RenameSlug(ctx context.Context, id uint, requestingUserID uint, newSlug string) error {
	slug := utils.SanitizeSlug(newSlug)
	if err := utils.ValidateSlug(slug); err != nil {
		return fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, requestingUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		var card models.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&card, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		requestingUser, userErr := userRepoTx.FindByID(txCtx, requestingUserID)
		if userErr != nil {
			return ErrCardForbidden
		}
		if !requestingUser.IsSystem && card.CreatorUserID != requestingUserID {
			return ErrCardForbidden
		}

		if card.Slug == slug {
			return nil // değişiklik yok
		}
		exists, err := cardRepoTx.SlugExists(slug)
		if err != nil {
			return err
		}
		if exists {
			return ErrCardSlugTaken
		}

		card.Slug = slug
		return cardRepoTx.UpdateCard(txCtx, &card)
	})
	if txErr != nil {
		return txErr
	}

	configslog.SLog.Infof("Kartvizit yeniden adlandırıldı: ID %d -> %s", id, slug)
	return nil
}

// DeleteCard kartviziti siler ve şablon sayacını azaltır.
func (s *CardService) DeleteCard(ctx context.Context, id uint, deletingUserID uint) error {
	if id == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya silen kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, deletingUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		tplRepoTx := repositories.NewTemplateRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		var cardToDelete models.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cardToDelete, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		requestingUser, userErr := userRepoTx.FindByID(txCtx, deletingUserID)
		if userErr != nil {
			return ErrCardForbidden
		}
		if !requestingUser.IsSystem && cardToDelete.CreatorUserID != deletingUserID {
			return ErrCardForbidden
		}

		if err := cardRepoTx.DeleteCard(txCtx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("Kartvizit silinirken hata", zap.Uint("id", id), zap.Error(err))
			return ErrCardDeletionFailed
		}

		if err := tplRepoTx.AdjustUsageCount(txCtx, cardToDelete.TemplateID, -1); err != nil {
			configslog.Log.Warn("Şablon sayacı azaltılamadı", zap.Uint("templateID", cardToDelete.TemplateID), zap.Error(err))
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	configslog.SLog.Infof("Kartvizit silindi: ID %d", id)
	return nil
}

// CheckSlugAvailable kayıt öncesi uygunluk kontrolü (editor inline doğrulama).
func (s *CardService) CheckSlugAvailable(ctx context.Context, slug string) (bool, error) {
	sanitized := utils.SanitizeSlug(slug)
	if err := utils.ValidateSlug(sanitized); err != nil {
		return false, nil
	}
	exists, err := s.repo.SlugExists(sanitized)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// GetCardCountForUser kullanıcıya ait kartvizit sayısını alır.
func (s *CardService) GetCardCountForUser(ctx context.Context, creatorUserID uint) (int64, error) {
	return s.repo.CountCardsByUserID(creatorUserID)
}

// ComposeView persistans kaydından render girdilerini toplar ve görsel
// ağacı üretir. Render totaldir; buradan hata dönmez.
func (s *CardService) ComposeView(card *models.Card, preview bool, locale sharetext.Locale, now time.Time) cardrender.View {
	app := configs.Get()
	return ComposeCardView(card, app.PublicOrigin, app.PublicBasePath, preview, locale, now)
}

// ComposeCardView model -> render girdisi köprüsü. Çekirdek render paketi
// persistans modellerini tanımaz; kopyalama burada yapılır.
func ComposeCardView(card *models.Card, origin, basePath string, preview bool, locale sharetext.Locale, now time.Time) cardrender.View {
	content := cardrender.Content{
		Slug:         card.Slug,
		Name:         card.Detail.Name,
		Title:        card.Detail.Title,
		Company:      card.Detail.Company,
		Bio:          card.Detail.Bio,
		Email:        card.Detail.Email,
		Phone:        card.Detail.Phone,
		WhatsApp:     card.Detail.WhatsApp,
		Website:      card.Detail.Website,
		ProfileImage: card.Detail.ProfileImageURL,
		Social:       []cardconfig.SocialLink(card.Detail.SocialLinks),
	}
	return cardrender.Render(content, card.Detail.Overrides.Data(), card.Template.Config.Data(), cardrender.Options{
		Origin:   origin,
		BasePath: basePath,
		Preview:  preview,
		Locale:   locale,
		Now:      now,
	})
}

var _ ICardService = (*CardService)(nil)
