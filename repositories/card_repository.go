package repositories

import (
	"context"
	"errors"
	"strings"

	"kart.link/configs/configsdatabase"
	"kart.link/models"
	"kart.link/pkg/queryparams"

	"gorm.io/gorm"
)

// ICardRepository kartvizit veritabanı işlemleri için arayüz.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	GetCardByID(id uint) (*models.Card, error)
	// GetCardBySlug public erişim: slug küçük harfe normalize edilerek aranır.
	GetCardBySlug(slug string) (*models.Card, error)
	SlugExists(slug string) (bool, error)
	UpdateCard(ctx context.Context, card *models.Card) error
	UpdateDetail(ctx context.Context, detail *models.CardDetail) error
	DeleteCard(ctx context.Context, id uint) error
	FindAllCardsByUserIDPaginated(userID uint, params queryparams.ListParams) ([]models.Card, int64, error)
	CountCardsByUserID(userID uint) (int64, error)
	CountCardsByTemplateID(templateID uint) (int64, error)
	GetCardCount() (int64, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	Base *BaseRepository[models.Card]
	Db   *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	db := configsdatabase.GetDB()
	return NewCardRepositoryTx(db)
}

// NewCardRepositoryTx transaction içinde çalışan repository oluşturur.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "is_enabled", "slug"})
	return &CardRepository{Base: base, Db: tx}
}

// CreateCard kartı ve detayını (cascade) oluşturur.
func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	return r.Base.Create(ctx, card)
}

// GetCardByID kartviziti ID ile bulur (Detail ve Template ile).
func (r *CardRepository) GetCardByID(id uint) (*models.Card, error) {
	var result models.Card
	err := r.Db.Preload("Detail").Preload("Template").First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &result, err
}

// GetCardBySlug kartviziti public slug ile bulur. Arama büyük/küçük harf
// duyarsızdır; slug'lar küçük harfle saklanır.
func (r *CardRepository) GetCardBySlug(slug string) (*models.Card, error) {
	var result models.Card
	err := r.Db.Preload("Detail").Preload("Template").
		Where("slug = ?", strings.ToLower(slug)).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &result, err
}

// SlugExists slug'ın (silinmişler dahil değil) kullanımda olup olmadığına bakar.
func (r *CardRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.Db.Model(&models.Card{}).
		Where("slug = ?", strings.ToLower(slug)).
		Count(&count).Error
	return count > 0, err
}

// UpdateCard kart ana kaydını kaydeder; hook'lar çalışır.
func (r *CardRepository) UpdateCard(ctx context.Context, card *models.Card) error {
	return r.Base.Save(ctx, card)
}

// UpdateDetail detay kaydını kaydeder.
func (r *CardRepository) UpdateDetail(ctx context.Context, detail *models.CardDetail) error {
	return r.Db.WithContext(ctx).Save(detail).Error
}

// DeleteCard kartviziti siler; Detail cascade ile silinir.
func (r *CardRepository) DeleteCard(ctx context.Context, id uint) error {
	return r.Base.Delete(ctx, id)
}

// FindAllCardsByUserIDPaginated kullanıcıya ait kartvizitleri listeler.
func (r *CardRepository) FindAllCardsByUserIDPaginated(userID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	var results []models.Card
	var totalCount int64

	query := r.Db.Model(&models.Card{}).
		Joins("JOIN card_details ON card_details.card_id = cards.id AND card_details.deleted_at IS NULL").
		Where("cards.creator_user_id = ?", userID)

	if params.Name != "" {
		searchValue := "%" + strings.ToLower(params.Name) + "%"
		query = query.Where(
			r.Db.Where("lower(card_details.name) LIKE ?", searchValue).
				Or("lower(card_details.company) LIKE ?", searchValue).
				Or("cards.slug LIKE ?", searchValue),
		)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "cards.id",
		"created_at": "cards.created_at",
		"is_enabled": "cards.is_enabled",
		"slug":       "cards.slug",
		"name":       "card_details.name",
		"company":    "card_details.company",
	}
	orderColumn := "cards.created_at"
	if dbCol, ok := allowedSortColumns[params.SortBy]; ok {
		orderColumn = dbCol
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.Order(orderColumn + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Select("cards.*").
		Preload("Detail").
		Preload("Template").
		Find(&results).Error

	return results, totalCount, err
}

// CountCardsByUserID kullanıcıya ait kartvizit sayısını alır.
func (r *CardRepository) CountCardsByUserID(userID uint) (int64, error) {
	var count int64
	err := r.Db.Model(&models.Card{}).Where("creator_user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountCardsByTemplateID şablonu kullanan canlı kart sayısını alır
// (UsageCount mutabakatı için).
func (r *CardRepository) CountCardsByTemplateID(templateID uint) (int64, error) {
	var count int64
	err := r.Db.Model(&models.Card{}).Where("template_id = ?", templateID).Count(&count).Error
	return count, err
}

// GetCardCount toplam kartvizit sayısını alır.
func (r *CardRepository) GetCardCount() (int64, error) {
	return r.Base.GetCount()
}

var _ ICardRepository = (*CardRepository)(nil)
