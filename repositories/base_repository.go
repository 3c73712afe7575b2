package repositories

import (
	"context"
	"errors"
	"strings"

	"kart.link/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound repository katmanının ortak "kayıt yok" hatası. Servisler bunu
// kendi tipli hatalarına çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm tablolar için ortak CRUD arayüzü.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	GetAll(params queryparams.ListParams) ([]T, int64, error)
	GetCount() (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository generik temel repository.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository verilen bağlantı (veya transaction) ile temel repository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]bool{"id": true, "created_at": true}}
}

// SetAllowedSortColumns sıralamaya izin verilen kolonları belirler
// (SQL enjeksiyonuna karşı beyaz liste).
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]bool, len(columns))
	for _, col := range columns {
		r.allowedSortColumns[col] = true
	}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &entity, err
}

// Update map tabanlı kısmi güncelleme. updatedBy denetim kolonuna yazılır.
func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	if updatedBy != 0 {
		data["updated_by"] = updatedBy
	}
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Save tam kayıt güncellemesi; BaseModel hook'ları çalışır.
func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAll sayfalı listeleme. Filtre gerektiren tablolar bu metodu override eder.
func (r *BaseRepository[T]) GetAll(params queryparams.ListParams) ([]T, int64, error) {
	var results []T
	var totalCount int64

	var entity T
	query := r.db.Model(&entity)

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	query = query.Order(r.orderClause(params)).
		Limit(params.PerPage).
		Offset(params.CalculateOffset())

	err := query.Find(&results).Error
	return results, totalCount, err
}

func (r *BaseRepository[T]) GetCount() (int64, error) {
	var entity T
	var count int64
	err := r.db.Model(&entity).Count(&count).Error
	return count, err
}

// orderClause beyaz listeye göre güvenli ORDER BY üretir.
func (r *BaseRepository[T]) orderClause(params queryparams.ListParams) string {
	sortBy := params.SortBy
	if !r.allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}
	return sortBy + " " + orderBy
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
