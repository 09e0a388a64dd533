package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vkart.link/pkg/queryparams"

	"gorm.io/gorm"
)

// IBaseRepository tüm entity repository'lerinin paylaştığı temel işlemler.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Delete(ctx context.Context, entity *T) error
	GetCount(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin GORM implementasyonu.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository verilen bağlantı (veya transaction) üzerinde çalışan
// bir base repository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]bool{"id": true, "created_at": true, "updated_at": true},
	}
}

// SetAllowedSortColumns sıralamaya açık sütunları belirler.
// Listede olmayan sort_by değerleri yok sayılır (SQL injection koruması).
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		allowed[c] = true
	}
	r.allowedSortColumns = allowed
}

// Create yeni kayıt ekler; unique ihlalini ErrDuplicateKey'e çevirir.
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("oluşturulacak kayıt nil olamaz")
	}
	return translateError(r.db.WithContext(ctx).Create(entity).Error)
}

// FindByID kaydı birincil anahtar ile bulur.
func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

// Delete kaydı kalıcı olarak siler.
func (r *BaseRepository[T]) Delete(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("silinecek kayıt nil olamaz")
	}
	return translateError(r.db.WithContext(ctx).Delete(entity).Error)
}

// GetCount tablodaki toplam kayıt sayısını döndürür.
func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var entity T
	var count int64
	err := r.db.WithContext(ctx).Model(&entity).Count(&count).Error
	return count, err
}

// SortClause izin verilen sütunlara göre güvenli ORDER BY ifadesi üretir.
func (r *BaseRepository[T]) SortClause(params queryparams.ListParams, fallback string) string {
	column := fallback
	if r.allowedSortColumns[params.SortBy] {
		column = params.SortBy
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}
	return fmt.Sprintf("%s %s", column, orderBy)
}

// translateError GORM hatalarını repository sentinel'lerine çevirir.
// TranslateError açık olduğu için sürücü farkı (postgres/sqlite) burada görünmez.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
