package repositories

import (
	"context"
	"errors"
	"strings"

	"rehber.link/configs/configslog"
	"rehber.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndürdüğü hatadır.
var ErrNotFound = errors.New("kayıt bulunamadı")

// Scope bir sorguya koşul/sıralama ekleyen GORM scope fonksiyonudur.
type Scope = func(*gorm.DB) *gorm.DB

// IBaseRepository tek bir model tipi için ortak CRUD işlemleridir.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindOne(ctx context.Context, scopes ...Scope) (*T, error)
	Exists(ctx context.Context, unscoped bool, scopes ...Scope) (bool, error)
	GetCount(ctx context.Context, scopes ...Scope) (int64, error)
	GetAll(ctx context.Context, params queryparams.ListParams, scopes ...Scope) ([]T, int64, error)
	SetAllowedSortColumns(columns []string)
	SetDefaultOrder(order Scope)
	SetSearchColumn(column string)
}

// BaseRepository IBaseRepository'nin GORM ile yazılmış karşılığıdır.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
	defaultOrder       Scope
	searchColumn       string
}

// NewBaseRepository verilen bağlantı için yeni bir repository oluşturur. Bir
// transaction içinde çalışmak için db yerine tx verilir.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]bool{"id": true, "created_at": true},
		defaultOrder:       func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") },
		searchColumn:       "name",
	}
}

func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]bool, len(columns))
	for _, c := range columns {
		r.allowedSortColumns[c] = true
	}
}

// SetDefaultOrder sort_by verilmediğinde (veya izinli değilse) kullanılacak sıralamadır.
func (r *BaseRepository[T]) SetDefaultOrder(order Scope) {
	r.defaultOrder = order
}

// SetSearchColumn ListParams.Name ile aranacak sütunu belirler. Boş ise arama yapılmaz.
func (r *BaseRepository[T]) SetSearchColumn(column string) {
	r.searchColumn = column
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("oluşturulacak kayıt nil olamaz")
	}
	return r.getDB(ctx).Create(entity).Error
}

// Save kaydın tüm alanlarını yazar (boş değerler dahil).
func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("kaydedilecek kayıt nil olamaz")
	}
	return r.getDB(ctx).Save(entity).Error
}

// Delete kaydı soft delete ile siler.
func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	err := r.getDB(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BaseRepository.FindByID: DB hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindOne(ctx context.Context, scopes ...Scope) (*T, error) {
	var entity T
	err := r.getDB(ctx).Scopes(scopes...).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Exists koşula uyan kayıt olup olmadığını söyler. unscoped true ise soft
// delete edilmiş kayıtlar da sayılır (benzersiz index kontrolleri için).
func (r *BaseRepository[T]) Exists(ctx context.Context, unscoped bool, scopes ...Scope) (bool, error) {
	query := r.getDB(ctx).Model(new(T))
	if unscoped {
		query = query.Unscoped()
	}
	var count int64
	if err := query.Scopes(scopes...).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BaseRepository[T]) GetCount(ctx context.Context, scopes ...Scope) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(new(T)).Scopes(scopes...).Count(&count).Error
	return count, err
}

// GetAll scope'lara uyan kayıtları sayfalı olarak döndürür. Toplam sayı
// sayfalama uygulanmadan önce hesaplanır.
func (r *BaseRepository[T]) GetAll(ctx context.Context, params queryparams.ListParams, scopes ...Scope) ([]T, int64, error) {
	var results []T
	var totalCount int64

	query := r.getDB(ctx).Model(new(T)).Scopes(scopes...)
	if params.Name != "" && r.searchColumn != "" {
		query = query.Scopes(ILike(r.searchColumn, params.Name))
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	query = query.Scopes(r.orderScope(params))
	query = query.Limit(params.PerPage).Offset(params.CalculateOffset())
	err := query.Find(&results).Error
	return results, totalCount, err
}

func (r *BaseRepository[T]) orderScope(params queryparams.ListParams) Scope {
	if r.allowedSortColumns[params.SortBy] {
		orderBy := strings.ToLower(params.OrderBy)
		if orderBy != "asc" && orderBy != "desc" {
			orderBy = queryparams.DefaultOrderBy
		}
		column := params.SortBy
		return func(db *gorm.DB) *gorm.DB {
			return db.Order(column + " " + strings.ToUpper(orderBy)).Order("id ASC")
		}
	}
	return r.defaultOrder
}

// ILike sütunda büyük/küçük harf duyarsız alt dizi araması yapar.
// % ve _ karakterleri kaçışlanır.
func ILike(column, term string) Scope {
	escaped := likeEscaper.Replace(term)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" ILIKE ?", "%"+escaped+"%")
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
