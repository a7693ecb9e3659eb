package repositories

import (
	"context"
	"errors"

	"rehber.link/configs/configslog"
	"rehber.link/models"
	"rehber.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IContactRepository rehber kayıtlarının veritabanı işlemleri için arayüz.
type IContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Contact, error)
	FindBySlug(ctx context.Context, slug string) (*models.Contact, error)
	SlugExists(ctx context.Context, slug string, exceptID uint) (bool, error)
	FindPaginated(ctx context.Context, filter ContactFilter, params queryparams.ListParams) ([]models.Contact, int64, error)
	Count(ctx context.Context, filter ContactFilter) (int64, error)
}

// ContactRepository IContactRepository arayüzünü uygular.
type ContactRepository struct {
	base IBaseRepository[models.Contact]
}

// NewContactRepository verilen bağlantı ile yeni bir ContactRepository oluşturur.
func NewContactRepository(db *gorm.DB) IContactRepository {
	base := NewBaseRepository[models.Contact](db)
	base.SetAllowedSortColumns([]string{"name", "created_at", "contact_type"})
	base.SetDefaultOrder(DefaultOrder)
	base.SetSearchColumn("name")
	return &ContactRepository{base: base}
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.base.Create(ctx, contact)
}

func (r *ContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	if contact == nil || contact.ID == 0 {
		return errors.New("güncellenecek kaydın ID'si yok")
	}
	return r.base.Save(ctx, contact)
}

func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

func (r *ContactRepository) FindByID(ctx context.Context, id uint) (*models.Contact, error) {
	return r.base.FindByID(ctx, id)
}

func (r *ContactRepository) FindBySlug(ctx context.Context, slug string) (*models.Contact, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	contact, err := r.base.FindOne(ctx, WithSlug(slug))
	if err != nil && !errors.Is(err, ErrNotFound) {
		configslog.Log.Error("ContactRepository.FindBySlug: DB hatası", zap.String("slug", slug), zap.Error(err))
	}
	return contact, err
}

// SlugExists silinmiş kayıtlar dahil slug'ın kullanımda olup olmadığını
// kontrol eder; exceptID verilirse o kayıt hariç tutulur.
func (r *ContactRepository) SlugExists(ctx context.Context, slug string, exceptID uint) (bool, error) {
	return r.base.Exists(ctx, true, WithSlug(slug), excludeID(exceptID))
}

// FindPaginated filtreye uyan kayıtları sayfalı döndürür; params.Name ad
// alanında aranır, sort_by verilmezse DefaultOrder uygulanır.
func (r *ContactRepository) FindPaginated(ctx context.Context, filter ContactFilter, params queryparams.ListParams) ([]models.Contact, int64, error) {
	return r.base.GetAll(ctx, params, filter.Scopes()...)
}

func (r *ContactRepository) Count(ctx context.Context, filter ContactFilter) (int64, error) {
	return r.base.GetCount(ctx, filter.Scopes()...)
}

var _ IContactRepository = (*ContactRepository)(nil)
