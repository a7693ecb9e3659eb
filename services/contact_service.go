package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"rehber.link/configs"
	"rehber.link/configs/configslog"
	"rehber.link/models"
	"rehber.link/pkg/markup"
	"rehber.link/pkg/queryparams"
	"rehber.link/repositories"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactServiceError özel servis hataları
type ContactServiceError string

func (e ContactServiceError) Error() string { return string(e) }

const (
	ErrContactNotFound       ContactServiceError = "kayıt bulunamadı"
	ErrContactInvalidInput   ContactServiceError = "geçersiz girdi verisi"
	ErrContactPageNotFound   ContactServiceError = "geçersiz sayfa"
	ErrContactSlugTaken      ContactServiceError = "bu slug başka bir kayıtta kullanılıyor"
	ErrContactCreationFailed ContactServiceError = "kayıt oluşturulamadı"
	ErrContactUpdateFailed   ContactServiceError = "kayıt güncellenemedi"
	ErrContactDeletionFailed ContactServiceError = "kayıt silinemedi"
	ErrContactListFailed     ContactServiceError = "kayıtlar listelenemedi"
)

const (
	slugMaxLength   = 50
	maxSlugAttempts = 20
	fallbackSlug    = "kayit"
)

// reservedSlugs /contacts altındaki sabit yollarla çakışan slug'lar.
var reservedSlugs = map[string]bool{
	"people":        true,
	"organizations": true,
	"types":         true,
}

// IContactService rehber işlemleri için arayüz.
type IContactService interface {
	CreateContact(ctx context.Context, input models.ContactInput) (*models.Contact, error)
	UpdateContact(ctx context.Context, id uint, input models.ContactInput) (*models.Contact, error)
	DeleteContact(ctx context.Context, id uint) error
	GetContactByID(ctx context.Context, id uint) (*models.Contact, error)
	GetContactBySlug(ctx context.Context, slug string) (*models.Contact, error)
	ListContacts(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ListPeople(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ListOrganizations(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ListContactsByType(ctx context.Context, contactType models.ContactType, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

// ContactService IContactService arayüzünü uygular.
type ContactService struct {
	repo     repositories.IContactRepository
	renderer models.MarkupRenderer
	perPage  int
}

// NewContactService yeni bir ContactService örneği oluşturur. Sayfa boyutu
// ve işaretleme modu başlangıçta okunan yapılandırmadan gelir.
func NewContactService(repo repositories.IContactRepository, cfg configs.ContactConfig) IContactService {
	cfg.Normalize()
	return &ContactService{
		repo:     repo,
		renderer: markup.NewRenderer(cfg.Markup),
		perPage:  cfg.PaginateBy,
	}
}

// --- Kayıt ---

// CreateContact girdiyi doğrular, türetilmiş alanları hesaplar ve kaydı oluşturur.
func (s *ContactService) CreateContact(ctx context.Context, input models.ContactInput) (*models.Contact, error) {
	input = input.Normalize()
	if err := ValidateContactInput(input); err != nil {
		return nil, err
	}

	contact := &models.Contact{}
	input.ApplyTo(&contact.ContactBase)
	contact.Prepare(s.renderer)

	if err := s.assignSlug(ctx, contact, input.Slug); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrContactSlugTaken
		}
		configslog.Log.Error("Kayıt oluşturulamadı", zap.String("name", contact.Name), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrContactCreationFailed, err)
	}

	configslog.SLog.Infof("Rehber kaydı oluşturuldu: %s (id=%d, slug=%s)", contact.Name, contact.ID, contact.Slug)
	return contact, nil
}

// UpdateContact mevcut kaydı girdiyle günceller. Açıklama HTML'i ve ad
// alanları her kayıtta baştan hesaplanır. Slug boş bırakılırsa korunur.
func (s *ContactService) UpdateContact(ctx context.Context, id uint, input models.ContactInput) (*models.Contact, error) {
	input = input.Normalize()
	if err := ValidateContactInput(input); err != nil {
		return nil, err
	}

	contact, err := s.GetContactByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ApplyTo(&contact.ContactBase)
	contact.Prepare(s.renderer)

	if (input.Slug != "" && input.Slug != contact.Slug) || contact.Slug == "" {
		if err := s.assignSlug(ctx, contact, input.Slug); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrContactSlugTaken
		}
		configslog.Log.Error("Kayıt güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrContactUpdateFailed, err)
	}

	configslog.SLog.Infof("Rehber kaydı güncellendi: id=%d", id)
	return contact, nil
}

// DeleteContact kaydı soft delete ile siler. Slug silinmiş kayıtta rezerve kalır.
func (s *ContactService) DeleteContact(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrContactNotFound
		}
		configslog.Log.Error("Kayıt silinemedi", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrContactDeletionFailed, err)
	}
	configslog.SLog.Infof("Rehber kaydı silindi: id=%d", id)
	return nil
}

// --- Okuma ---

func (s *ContactService) GetContactByID(ctx context.Context, id uint) (*models.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) GetContactBySlug(ctx context.Context, slug string) (*models.Contact, error) {
	contact, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	return s.list(ctx, repositories.AllContacts(), params)
}

func (s *ContactService) ListPeople(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	return s.list(ctx, repositories.PeopleOnly(), params)
}

func (s *ContactService) ListOrganizations(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	return s.list(ctx, repositories.OrganizationsOnly(), params)
}

// ListContactsByType yalnızca istenen türdeki kayıtları listeler.
func (s *ContactService) ListContactsByType(ctx context.Context, contactType models.ContactType, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if !contactType.IsValid() {
		return nil, fmt.Errorf("%w: bilinmeyen tür %d", ErrContactInvalidInput, contactType)
	}
	return s.list(ctx, repositories.TypeOnly(contactType), params)
}

// list sayfa boyutunu yapılandırmadan alır. Son sayfadan sonraki sayfalar
// ErrContactPageNotFound döner; boş liste için ilk sayfa her zaman geçerlidir.
func (s *ContactService) list(ctx context.Context, filter repositories.ContactFilter, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.PerPage = s.perPage
	params.Validate()

	contacts, total, err := s.repo.FindPaginated(ctx, filter, params)
	if err != nil {
		configslog.Log.Error("Kayıtlar listelenemedi", zap.Int("page", params.Page), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrContactListFailed, err)
	}

	totalPages := queryparams.CalculateTotalPages(total, params.PerPage)
	if params.Page > 1 && params.Page > totalPages {
		return nil, ErrContactPageNotFound
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	return &queryparams.PaginatedResult{
		Data: contacts,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	}, nil
}

// --- Slug ---

// assignSlug kayda benzersiz bir slug atar. İstenen slug doluysa aynen
// (normalize edilerek) kullanılır ve çakışma hata döner; boşsa addan
// üretilir ve çakışmada -2, -3 ... eki denenir.
func (s *ContactService) assignSlug(ctx context.Context, contact *models.Contact, requested string) error {
	if requested != "" {
		candidate := truncateSlug(slug.Make(requested), slugMaxLength)
		if candidate == "" {
			return &ValidationError{Fields: FieldErrors{"slug": "geçerli bir slug değil"}}
		}
		if reservedSlugs[candidate] {
			return &ValidationError{Fields: FieldErrors{"slug": "bu slug sistem tarafından kullanılıyor"}}
		}
		exists, err := s.repo.SlugExists(ctx, candidate, contact.ID)
		if err != nil {
			configslog.Log.Error("Slug kontrolü yapılamadı", zap.String("slug", candidate), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrContactCreationFailed, err)
		}
		if exists {
			return ErrContactSlugTaken
		}
		contact.Slug = candidate
		return nil
	}

	base := truncateSlug(slug.Make(contact.Name), slugMaxLength)
	if base == "" {
		base = fallbackSlug
	}
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate := slugCandidate(base, attempt)
		if reservedSlugs[candidate] {
			continue
		}
		exists, err := s.repo.SlugExists(ctx, candidate, contact.ID)
		if err != nil {
			configslog.Log.Error("Slug kontrolü yapılamadı", zap.String("slug", candidate), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrContactCreationFailed, err)
		}
		if !exists {
			contact.Slug = candidate
			return nil
		}
		configslog.Log.Debug("Slug çakışması, yeniden deneniyor", zap.String("slug", candidate))
	}
	configslog.Log.Warn("Benzersiz slug üretilemedi", zap.String("base", base), zap.Int("attempts", maxSlugAttempts))
	return ErrContactSlugTaken
}

func slugCandidate(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	suffix := "-" + strconv.Itoa(attempt+1)
	return truncateSlug(base, slugMaxLength-len(suffix)) + suffix
}

// truncateSlug slug.Make çıktısını (ASCII) n bayta kısaltır.
func truncateSlug(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return strings.Trim(s, "-")
}
