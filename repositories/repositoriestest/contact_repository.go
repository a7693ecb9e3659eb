// Package repositoriestest veritabanı gerektirmeyen testler için bellek içi
// repository sağlar.
package repositoriestest

import (
	"context"
	"sort"
	"sync"

	"rehber.link/models"
	"rehber.link/pkg/queryparams"
	"rehber.link/repositories"
)

// ContactRepository repositories.IContactRepository'nin bellek içi
// karşılığıdır. Silinen kayıtlar saklanır; slug kontrolü onları da sayar.
// Err doluysa okuma ve listeleme işlemleri bu hatayı döner.
type ContactRepository struct {
	mu       sync.Mutex
	nextID   uint
	contacts map[uint]*models.Contact
	deleted  map[uint]bool

	Saves int
	Err   error
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{
		contacts: map[uint]*models.Contact{},
		deleted:  map[uint]bool{},
	}
}

func (r *ContactRepository) Create(_ context.Context, c *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.contacts[c.ID] = &cp
	r.Saves++
	return nil
}

func (r *ContactRepository) Update(_ context.Context, c *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[c.ID]; !ok || r.deleted[c.ID] {
		return repositories.ErrNotFound
	}
	cp := *c
	r.contacts[c.ID] = &cp
	r.Saves++
	return nil
}

func (r *ContactRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[id]; !ok || r.deleted[id] {
		return repositories.ErrNotFound
	}
	r.deleted[id] = true
	return nil
}

func (r *ContactRepository) FindByID(_ context.Context, id uint) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	c, ok := r.contacts[id]
	if !ok || r.deleted[id] {
		return nil, repositories.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *ContactRepository) FindBySlug(_ context.Context, slug string) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for id, c := range r.contacts {
		if c.Slug == slug && !r.deleted[id] {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *ContactRepository) SlugExists(_ context.Context, slug string, exceptID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.contacts {
		if c.Slug == slug && id != exceptID {
			return true, nil
		}
	}
	return false, nil
}

// matching DefaultOrder ile aynı sırayı uygular: tür, ad, id.
func (r *ContactRepository) matching(filter repositories.ContactFilter, name string) []models.Contact {
	var out []models.Contact
	for id, c := range r.contacts {
		if r.deleted[id] || !filter.Match(&c.ContactBase) || !repositories.MatchName(&c.ContactBase, name) {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ContactType != out[j].ContactType {
			return out[i].ContactType < out[j].ContactType
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *ContactRepository) FindPaginated(_ context.Context, filter repositories.ContactFilter, params queryparams.ListParams) ([]models.Contact, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, 0, r.Err
	}
	all := r.matching(filter, params.Name)
	total := int64(len(all))
	start := params.CalculateOffset()
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + params.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *ContactRepository) Count(_ context.Context, filter repositories.ContactFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.matching(filter, ""))), nil
}

var _ repositories.IContactRepository = (*ContactRepository)(nil)
