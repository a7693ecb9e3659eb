package queryparams

import "strings"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "asc"
)

// ListParams liste sayfalarının sorgu parametreleridir.
// PerPage sorgudan okunmaz; sayfa boyutu yapılandırmadan gelir.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"-"`
	Name    string `query:"name"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
}

func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate sayfa, sayfa boyutu ve sıralama yönünü geçerli değerlere çeker.
func (p *ListParams) Validate() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	p.Name = strings.TrimSpace(p.Name)
	p.OrderBy = strings.ToLower(strings.TrimSpace(p.OrderBy))
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

func (p ListParams) CalculateOffset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

func (m PaginationMeta) HasPrev() bool { return m.CurrentPage > 1 }
func (m PaginationMeta) HasNext() bool { return m.CurrentPage < m.TotalPages }
func (m PaginationMeta) PrevPage() int { return m.CurrentPage - 1 }
func (m PaginationMeta) NextPage() int { return m.CurrentPage + 1 }

type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func CalculateTotalPages(totalItems int64, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return int((totalItems + int64(perPage) - 1) / int64(perPage))
}
