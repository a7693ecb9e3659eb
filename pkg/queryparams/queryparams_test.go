package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsValidate(t *testing.T) {
	p := ListParams{Page: -3, PerPage: 500, Name: "  ali ", OrderBy: "DESC"}
	p.Validate()

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, "ali", p.Name)
	assert.Equal(t, "desc", p.OrderBy)

	p = ListParams{OrderBy: "sideways"}
	p.Validate()
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, PerPage: 10}.CalculateOffset())
	assert.Equal(t, 20, ListParams{Page: 3, PerPage: 10}.CalculateOffset())
	assert.Equal(t, 0, ListParams{Page: 0, PerPage: 10}.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestPaginationMetaNavigation(t *testing.T) {
	m := PaginationMeta{CurrentPage: 2, TotalPages: 3}
	assert.True(t, m.HasPrev())
	assert.True(t, m.HasNext())
	assert.Equal(t, 1, m.PrevPage())
	assert.Equal(t, 3, m.NextPage())

	last := PaginationMeta{CurrentPage: 3, TotalPages: 3}
	assert.False(t, last.HasNext())
}
