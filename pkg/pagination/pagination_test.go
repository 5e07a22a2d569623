package pagination_test

import (
	"testing"

	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestValidate_ClampsOutOfRangeValues(t *testing.T) {
	params := &pagination.PaginationParams{Page: -3, PerPage: 0}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 15, params.PerPage)

	params = &pagination.PaginationParams{Page: 2, PerPage: 500}
	params.Validate()
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 100, params.PerPage)
}

func TestOffset(t *testing.T) {
	params := &pagination.PaginationParams{Page: 1, PerPage: 15}
	assert.Equal(t, 0, params.Offset())

	params = &pagination.PaginationParams{Page: 4, PerPage: 25}
	assert.Equal(t, 75, params.Offset())
}

func TestNewPagination(t *testing.T) {
	p := pagination.NewPagination(2, 15, 31)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPagination_SinglePage(t *testing.T) {
	p := pagination.NewPagination(1, 15, 7)

	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPaginatedResult(t *testing.T) {
	items := []string{"a", "b"}
	result := pagination.NewPaginatedResult(items, pagination.NewPagination(1, 15, 2))

	assert.Equal(t, items, result.Items)
	assert.Equal(t, int64(2), result.Pagination.Total)
}
