package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAppliesDefaults(t *testing.T) {
	p := ListParams{}
	p.Validate()
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
}

func TestValidateClampsOutOfRange(t *testing.T) {
	p := ListParams{Page: -1, PerPage: 500, OrderBy: "SIDEWAYS"}
	p.Validate()
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, "desc", p.OrderBy)

	p = ListParams{OrderBy: "ASC"}
	p.Validate()
	assert.Equal(t, "asc", p.OrderBy)
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 1, PerPage: 20}
	assert.Equal(t, 0, p.CalculateOffset())

	p = ListParams{Page: 3, PerPage: 10}
	assert.Equal(t, 20, p.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(1, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))
}
