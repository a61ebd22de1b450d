package params

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestNewQueryParamsDefaults(t *testing.T) {
	p := NewQueryParams(newContext(""))

	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 20, p.PageSize)
	assert.Empty(t, p.Search)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, 0, p.Offset())
}

func TestNewQueryParamsBinds(t *testing.T) {
	p := NewQueryParams(newContext("page=3&limit=10&search=beach&sort_order=asc"))

	assert.Equal(t, 3, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, "beach", p.Search)
	assert.Equal(t, "asc", p.SortOrder)
	assert.Equal(t, 20, p.Offset())
}

func TestNewQueryParamsRejectsInvalid(t *testing.T) {
	p := NewQueryParams(newContext("page=-1&limit=0&sort_order=sideways"))

	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestNewQueryParamsCapsPageSize(t *testing.T) {
	p := NewQueryParams(newContext("limit=5000"))

	assert.Equal(t, 100, p.PageSize)
}
