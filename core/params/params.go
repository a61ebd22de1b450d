package params

import (
	"strconv"

	"volunteerhub/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams carries the common list-endpoint query string values
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
	SortBy     string
	SortOrder  string
}

// NewQueryParams binds pagination params from the request with safe defaults.
func NewQueryParams(ctx echo.Context) *QueryParams {
	p := &QueryParams{
		PageNumber: constants.DefaultPageNumber,
		PageSize:   constants.DefaultPageSize,
		Search:     ctx.QueryParam("search"),
		SortBy:     ctx.QueryParam("sort_by"),
		SortOrder:  ctx.QueryParam("sort_order"),
	}

	if page, err := strconv.Atoi(ctx.QueryParam("page")); err == nil && page > 0 {
		p.PageNumber = page
	}
	if limit, err := strconv.Atoi(ctx.QueryParam("limit")); err == nil && limit > 0 {
		p.PageSize = limit
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}

	return p
}

// Offset returns the SQL offset for the current page.
func (p *QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}
