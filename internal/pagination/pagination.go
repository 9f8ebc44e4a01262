// Package pagination parses page-number query parameters into
// limit/offset pairs for list endpoints.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params is a resolved page request.
type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Parse reads "page" and "page_size" from query values, clamping to
// sane bounds. Invalid values fall back to defaults rather than
// erroring.
func Parse(values url.Values) Params {
	p := Params{Page: 1, PageSize: DefaultPageSize}

	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			p.Page = page
		}
	}
	if raw := values.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			p.PageSize = size
		}
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Limit returns the row limit for the page.
func (p Params) Limit() int {
	return p.PageSize
}

// Offset returns the row offset for the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}
