package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"defaults", "", 1, DefaultPageSize, 0},
		{"explicit", "page=3&page_size=10", 3, 10, 20},
		{"clamped size", "page_size=500", 1, MaxPageSize, 0},
		{"invalid page", "page=zero", 1, DefaultPageSize, 0},
		{"negative page", "page=-2", 1, DefaultPageSize, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			p := Parse(values)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, tt.wantSize, p.Limit())
		})
	}
}
