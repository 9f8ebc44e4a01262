package service

import (
	"context"

	"github.com/folio-cms/folio/internal/domain"
)

// RequestContext carries requester identity captured by the HTTP layer.
// It is passed explicitly into Search so the service never reads
// ambient request state.
type RequestContext struct {
	IPAddress string
	UserAgent string
}

// SearchLogStore appends to the append-only search query log.
type SearchLogStore interface {
	Create(ctx context.Context, q *domain.SearchQuery) error
	RecordClick(ctx context.Context, id int64, resultURL string) error
}

// PopularityStore reads frequency aggregates from the search query log.
type PopularityStore interface {
	Popular(ctx context.Context, limit int) ([]domain.PopularSearch, error)
	PopularMatches(ctx context.Context, query string, limit int) ([]string, error)
}
