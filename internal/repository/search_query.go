package repository

import (
	"context"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const searchQueryColumns = `id, query, results_count, ip_address, user_agent, search_date, clicked_result`

// SearchQueryRepository is the append-only search log store. Rows are
// written once per search and only touched again to record a click.
type SearchQueryRepository struct {
	pool *pgxpool.Pool
}

func NewSearchQueryRepository(pool *pgxpool.Pool) *SearchQueryRepository {
	return &SearchQueryRepository{pool: pool}
}

func (r *SearchQueryRepository) Create(ctx context.Context, q *domain.SearchQuery) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO search_queries (query, results_count, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, search_date`,
		q.Query, q.ResultsCount, q.IPAddress, domain.TruncateUserAgent(q.UserAgent),
	).Scan(&q.ID, &q.SearchDate)
}

// Popular returns the most frequent exact queries over the whole log,
// most frequent first. Ties break on the query text for a stable order.
func (r *SearchQueryRepository) Popular(ctx context.Context, limit int) ([]domain.PopularSearch, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT query, COUNT(*) AS n FROM search_queries
		 GROUP BY query ORDER BY n DESC, query LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var popular []domain.PopularSearch
	for rows.Next() {
		var p domain.PopularSearch
		if err := rows.Scan(&p.Query, &p.Count); err != nil {
			return nil, err
		}
		popular = append(popular, p)
	}
	return popular, rows.Err()
}

// PopularMatches returns distinct logged queries containing the given
// substring, ordered by frequency, for autocomplete.
func (r *SearchQueryRepository) PopularMatches(ctx context.Context, query string, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT query FROM search_queries WHERE query ILIKE $1
		 GROUP BY query ORDER BY COUNT(*) DESC, query LIMIT $2`,
		likePattern(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStrings(rows)
}

// RecordClick stores the result URL the user followed from a logged
// search.
func (r *SearchQueryRepository) RecordClick(ctx context.Context, id int64, resultURL string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE search_queries SET clicked_result = $2 WHERE id = $1`, id, resultURL)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrSearchQueryNotFound
	}
	return nil
}

func (r *SearchQueryRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM search_queries`).Scan(&n)
	return n, err
}

// Recent returns the newest log entries, newest first.
func (r *SearchQueryRepository) Recent(ctx context.Context, limit int) ([]*domain.SearchQuery, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+searchQueryColumns+` FROM search_queries ORDER BY search_date DESC, id DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSearchQueries(rows)
}

func collectSearchQueries(rows pgx.Rows) ([]*domain.SearchQuery, error) {
	var queries []*domain.SearchQuery
	for rows.Next() {
		var q domain.SearchQuery
		if err := rows.Scan(
			&q.ID, &q.Query, &q.ResultsCount, &q.IPAddress, &q.UserAgent, &q.SearchDate, &q.ClickedResult,
		); err != nil {
			return nil, err
		}
		queries = append(queries, &q)
	}
	return queries, rows.Err()
}
