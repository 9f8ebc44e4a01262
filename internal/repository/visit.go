package repository

import (
	"context"
	"time"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VisitRepository struct {
	pool *pgxpool.Pool
}

func NewVisitRepository(pool *pgxpool.Pool) *VisitRepository {
	return &VisitRepository{pool: pool}
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.Visit) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO visits (ip_address, user_agent, page_visited, referrer)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, visit_date`,
		v.IPAddress, domain.TruncateUserAgent(v.UserAgent), v.PageVisited, v.Referrer,
	).Scan(&v.ID, &v.VisitDate)
}

func (r *VisitRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM visits WHERE visit_date >= $1`, since).Scan(&n)
	return n, err
}

func (r *VisitRepository) CountUniqueSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT ip_address) FROM visits WHERE visit_date >= $1`, since).Scan(&n)
	return n, err
}

// PageCount pairs a page path with its visit count.
type PageCount struct {
	Page  string `json:"page"`
	Count int    `json:"count"`
}

func (r *VisitRepository) TopPagesSince(ctx context.Context, since time.Time, limit int) ([]PageCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT page_visited, COUNT(*) AS n FROM visits
		 WHERE visit_date >= $1
		 GROUP BY page_visited ORDER BY n DESC, page_visited LIMIT $2`,
		since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []PageCount
	for rows.Next() {
		var p PageCount
		if err := rows.Scan(&p.Page, &p.Count); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}
