package repository

import (
	"context"
	"fmt"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var testimonialSearchFields = []string{"content", "name", "company", "position"}

const testimonialColumns = `id, name, email, company, position, content, rating,
	is_anonymous, is_approved, is_featured, created_at`

type TestimonialRepository struct {
	pool *pgxpool.Pool
}

func NewTestimonialRepository(pool *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO testimonials (name, email, company, position, content, rating,
			is_anonymous, is_approved, is_featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		t.Name, t.Email, t.Company, t.Position, t.Content, t.Rating,
		t.IsAnonymous, t.IsApproved, t.IsFeatured,
	).Scan(&t.ID, &t.CreatedAt)
}

// Search returns approved testimonials matching the query substring.
// Pending submissions stay out of results until moderation approves
// them.
func (r *TestimonialRepository) Search(ctx context.Context, query string) ([]*domain.Testimonial, error) {
	sql := `SELECT ` + testimonialColumns + ` FROM testimonials
		WHERE is_approved = TRUE AND ` + matchAnyField(testimonialSearchFields, 1) + `
		ORDER BY id LIMIT ` + fmt.Sprint(searchResultLimit)
	rows, err := r.pool.Query(ctx, sql, likePattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTestimonials(rows)
}

func (r *TestimonialRepository) ListApproved(ctx context.Context) ([]*domain.Testimonial, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials
		 WHERE is_approved = TRUE
		 ORDER BY is_featured DESC, created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTestimonials(rows)
}

func collectTestimonials(rows pgx.Rows) ([]*domain.Testimonial, error) {
	var testimonials []*domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Email, &t.Company, &t.Position, &t.Content, &t.Rating,
			&t.IsAnonymous, &t.IsApproved, &t.IsFeatured, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, &t)
	}
	return testimonials, rows.Err()
}
