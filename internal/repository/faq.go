package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var faqSearchFields = []string{"question", "answer"}

const faqColumns = `id, question, answer, category, sort_order, is_active,
	views_count, helpful_votes, created_at`

type FAQRepository struct {
	pool *pgxpool.Pool
}

func NewFAQRepository(pool *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{pool: pool}
}

func (r *FAQRepository) Create(ctx context.Context, f *domain.FAQ) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO faqs (question, answer, category, sort_order, is_active, views_count, helpful_votes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive, f.ViewsCount, f.HelpfulVotes,
	).Scan(&f.ID, &f.CreatedAt)
}

// Search returns active FAQ entries matching the query substring.
func (r *FAQRepository) Search(ctx context.Context, query string) ([]*domain.FAQ, error) {
	sql := `SELECT ` + faqColumns + ` FROM faqs
		WHERE is_active = TRUE AND ` + matchAnyField(faqSearchFields, 1) + `
		ORDER BY id LIMIT ` + fmt.Sprint(searchResultLimit)
	rows, err := r.pool.Query(ctx, sql, likePattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFAQs(rows)
}

func (r *FAQRepository) ListActive(ctx context.Context) ([]*domain.FAQ, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+faqColumns+` FROM faqs WHERE is_active = TRUE ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFAQs(rows)
}

// IncrementHelpfulVotes adds one helpful vote to an active FAQ entry.
func (r *FAQRepository) IncrementHelpfulVotes(ctx context.Context, id int64) (int, error) {
	var votes int
	err := r.pool.QueryRow(ctx,
		`UPDATE faqs SET helpful_votes = helpful_votes + 1
		 WHERE id = $1 AND is_active = TRUE
		 RETURNING helpful_votes`, id).Scan(&votes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrFAQNotFound
		}
		return 0, err
	}
	return votes, nil
}

func collectFAQs(rows pgx.Rows) ([]*domain.FAQ, error) {
	var faqs []*domain.FAQ
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(
			&f.ID, &f.Question, &f.Answer, &f.Category, &f.SortOrder, &f.IsActive,
			&f.ViewsCount, &f.HelpfulVotes, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		faqs = append(faqs, &f)
	}
	return faqs, rows.Err()
}
