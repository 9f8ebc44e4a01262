package repository

import (
	"context"
	"errors"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsletterRepository struct {
	pool *pgxpool.Pool
}

func NewNewsletterRepository(pool *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{pool: pool}
}

func (r *NewsletterRepository) Create(ctx context.Context, s *domain.NewsletterSubscriber) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO newsletter_subscribers (email, name, is_active)
		 VALUES ($1, $2, $3)
		 RETURNING id, subscribed_at`,
		s.Email, s.Name, s.IsActive,
	).Scan(&s.ID, &s.SubscribedAt)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrSubscriberAlreadyExists
	}
	return err
}

func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, email, name, is_active, subscribed_at
		 FROM newsletter_subscribers WHERE lower(email) = lower($1)`, email)
	var s domain.NewsletterSubscriber
	err := row.Scan(&s.ID, &s.Email, &s.Name, &s.IsActive, &s.SubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *NewsletterRepository) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscribers SET is_active = $2 WHERE id = $1`, id, active)
	return err
}

func (r *NewsletterRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active = TRUE`).Scan(&n)
	return n, err
}
