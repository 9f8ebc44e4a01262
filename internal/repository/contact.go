package repository

import (
	"context"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, company, subject, message, budget, timeline, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.Phone, c.Company, c.Subject, c.Message, c.Budget, c.Timeline, c.IPAddress,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *ContactRepository) CountUnread(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE is_read = FALSE`).Scan(&n)
	return n, err
}
