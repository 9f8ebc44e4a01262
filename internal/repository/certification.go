package repository

import (
	"context"
	"fmt"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var certificationSearchFields = []string{"name", "issuing_organization", "credential_id"}

const certificationColumns = `id, name, issuing_organization, issue_date, expiration_date,
	credential_id, credential_url, created_at`

type CertificationRepository struct {
	pool *pgxpool.Pool
}

func NewCertificationRepository(pool *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{pool: pool}
}

func (r *CertificationRepository) Create(ctx context.Context, c *domain.Certification) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO certifications (name, issuing_organization, issue_date, expiration_date,
			credential_id, credential_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		c.Name, c.IssuingOrganization, c.IssueDate, c.ExpirationDate,
		c.CredentialID, c.CredentialURL,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *CertificationRepository) Search(ctx context.Context, query string) ([]*domain.Certification, error) {
	sql := `SELECT ` + certificationColumns + ` FROM certifications
		WHERE ` + matchAnyField(certificationSearchFields, 1) + `
		ORDER BY id LIMIT ` + fmt.Sprint(searchResultLimit)
	rows, err := r.pool.Query(ctx, sql, likePattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCertifications(rows)
}

func (r *CertificationRepository) List(ctx context.Context) ([]*domain.Certification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+certificationColumns+` FROM certifications ORDER BY issue_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCertifications(rows)
}

func collectCertifications(rows pgx.Rows) ([]*domain.Certification, error) {
	var certs []*domain.Certification
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(
			&c.ID, &c.Name, &c.IssuingOrganization, &c.IssueDate, &c.ExpirationDate,
			&c.CredentialID, &c.CredentialURL, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		certs = append(certs, &c)
	}
	return certs, rows.Err()
}
