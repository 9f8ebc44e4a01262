package repository

import (
	"context"
	"fmt"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var resourceSearchFields = []string{"title", "description", "category"}

const resourceColumns = `id, title, description, category, file_type, file_url,
	file_size, download_count, is_public, created_at`

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO resources (title, description, category, file_type, file_url,
			file_size, download_count, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		res.Title, res.Description, res.Category, res.FileType, res.FileURL,
		res.FileSize, res.DownloadCount, res.IsPublic,
	).Scan(&res.ID, &res.CreatedAt)
}

// Search returns public resources matching the query substring.
func (r *ResourceRepository) Search(ctx context.Context, query string) ([]*domain.Resource, error) {
	sql := `SELECT ` + resourceColumns + ` FROM resources
		WHERE is_public = TRUE AND ` + matchAnyField(resourceSearchFields, 1) + `
		ORDER BY id LIMIT ` + fmt.Sprint(searchResultLimit)
	rows, err := r.pool.Query(ctx, sql, likePattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResources(rows)
}

func (r *ResourceRepository) ListPublic(ctx context.Context) ([]*domain.Resource, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE is_public = TRUE ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResources(rows)
}

func (r *ResourceRepository) IncrementDownloads(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE resources SET download_count = download_count + 1 WHERE id = $1 AND is_public = TRUE`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func collectResources(rows pgx.Rows) ([]*domain.Resource, error) {
	var resources []*domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(
			&res.ID, &res.Title, &res.Description, &res.Category, &res.FileType, &res.FileURL,
			&res.FileSize, &res.DownloadCount, &res.IsPublic, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		resources = append(resources, &res)
	}
	return resources, rows.Err()
}
