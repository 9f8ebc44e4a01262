package repository

import (
	"context"
	"errors"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tagColumns = `id, name, color, usage_count, is_featured, created_at`

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) Create(ctx context.Context, t *domain.Tag) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tags (name, color, usage_count, is_featured)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		t.Name, t.Color, t.UsageCount, t.IsFeatured,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrTagAlreadyExists
	}
	return err
}

func (r *TagRepository) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE lower(name) = lower($1)`, name)
	var t domain.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.UsageCount, &t.IsFeatured, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TagRepository) All(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+tagColumns+` FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTags(rows)
}

// FeaturedNames returns featured tag names ordered by usage, for the
// default suggestion list.
func (r *TagRepository) FeaturedNames(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name FROM tags WHERE is_featured = TRUE ORDER BY usage_count DESC, id LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStrings(rows)
}

// NameMatches returns tag names containing the query substring, for
// autocomplete.
func (r *TagRepository) NameMatches(ctx context.Context, query string, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name FROM tags WHERE name ILIKE $1 ORDER BY usage_count DESC, id LIMIT $2`,
		likePattern(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStrings(rows)
}

// SetUsageCount overwrites the stored heuristic usage counter.
func (r *TagRepository) SetUsageCount(ctx context.Context, id int64, count int) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE tags SET usage_count = $2 WHERE id = $1`, id, count)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func collectTags(rows pgx.Rows) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.UsageCount, &t.IsFeatured, &t.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}
