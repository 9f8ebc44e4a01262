package repository

import (
	"context"
	"fmt"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var experienceSearchFields = []string{
	"title", "company", "description", "achievements", "technologies",
}

const experienceColumns = `id, title, company, location, job_type, start_date, end_date,
	is_current, description, achievements, technologies, created_at`

type ExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewExperienceRepository(pool *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{pool: pool}
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO experiences (title, company, location, job_type, start_date, end_date,
			is_current, description, achievements, technologies)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		e.Title, e.Company, e.Location, e.JobType, e.StartDate, e.EndDate,
		e.IsCurrent, e.Description, e.Achievements, e.Technologies,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *ExperienceRepository) Search(ctx context.Context, query string) ([]*domain.Experience, error) {
	sql := `SELECT ` + experienceColumns + ` FROM experiences
		WHERE ` + matchAnyField(experienceSearchFields, 1) + `
		ORDER BY id LIMIT ` + fmt.Sprint(searchResultLimit)
	rows, err := r.pool.Query(ctx, sql, likePattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExperiences(rows)
}

func (r *ExperienceRepository) List(ctx context.Context) ([]*domain.Experience, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM experiences ORDER BY start_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExperiences(rows)
}

func (r *ExperienceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&n)
	return n, err
}

func collectExperiences(rows pgx.Rows) ([]*domain.Experience, error) {
	var experiences []*domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Company, &e.Location, &e.JobType, &e.StartDate, &e.EndDate,
			&e.IsCurrent, &e.Description, &e.Achievements, &e.Technologies, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		experiences = append(experiences, &e)
	}
	return experiences, rows.Err()
}
