package repository

import (
	"context"
	"fmt"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var skillSearchFields = []string{"name", "category", "certification_level"}

const skillColumns = `id, name, category, proficiency, years_of_experience,
	is_featured, certification_level, created_at`

type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, proficiency, years_of_experience, is_featured, certification_level)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		s.Name, s.Category, s.Proficiency, s.YearsOfExperience, s.IsFeatured, s.CertificationLevel,
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *SkillRepository) Search(ctx context.Context, query string) ([]*domain.Skill, error) {
	sql := `SELECT ` + skillColumns + ` FROM skills
		WHERE ` + matchAnyField(skillSearchFields, 1) + `
		ORDER BY id LIMIT ` + fmt.Sprint(searchResultLimit)
	rows, err := r.pool.Query(ctx, sql, likePattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

// NameMatches returns skill names containing the query substring, for
// autocomplete.
func (r *SkillRepository) NameMatches(ctx context.Context, query string, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name FROM skills WHERE name ILIKE $1 ORDER BY id LIMIT $2`,
		likePattern(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStrings(rows)
}

func (r *SkillRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&n)
	return n, err
}

func collectSkills(rows pgx.Rows) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.YearsOfExperience,
			&s.IsFeatured, &s.CertificationLevel, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}
