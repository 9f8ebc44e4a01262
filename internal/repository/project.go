package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// projectSearchFields is the fixed searchable surface of a project.
var projectSearchFields = []string{
	"title", "description", "detailed_description", "technologies", "client", "challenges_faced",
}

const projectColumns = `id, title, description, detailed_description, technologies, status,
	project_type, start_date, end_date, project_url, github_url, image_url,
	is_featured, client, challenges_faced, lessons_learned, created_at`

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// ProjectFilter narrows List results. Zero values mean "no filter".
type ProjectFilter struct {
	Type         domain.ProjectType
	Status       domain.ProjectStatus
	FeaturedOnly bool
	Search       string
	Limit        int
	Offset       int
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, detailed_description, technologies, status,
			project_type, start_date, end_date, project_url, github_url, image_url,
			is_featured, client, challenges_faced, lessons_learned)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id, created_at`,
		p.Title, p.Description, p.DetailedDescription, p.Technologies, p.Status,
		p.Type, p.StartDate, p.EndDate, p.ProjectURL, p.GithubURL, p.ImageURL,
		p.IsFeatured, p.Client, p.ChallengesFaced, p.LessonsLearned,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// Search returns projects matching the query substring in any of the
// designated fields, in primary-key order.
func (r *ProjectRepository) Search(ctx context.Context, query string) ([]*domain.Project, error) {
	sql := `SELECT ` + projectColumns + ` FROM projects
		WHERE ` + matchAnyField(projectSearchFields, 1) + `
		ORDER BY id LIMIT ` + fmt.Sprint(searchResultLimit)
	rows, err := r.pool.Query(ctx, sql, likePattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *ProjectRepository) List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error) {
	sql := `SELECT ` + projectColumns + ` FROM projects WHERE TRUE`
	args := []any{}

	if filter.Type != "" {
		args = append(args, filter.Type)
		sql += fmt.Sprintf(" AND project_type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		sql += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.FeaturedOnly {
		sql += " AND is_featured = TRUE"
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		sql += " AND " + matchAnyField([]string{"title", "description", "technologies", "client"}, len(args))
	}

	sql += " ORDER BY start_date DESC, id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

// TitleMatches returns project titles containing the query substring,
// for autocomplete.
func (r *ProjectRepository) TitleMatches(ctx context.Context, query string, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT title FROM projects WHERE title ILIKE $1 ORDER BY id LIMIT $2`,
		likePattern(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStrings(rows)
}

// AllTechnologies returns the raw technologies field of every project,
// for heuristic tag usage counting.
func (r *ProjectRepository) AllTechnologies(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT technologies FROM projects WHERE technologies <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStrings(rows)
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	return n, err
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.DetailedDescription, &p.Technologies, &p.Status,
		&p.Type, &p.StartDate, &p.EndDate, &p.ProjectURL, &p.GithubURL, &p.ImageURL,
		&p.IsFeatured, &p.Client, &p.ChallengesFaced, &p.LessonsLearned, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProjects(rows pgx.Rows) ([]*domain.Project, error) {
	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func collectStrings(rows pgx.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
