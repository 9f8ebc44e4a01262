package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var blogPostSearchFields = []string{"title", "content", "excerpt", "tags"}

const blogPostColumns = `id, title, slug, content, excerpt, tags, featured_image_url,
	is_published, is_featured, published_at, views_count, created_at`

type BlogPostRepository struct {
	pool *pgxpool.Pool
}

func NewBlogPostRepository(pool *pgxpool.Pool) *BlogPostRepository {
	return &BlogPostRepository{pool: pool}
}

// BlogPostFilter narrows List results over published posts.
type BlogPostFilter struct {
	Search string
	Tag    string
	Limit  int
	Offset int
}

func (r *BlogPostRepository) Create(ctx context.Context, b *domain.BlogPost) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO blog_posts (title, slug, content, excerpt, tags, featured_image_url,
			is_published, is_featured, published_at, views_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		b.Title, b.Slug, b.Content, b.Excerpt, b.Tags, b.FeaturedImageURL,
		b.IsPublished, b.IsFeatured, b.PublishedAt, b.ViewsCount,
	).Scan(&b.ID, &b.CreatedAt)
}

// Search returns published posts matching the query substring. The
// is_published pre-filter applies before the text match; drafts never
// surface regardless of content.
func (r *BlogPostRepository) Search(ctx context.Context, query string) ([]*domain.BlogPost, error) {
	sql := `SELECT ` + blogPostColumns + ` FROM blog_posts
		WHERE is_published = TRUE AND ` + matchAnyField(blogPostSearchFields, 1) + `
		ORDER BY id LIMIT ` + fmt.Sprint(searchResultLimit)
	rows, err := r.pool.Query(ctx, sql, likePattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBlogPosts(rows)
}

func (r *BlogPostRepository) List(ctx context.Context, filter BlogPostFilter) ([]*domain.BlogPost, error) {
	sql := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE is_published = TRUE`
	args := []any{}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		sql += " AND " + matchAnyField(blogPostSearchFields, len(args))
	}
	if filter.Tag != "" {
		args = append(args, likePattern(filter.Tag))
		sql += fmt.Sprintf(" AND tags ILIKE $%d", len(args))
	}

	sql += " ORDER BY published_at DESC NULLS LAST, id DESC"
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
	return collectBlogPosts(rows)
}

func (r *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = $1 AND is_published = TRUE`, slug)
	var b domain.BlogPost
	err := row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Content, &b.Excerpt, &b.Tags, &b.FeaturedImageURL,
		&b.IsPublished, &b.IsFeatured, &b.PublishedAt, &b.ViewsCount, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BlogPostRepository) IncrementViews(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE blog_posts SET views_count = views_count + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrBlogPostNotFound
	}
	return nil
}

// AllPublishedTags returns the raw tags field of every published post,
// for heuristic tag usage counting.
func (r *BlogPostRepository) AllPublishedTags(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT tags FROM blog_posts WHERE is_published = TRUE AND tags <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStrings(rows)
}

func (r *BlogPostRepository) CountPublished(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts WHERE is_published = TRUE`).Scan(&n)
	return n, err
}

func collectBlogPosts(rows pgx.Rows) ([]*domain.BlogPost, error) {
	var posts []*domain.BlogPost
	for rows.Next() {
		var b domain.BlogPost
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Slug, &b.Content, &b.Excerpt, &b.Tags, &b.FeaturedImageURL,
			&b.IsPublished, &b.IsFeatured, &b.PublishedAt, &b.ViewsCount, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, &b)
	}
	return posts, rows.Err()
}
