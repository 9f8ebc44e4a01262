//go:build integration

package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logSearches(ctx context.Context, t *testing.T, repo *SearchQueryRepository, queries ...string) {
	for _, q := range queries {
		require.NoError(t, repo.Create(ctx, &domain.SearchQuery{Query: q, ResultsCount: 1}))
	}
}

func TestSearchQueryRepository_Popular(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewSearchQueryRepository(pool)

	logSearches(ctx, t, repo, "django", "django", "django", "python", "python", "react")

	popular, err := repo.Popular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, domain.PopularSearch{Query: "django", Count: 3}, popular[0])
	assert.Equal(t, domain.PopularSearch{Query: "python", Count: 2}, popular[1])
}

func TestSearchQueryRepository_Popular_CaseSensitiveGrouping(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewSearchQueryRepository(pool)

	logSearches(ctx, t, repo, "Django", "django")

	popular, err := repo.Popular(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, popular, 2)
}

func TestSearchQueryRepository_PopularMatches(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewSearchQueryRepository(pool)

	logSearches(ctx, t, repo, "python tips", "python tips", "pytest", "golang")

	matches, err := repo.PopularMatches(ctx, "py", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"python tips", "pytest"}, matches)
}

func TestSearchQueryRepository_Create_TruncatesUserAgent(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewSearchQueryRepository(pool)

	q := &domain.SearchQuery{
		Query:     "long agent",
		UserAgent: strings.Repeat("x", 600),
	}
	require.NoError(t, repo.Create(ctx, q))

	recent, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Len(t, recent[0].UserAgent, domain.MaxUserAgentLength)
}

func TestSearchQueryRepository_RecordClick(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewSearchQueryRepository(pool)

	q := &domain.SearchQuery{Query: "django", ResultsCount: 4}
	require.NoError(t, repo.Create(ctx, q))

	require.NoError(t, repo.RecordClick(ctx, q.ID, "/projects/1/"))

	recent, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.NotNil(t, recent[0].ClickedResult)
	assert.Equal(t, "/projects/1/", *recent[0].ClickedResult)

	err = repo.RecordClick(ctx, 999999, "/projects/1/")
	assert.ErrorIs(t, err, domain.ErrSearchQueryNotFound)
}
