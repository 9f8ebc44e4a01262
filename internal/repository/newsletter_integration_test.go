//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterRepository_CreateAndReactivate(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewNewsletterRepository(pool)

	sub := &domain.NewsletterSubscriber{Email: "reader@example.com", Name: "Reader", IsActive: true}
	require.NoError(t, repo.Create(ctx, sub))

	err := repo.Create(ctx, &domain.NewsletterSubscriber{Email: "reader@example.com", IsActive: true})
	assert.ErrorIs(t, err, domain.ErrSubscriberAlreadyExists)

	require.NoError(t, repo.SetActive(ctx, sub.ID, false))

	got, err := repo.GetByEmail(ctx, "READER@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)

	require.NoError(t, repo.SetActive(ctx, sub.ID, true))

	n, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewsletterRepository_GetByEmail_Missing(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewNewsletterRepository(pool)

	got, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}
