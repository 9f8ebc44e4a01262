package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/folio-cms/folio/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter struct {
	n   int
	err error
}

func (c fixedCounter) Count(ctx context.Context) (int, error)          { return c.n, c.err }
func (c fixedCounter) CountPublished(ctx context.Context) (int, error) { return c.n, c.err }
func (c fixedCounter) CountActive(ctx context.Context) (int, error)    { return c.n, c.err }

type fixedVisitStats struct {
	total  int
	unique int
	pages  []repository.PageCount
	err    error
}

func (v fixedVisitStats) CountSince(ctx context.Context, since time.Time) (int, error) {
	return v.total, v.err
}

func (v fixedVisitStats) CountUniqueSince(ctx context.Context, since time.Time) (int, error) {
	return v.unique, v.err
}

func (v fixedVisitStats) TopPagesSince(ctx context.Context, since time.Time, limit int) ([]repository.PageCount, error) {
	return v.pages, v.err
}

func TestStatsHandler_Stats(t *testing.T) {
	handler := NewStatsHandler(
		fixedCounter{n: 12},
		fixedCounter{n: 4},
		fixedCounter{n: 30},
		fixedCounter{n: 250},
		fixedCounter{n: 8},
		fixedCounter{n: 90},
		fixedVisitStats{total: 1500, unique: 600, pages: []repository.PageCount{{Page: "/blog/", Count: 400}}},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/", nil)
	w := httptest.NewRecorder()

	handler.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["projects"])
	assert.Equal(t, float64(8), data["blog_posts"])
	assert.Equal(t, float64(250), data["searches"])
	assert.Equal(t, float64(90), data["subscribers"])
	assert.Equal(t, float64(1500), data["visits_30d"])
	assert.Equal(t, float64(600), data["unique_visitors_30d"])
	pages := data["top_pages_30d"].([]interface{})
	require.Len(t, pages, 1)
	assert.Equal(t, "/blog/", pages[0].(map[string]interface{})["page"])
}

func TestStatsHandler_Stats_CounterError(t *testing.T) {
	handler := NewStatsHandler(
		fixedCounter{err: errors.New("db down")},
		fixedCounter{},
		fixedCounter{},
		fixedCounter{},
		fixedCounter{},
		fixedCounter{},
		fixedVisitStats{},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/", nil)
	w := httptest.NewRecorder()

	handler.Stats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatsHandler_Stats_EmptyTopPagesIsArray(t *testing.T) {
	handler := NewStatsHandler(
		fixedCounter{}, fixedCounter{}, fixedCounter{}, fixedCounter{},
		fixedCounter{}, fixedCounter{}, fixedVisitStats{},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/", nil)
	w := httptest.NewRecorder()

	handler.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"top_pages_30d":[]`)
}
