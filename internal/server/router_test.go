package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/folio-cms/folio/internal/api/handlers"
	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/repository"
	"github.com/folio-cms/folio/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchService struct {
	lastInput service.SearchInput
}

func (s *stubSearchService) Search(ctx context.Context, input service.SearchInput) *service.SearchResponse {
	s.lastInput = input
	return &service.SearchResponse{
		Query:    input.Query,
		Category: "all",
		Results:  map[service.SourceType][]service.SearchResult{},
	}
}

func (s *stubSearchService) RecordClick(ctx context.Context, queryID int64, resultURL string) error {
	return nil
}

type stubAutocompleter struct{}

func (stubAutocompleter) Autocomplete(ctx context.Context, query string) []string {
	return []string{"Django"}
}

type stubTagCloud struct{}

func (stubTagCloud) TagCloud(ctx context.Context) []service.TagCloudEntry {
	return []service.TagCloudEntry{}
}

type stubProjects struct{}

func (stubProjects) List(ctx context.Context, filter repository.ProjectFilter) ([]*domain.Project, error) {
	return []*domain.Project{}, nil
}

func (stubProjects) Count(ctx context.Context) (int, error) { return 0, nil }

type stubBlog struct{}

func (stubBlog) List(ctx context.Context, filter repository.BlogPostFilter) ([]*domain.BlogPost, error) {
	return []*domain.BlogPost{}, nil
}

func (stubBlog) CountPublished(ctx context.Context) (int, error) { return 0, nil }

type stubContacts struct{}

func (stubContacts) Create(ctx context.Context, c *domain.Contact) error { return nil }

type stubSubscribers struct{}

func (stubSubscribers) Create(ctx context.Context, s *domain.NewsletterSubscriber) error { return nil }

func (stubSubscribers) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	return nil, nil
}

func (stubSubscribers) SetActive(ctx context.Context, id int64, active bool) error { return nil }

type stubVoter struct{}

func (stubVoter) IncrementHelpfulVotes(ctx context.Context, id int64) (int, error) { return 1, nil }

type stubCounter struct{}

func (stubCounter) Count(ctx context.Context) (int, error)       { return 0, nil }
func (stubCounter) CountActive(ctx context.Context) (int, error) { return 0, nil }

type stubVisits struct {
	mu      sync.Mutex
	visits  []*domain.Visit
	created int
}

func (s *stubVisits) Create(ctx context.Context, v *domain.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits = append(s.visits, v)
	s.created++
	return nil
}

func (s *stubVisits) CountSince(ctx context.Context, since time.Time) (int, error) { return 0, nil }

func (s *stubVisits) CountUniqueSince(ctx context.Context, since time.Time) (int, error) {
	return 0, nil
}

func (s *stubVisits) TopPagesSince(ctx context.Context, since time.Time, limit int) ([]repository.PageCount, error) {
	return nil, nil
}

func setupRouter(t *testing.T) (http.Handler, *stubSearchService, *stubVisits) {
	t.Helper()

	search := &stubSearchService{}
	visits := &stubVisits{}

	cfg := RouterConfig{
		SearchHandler:     handlers.NewSearchHandler(search, stubAutocompleter{}, stubTagCloud{}),
		ContentHandler:    handlers.NewContentHandler(stubProjects{}, stubBlog{}),
		ContactHandler:    handlers.NewContactHandler(stubContacts{}),
		NewsletterHandler: handlers.NewNewsletterHandler(stubSubscribers{}),
		FAQHandler:        handlers.NewFAQHandler(stubVoter{}),
		StatsHandler: handlers.NewStatsHandler(
			stubCounter{}, stubCounter{}, stubCounter{}, stubCounter{},
			stubBlog{}, stubCounter{}, visits,
		),
		VisitStore: visits,
	}

	return NewRouter(cfg), search, visits
}

func TestRouter_HealthEndpoint(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
}

func TestRouter_SearchRoute(t *testing.T) {
	router, search, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/search/?q=django&category=blog", nil)
	req.Header.Set("User-Agent", "router-test")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "django", search.lastInput.Query)
	assert.Equal(t, "blog", search.lastInput.Category)
	assert.Equal(t, "router-test", search.lastInput.Request.UserAgent)
}

func TestRouter_GetRoutes(t *testing.T) {
	router, _, _ := setupRouter(t)

	paths := []string{
		"/api/search-suggestions/?q=dj",
		"/api/tag-cloud/",
		"/api/projects/",
		"/api/blog/",
		"/api/stats/",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouter_PostRoutes(t *testing.T) {
	router, _, _ := setupRouter(t)

	tests := []struct {
		path string
		body string
		want int
	}{
		{"/api/search/click/", `{"query_id":1,"url":"/projects/1/"}`, http.StatusOK},
		{"/api/contact/", `{"name":"A","email":"a@b.co","subject":"Hi","message":"Hey"}`, http.StatusCreated},
		{"/api/newsletter/", `{"email":"a@b.co"}`, http.StatusCreated},
		{"/api/faq/1/helpful/", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouter_VisitLogging(t *testing.T) {
	router, _, visits := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/search/?q=go", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	req = httptest.NewRequest(http.MethodGet, "/api/tag-cloud/", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 1, visits.created)
	require.Len(t, visits.visits, 1)
	assert.Equal(t, "/search/", visits.visits[0].PageVisited)
}
