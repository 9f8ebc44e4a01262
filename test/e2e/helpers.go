//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/folio-cms/folio/internal/api/handlers"
	"github.com/folio-cms/folio/internal/repository"
	"github.com/folio-cms/folio/internal/server"
	"github.com/folio-cms/folio/internal/service"
	"github.com/folio-cms/folio/internal/testutil"
)

// TestEnv holds all resources needed for end-to-end tests.
type TestEnv struct {
	T            *testing.T
	Ctx          context.Context
	PostgresC    *testutil.PostgresContainer
	Pool         *pgxpool.Pool
	ServerURL    string
	ServerCloser func()
	HTTPClient   *http.Client
}

// SetupEnv starts a Postgres container, migrates it, and serves the
// full router against it.
func SetupEnv(t *testing.T) *TestEnv {
	ctx := context.Background()

	pgC := testutil.NewPostgresContainer(ctx, t)
	pool := testutil.NewTestPool(ctx, t, pgC, "../../migrations")

	port, err := getFreePort()
	if err != nil {
		t.Fatalf("failed to get free port: %v", err)
	}

	serverURL, serverCloser := startServer(t, pool, port)

	return &TestEnv{
		T:            t,
		Ctx:          ctx,
		PostgresC:    pgC,
		Pool:         pool,
		ServerURL:    serverURL,
		ServerCloser: serverCloser,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Cleanup releases all resources.
func (e *TestEnv) Cleanup() {
	if e.ServerCloser != nil {
		e.ServerCloser()
	}
	if e.Pool != nil {
		e.Pool.Close()
	}
	if e.PostgresC != nil {
		e.PostgresC.Terminate(e.Ctx)
	}
}

// APIResponse is the standard response envelope.
type APIResponse struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error,omitempty"`
}

// Get performs a GET request.
func (e *TestEnv) Get(path string) (*APIResponse, int, error) {
	return e.doRequest(http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body.
func (e *TestEnv) Post(path string, body interface{}) (*APIResponse, int, error) {
	return e.doRequest(http.MethodPost, path, body)
}

func (e *TestEnv) doRequest(method, path string, body interface{}) (*APIResponse, int, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, e.ServerURL+path, reqBody)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	var apiResp APIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	return &apiResp, resp.StatusCode, nil
}

func startServer(t *testing.T, pool *pgxpool.Pool, port int) (string, func()) {
	projectRepo := repository.NewProjectRepository(pool)
	experienceRepo := repository.NewExperienceRepository(pool)
	skillRepo := repository.NewSkillRepository(pool)
	blogRepo := repository.NewBlogPostRepository(pool)
	certificationRepo := repository.NewCertificationRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	faqRepo := repository.NewFAQRepository(pool)
	resourceRepo := repository.NewResourceRepository(pool)
	tagRepo := repository.NewTagRepository(pool)
	searchQueryRepo := repository.NewSearchQueryRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	newsletterRepo := repository.NewNewsletterRepository(pool)
	visitRepo := repository.NewVisitRepository(pool)

	suggestionSvc := service.NewSuggestionService(tagRepo, projectRepo, skillRepo, searchQueryRepo, nil)
	searchSvc := service.NewUniversalSearchService(service.Sources{
		Projects:       projectRepo,
		Experiences:    experienceRepo,
		Skills:         skillRepo,
		BlogPosts:      blogRepo,
		Certifications: certificationRepo,
		Testimonials:   testimonialRepo,
		FAQs:           faqRepo,
		Resources:      resourceRepo,
	}, searchQueryRepo, suggestionSvc)
	tagCloudSvc := service.NewTagCloudService(tagRepo, projectRepo, blogRepo, nil)

	cfg := server.RouterConfig{
		SearchHandler:     handlers.NewSearchHandler(searchSvc, suggestionSvc, tagCloudSvc),
		ContentHandler:    handlers.NewContentHandler(projectRepo, blogRepo),
		ContactHandler:    handlers.NewContactHandler(contactRepo),
		NewsletterHandler: handlers.NewNewsletterHandler(newsletterRepo),
		FAQHandler:        handlers.NewFAQHandler(faqRepo),
		StatsHandler: handlers.NewStatsHandler(
			projectRepo, experienceRepo, skillRepo, searchQueryRepo,
			blogRepo, newsletterRepo, visitRepo,
		),
		VisitStore: visitRepo,
	}

	router := server.NewRouter(cfg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := fmt.Sprintf("http://localhost:%d", port)
	waitForServer(t, serverURL, 10*time.Second)

	return serverURL, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}
}

func waitForServer(t *testing.T, url string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("server did not start within %v", timeout)
}

func getFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
