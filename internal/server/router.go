package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folio-cms/folio/internal/api"
	"github.com/folio-cms/folio/internal/api/handlers"
	"github.com/folio-cms/folio/internal/api/middleware"
)

type RouterConfig struct {
	SearchHandler     *handlers.SearchHandler
	ContentHandler    *handlers.ContentHandler
	ContactHandler    *handlers.ContactHandler
	NewsletterHandler *handlers.NewsletterHandler
	FAQHandler        *handlers.FAQHandler
	StatsHandler      *handlers.StatsHandler

	// VisitStore is optional; when nil, page visits are not recorded.
	VisitStore middleware.VisitStore
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))
	if cfg.VisitStore != nil {
		r.Use(middleware.VisitLog(cfg.VisitStore))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/search/", cfg.SearchHandler.Search)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search-suggestions/", cfg.SearchHandler.Suggestions)
		r.Get("/tag-cloud/", cfg.SearchHandler.TagCloud)
		r.Post("/search/click/", cfg.SearchHandler.RecordClick)

		r.Get("/projects/", cfg.ContentHandler.ListProjects)
		r.Get("/blog/", cfg.ContentHandler.ListBlogPosts)

		r.Post("/contact/", cfg.ContactHandler.Submit)
		r.Post("/newsletter/", cfg.NewsletterHandler.Subscribe)
		r.Post("/faq/{id}/helpful/", cfg.FAQHandler.MarkHelpful)

		r.Get("/stats/", cfg.StatsHandler.Stats)
	})

	return r
}
