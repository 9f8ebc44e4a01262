package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/folio-cms/folio/internal/api"
	"github.com/folio-cms/folio/internal/repository"
)

const statsWindow = 30 * 24 * time.Hour

// Counter reports a total row count.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// PublishedCounter reports the number of published blog posts.
type PublishedCounter interface {
	CountPublished(ctx context.Context) (int, error)
}

// ActiveSubscriberCounter reports active newsletter subscribers.
type ActiveSubscriberCounter interface {
	CountActive(ctx context.Context) (int, error)
}

// VisitStats reads aggregate page-visit figures.
type VisitStats interface {
	CountSince(ctx context.Context, since time.Time) (int, error)
	CountUniqueSince(ctx context.Context, since time.Time) (int, error)
	TopPagesSince(ctx context.Context, since time.Time, limit int) ([]repository.PageCount, error)
}

type StatsHandler struct {
	projects    Counter
	experiences Counter
	skills      Counter
	searches    Counter
	blog        PublishedCounter
	subscribers ActiveSubscriberCounter
	visits      VisitStats
}

func NewStatsHandler(projects, experiences, skills, searches Counter, blog PublishedCounter, subscribers ActiveSubscriberCounter, visits VisitStats) *StatsHandler {
	return &StatsHandler{
		projects:    projects,
		experiences: experiences,
		skills:      skills,
		searches:    searches,
		blog:        blog,
		subscribers: subscribers,
		visits:      visits,
	}
}

type StatsResponse struct {
	Projects       int                    `json:"projects"`
	Experiences    int                    `json:"experiences"`
	Skills         int                    `json:"skills"`
	BlogPosts      int                    `json:"blog_posts"`
	Searches       int                    `json:"searches"`
	Subscribers    int                    `json:"subscribers"`
	Visits30d      int                    `json:"visits_30d"`
	UniqueVisitors int                    `json:"unique_visitors_30d"`
	TopPages       []repository.PageCount `json:"top_pages_30d"`
}

// Stats handles GET /api/stats/.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	since := time.Now().Add(-statsWindow)

	var (
		resp StatsResponse
		err  error
	)
	counts := []struct {
		dest *int
		fn   func(context.Context) (int, error)
	}{
		{&resp.Projects, h.projects.Count},
		{&resp.Experiences, h.experiences.Count},
		{&resp.Skills, h.skills.Count},
		{&resp.BlogPosts, h.blog.CountPublished},
		{&resp.Searches, h.searches.Count},
		{&resp.Subscribers, h.subscribers.CountActive},
		{&resp.Visits30d, func(ctx context.Context) (int, error) { return h.visits.CountSince(ctx, since) }},
		{&resp.UniqueVisitors, func(ctx context.Context) (int, error) { return h.visits.CountUniqueSince(ctx, since) }},
	}
	for _, c := range counts {
		if *c.dest, err = c.fn(ctx); err != nil {
			api.Error(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}
	}

	if resp.TopPages, err = h.visits.TopPagesSince(ctx, since, 10); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	if resp.TopPages == nil {
		resp.TopPages = []repository.PageCount{}
	}

	api.Success(w, http.StatusOK, resp)
}
