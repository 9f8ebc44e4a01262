package handlers

import (
	"context"
	"net/http"

	"github.com/folio-cms/folio/internal/api"
	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/pagination"
	"github.com/folio-cms/folio/internal/repository"
)

// ProjectLister reads filtered project lists.
type ProjectLister interface {
	List(ctx context.Context, filter repository.ProjectFilter) ([]*domain.Project, error)
}

// BlogLister reads filtered published-post lists.
type BlogLister interface {
	List(ctx context.Context, filter repository.BlogPostFilter) ([]*domain.BlogPost, error)
}

type ContentHandler struct {
	projects ProjectLister
	blog     BlogLister
}

func NewContentHandler(projects ProjectLister, blog BlogLister) *ContentHandler {
	return &ContentHandler{projects: projects, blog: blog}
}

// ListProjects handles GET /api/projects/.
func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := pagination.Parse(q)

	filter := repository.ProjectFilter{
		Type:         domain.ProjectType(q.Get("type")),
		Status:       domain.ProjectStatus(q.Get("status")),
		FeaturedOnly: q.Get("featured") == "true",
		Search:       q.Get("q"),
		Limit:        page.Limit(),
		Offset:       page.Offset(),
	}

	projects, err := h.projects.List(r.Context(), filter)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	if projects == nil {
		projects = []*domain.Project{}
	}

	api.Success(w, http.StatusOK, projects)
}

// ListBlogPosts handles GET /api/blog/.
func (h *ContentHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := pagination.Parse(q)

	filter := repository.BlogPostFilter{
		Search: q.Get("q"),
		Tag:    q.Get("tag"),
		Limit:  page.Limit(),
		Offset: page.Offset(),
	}

	posts, err := h.blog.List(r.Context(), filter)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to list blog posts")
		return
	}
	if posts == nil {
		posts = []*domain.BlogPost{}
	}

	api.Success(w, http.StatusOK, posts)
}
