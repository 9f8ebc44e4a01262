package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/folio-cms/folio/internal/api"
	"github.com/folio-cms/folio/internal/api/middleware"
	"github.com/folio-cms/folio/internal/service"
)

// SearchService runs universal searches and records result clicks.
type SearchService interface {
	Search(ctx context.Context, input service.SearchInput) *service.SearchResponse
	RecordClick(ctx context.Context, queryID int64, resultURL string) error
}

// Autocompleter provides live-typing suggestions.
type Autocompleter interface {
	Autocomplete(ctx context.Context, query string) []string
}

// TagCloudProvider computes the weighted tag cloud.
type TagCloudProvider interface {
	TagCloud(ctx context.Context) []service.TagCloudEntry
}

type SearchHandler struct {
	search   SearchService
	suggest  Autocompleter
	tagCloud TagCloudProvider
}

func NewSearchHandler(search SearchService, suggest Autocompleter, tagCloud TagCloudProvider) *SearchHandler {
	return &SearchHandler{search: search, suggest: suggest, tagCloud: tagCloud}
}

// Search handles GET /search/.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	input := service.SearchInput{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Request: service.RequestContext{
			IPAddress: middleware.ClientIP(r),
			UserAgent: r.UserAgent(),
		},
	}

	resp := h.search.Search(r.Context(), input)
	api.Success(w, http.StatusOK, resp)
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Suggestions handles GET /api/search-suggestions/.
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := h.suggest.Autocomplete(r.Context(), r.URL.Query().Get("q"))
	api.Success(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

type TagCloudResponse struct {
	Tags []service.TagCloudEntry `json:"tags"`
}

// TagCloud handles GET /api/tag-cloud/.
func (h *SearchHandler) TagCloud(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, TagCloudResponse{Tags: h.tagCloud.TagCloud(r.Context())})
}

type RecordClickRequest struct {
	QueryID int64  `json:"query_id"`
	URL     string `json:"url"`
}

// RecordClick handles POST /api/search/click/.
func (h *SearchHandler) RecordClick(w http.ResponseWriter, r *http.Request) {
	var req RecordClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QueryID <= 0 || req.URL == "" {
		api.Error(w, http.StatusBadRequest, "query_id and url are required")
		return
	}

	if err := h.search.RecordClick(r.Context(), req.QueryID, req.URL); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]bool{"recorded": true})
}
