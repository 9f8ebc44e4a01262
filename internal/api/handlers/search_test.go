package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, input service.SearchInput) *service.SearchResponse {
	args := m.Called(ctx, input)
	return args.Get(0).(*service.SearchResponse)
}

func (m *MockSearchService) RecordClick(ctx context.Context, queryID int64, resultURL string) error {
	args := m.Called(ctx, queryID, resultURL)
	return args.Error(0)
}

type MockAutocompleter struct {
	mock.Mock
}

func (m *MockAutocompleter) Autocomplete(ctx context.Context, query string) []string {
	args := m.Called(ctx, query)
	return args.Get(0).([]string)
}

type MockTagCloudProvider struct {
	mock.Mock
}

func (m *MockTagCloudProvider) TagCloud(ctx context.Context) []service.TagCloudEntry {
	args := m.Called(ctx)
	return args.Get(0).([]service.TagCloudEntry)
}

func newSearchHandler(svc *MockSearchService, auto *MockAutocompleter, cloud *MockTagCloudProvider) *SearchHandler {
	if svc == nil {
		svc = new(MockSearchService)
	}
	if auto == nil {
		auto = new(MockAutocompleter)
	}
	if cloud == nil {
		cloud = new(MockTagCloudProvider)
	}
	return NewSearchHandler(svc, auto, cloud)
}

func TestSearchHandler_Search(t *testing.T) {
	mockSvc := new(MockSearchService)
	handler := newSearchHandler(mockSvc, nil, nil)

	resp := &service.SearchResponse{
		Query:        "django",
		Category:     "all",
		Results:      map[service.SourceType][]service.SearchResult{},
		TotalResults: 0,
	}
	mockSvc.On("Search", mock.Anything, mock.MatchedBy(func(input service.SearchInput) bool {
		return input.Query == "django" && input.Category == "projects" && input.Request.UserAgent == "test-agent"
	})).Return(resp)

	req := httptest.NewRequest(http.MethodGet, "/search/?q=django&category=projects", nil)
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "django", data["query"])
	mockSvc.AssertExpectations(t)
}

func TestSearchHandler_Suggestions(t *testing.T) {
	mockAuto := new(MockAutocompleter)
	handler := newSearchHandler(nil, mockAuto, nil)

	mockAuto.On("Autocomplete", mock.Anything, "dj").Return([]string{"Django", "Django REST"})

	req := httptest.NewRequest(http.MethodGet, "/api/search-suggestions/?q=dj", nil)
	w := httptest.NewRecorder()

	handler.Suggestions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["suggestions"], 2)
	mockAuto.AssertExpectations(t)
}

func TestSearchHandler_TagCloud(t *testing.T) {
	mockCloud := new(MockTagCloudProvider)
	handler := newSearchHandler(nil, nil, mockCloud)

	mockCloud.On("TagCloud", mock.Anything).Return([]service.TagCloudEntry{
		{Name: "Python", Count: 4, Color: "#3776ab", URL: "/search/?q=Python"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tag-cloud/", nil)
	w := httptest.NewRecorder()

	handler.TagCloud(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	tags := data["tags"].([]interface{})
	require.Len(t, tags, 1)
	first := tags[0].(map[string]interface{})
	assert.Equal(t, "Python", first["name"])
	assert.Equal(t, "#3776ab", first["color"])
	mockCloud.AssertExpectations(t)
}

func TestSearchHandler_RecordClick_Success(t *testing.T) {
	mockSvc := new(MockSearchService)
	handler := newSearchHandler(mockSvc, nil, nil)

	mockSvc.On("RecordClick", mock.Anything, int64(42), "/projects/7/").Return(nil)

	body := `{"query_id":42,"url":"/projects/7/"}`
	req := httptest.NewRequest(http.MethodPost, "/api/search/click/", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()

	handler.RecordClick(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recorded":true`)
	mockSvc.AssertExpectations(t)
}

func TestSearchHandler_RecordClick_InvalidBody(t *testing.T) {
	handler := newSearchHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search/click/", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	handler.RecordClick(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandler_RecordClick_MissingFields(t *testing.T) {
	handler := newSearchHandler(nil, nil, nil)

	body := `{"query_id":0,"url":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/search/click/", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()

	handler.RecordClick(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "query_id and url are required")
}

func TestSearchHandler_RecordClick_QueryNotFound(t *testing.T) {
	mockSvc := new(MockSearchService)
	handler := newSearchHandler(mockSvc, nil, nil)

	mockSvc.On("RecordClick", mock.Anything, int64(999), "/projects/1/").Return(domain.ErrSearchQueryNotFound)

	body := `{"query_id":999,"url":"/projects/1/"}`
	req := httptest.NewRequest(http.MethodPost, "/api/search/click/", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()

	handler.RecordClick(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSvc.AssertExpectations(t)
}
