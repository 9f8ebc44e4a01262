package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProjectLister struct {
	mock.Mock
}

func (m *MockProjectLister) List(ctx context.Context, filter repository.ProjectFilter) ([]*domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

type MockBlogLister struct {
	mock.Mock
}

func (m *MockBlogLister) List(ctx context.Context, filter repository.BlogPostFilter) ([]*domain.BlogPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BlogPost), args.Error(1)
}

func TestContentHandler_ListProjects(t *testing.T) {
	projects := new(MockProjectLister)
	handler := NewContentHandler(projects, new(MockBlogLister))

	projects.On("List", mock.Anything, mock.MatchedBy(func(f repository.ProjectFilter) bool {
		return f.FeaturedOnly && f.Type == domain.ProjectType("web") && f.Limit == 10 && f.Offset == 10
	})).Return([]*domain.Project{{ID: 1, Title: "Portfolio"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/?featured=true&type=web&page=2&page_size=10", nil)
	w := httptest.NewRecorder()

	handler.ListProjects(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["data"], 1)
	projects.AssertExpectations(t)
}

func TestContentHandler_ListProjects_EmptyIsArray(t *testing.T) {
	projects := new(MockProjectLister)
	handler := NewContentHandler(projects, new(MockBlogLister))

	projects.On("List", mock.Anything, mock.Anything).Return([]*domain.Project(nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/", nil)
	w := httptest.NewRecorder()

	handler.ListProjects(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestContentHandler_ListProjects_StoreError(t *testing.T) {
	projects := new(MockProjectLister)
	handler := NewContentHandler(projects, new(MockBlogLister))

	projects.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/", nil)
	w := httptest.NewRecorder()

	handler.ListProjects(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestContentHandler_ListBlogPosts(t *testing.T) {
	blog := new(MockBlogLister)
	handler := NewContentHandler(new(MockProjectLister), blog)

	blog.On("List", mock.Anything, mock.MatchedBy(func(f repository.BlogPostFilter) bool {
		return f.Tag == "django" && f.Limit == 20 && f.Offset == 0
	})).Return([]*domain.BlogPost{{ID: 2, Title: "Deploying Django", Slug: "deploying-django"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/blog/?tag=django", nil)
	w := httptest.NewRecorder()

	handler.ListBlogPosts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deploying-django")
	blog.AssertExpectations(t)
}
