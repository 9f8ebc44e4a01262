package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubscriberStore struct {
	mock.Mock
}

func (m *MockSubscriberStore) Create(ctx context.Context, s *domain.NewsletterSubscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriberStore) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsletterSubscriber), args.Error(1)
}

func (m *MockSubscriberStore) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func postNewsletter(handler *NewsletterHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	handler.Subscribe(w, req)
	return w
}

func TestNewsletterHandler_Subscribe_New(t *testing.T) {
	store := new(MockSubscriberStore)
	handler := NewNewsletterHandler(store)

	store.On("GetByEmail", mock.Anything, "reader@example.com").Return(nil, nil)
	store.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.NewsletterSubscriber) bool {
		return s.Email == "reader@example.com" && s.Name == "Reader" && s.IsActive
	})).Return(nil)

	w := postNewsletter(handler, `{"email":"Reader@Example.com","name":" Reader "}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	store.AssertExpectations(t)
}

func TestNewsletterHandler_Subscribe_AlreadyActive(t *testing.T) {
	store := new(MockSubscriberStore)
	handler := NewNewsletterHandler(store)

	store.On("GetByEmail", mock.Anything, "reader@example.com").Return(&domain.NewsletterSubscriber{
		ID: 3, Email: "reader@example.com", IsActive: true,
	}, nil)

	w := postNewsletter(handler, `{"email":"reader@example.com"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewsletterHandler_Subscribe_Reactivates(t *testing.T) {
	store := new(MockSubscriberStore)
	handler := NewNewsletterHandler(store)

	store.On("GetByEmail", mock.Anything, "back@example.com").Return(&domain.NewsletterSubscriber{
		ID: 9, Email: "back@example.com", IsActive: false,
	}, nil)
	store.On("SetActive", mock.Anything, int64(9), true).Return(nil)

	w := postNewsletter(handler, `{"email":"back@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewsletterHandler_Subscribe_InvalidEmail(t *testing.T) {
	store := new(MockSubscriberStore)
	handler := NewNewsletterHandler(store)

	w := postNewsletter(handler, `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestNewsletterHandler_Subscribe_InvalidBody(t *testing.T) {
	handler := NewNewsletterHandler(new(MockSubscriberStore))

	w := postNewsletter(handler, "{oops")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
