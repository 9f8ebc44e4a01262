package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/folio-cms/folio/internal/api"
	"github.com/folio-cms/folio/internal/domain"
)

// SubscriberStore persists newsletter signups.
type SubscriberStore interface {
	Create(ctx context.Context, s *domain.NewsletterSubscriber) error
	GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type NewsletterHandler struct {
	store SubscriberStore
}

func NewNewsletterHandler(store SubscriberStore) *NewsletterHandler {
	return &NewsletterHandler{store: store}
}

type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Subscribe handles POST /api/newsletter/. A previously unsubscribed
// address is reactivated rather than duplicated.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub := &domain.NewsletterSubscriber{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Name:     strings.TrimSpace(req.Name),
		IsActive: true,
	}
	if err := domain.ValidateSubscriber(sub); err != nil {
		api.HandleError(w, err)
		return
	}

	existing, err := h.store.GetByEmail(r.Context(), sub.Email)
	if err != nil {
		api.HandleError(w, err)
		return
	}
	if existing != nil {
		if existing.IsActive {
			api.HandleError(w, domain.ErrSubscriberAlreadyExists)
			return
		}
		if err := h.store.SetActive(r.Context(), existing.ID, true); err != nil {
			api.HandleError(w, err)
			return
		}
		existing.IsActive = true
		api.Success(w, http.StatusOK, existing)
		return
	}

	if err := h.store.Create(r.Context(), sub); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, sub)
}
