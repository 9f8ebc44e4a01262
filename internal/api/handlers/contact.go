package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/folio-cms/folio/internal/api"
	"github.com/folio-cms/folio/internal/api/middleware"
	"github.com/folio-cms/folio/internal/domain"
)

// ContactStore persists contact-form submissions.
type ContactStore interface {
	Create(ctx context.Context, c *domain.Contact) error
}

type ContactHandler struct {
	store ContactStore
}

func NewContactHandler(store ContactStore) *ContactHandler {
	return &ContactHandler{store: store}
}

type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
}

// Submit handles POST /api/contact/.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact := &domain.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Subject:   req.Subject,
		Message:   req.Message,
		Budget:    req.Budget,
		Timeline:  req.Timeline,
		IPAddress: middleware.ClientIP(r),
	}
	if err := domain.ValidateContact(contact); err != nil {
		api.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Create(r.Context(), contact); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, contact)
}
