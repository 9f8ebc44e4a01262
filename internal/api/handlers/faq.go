package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/folio-cms/folio/internal/api"
)

// HelpfulVoter increments an FAQ entry's helpful counter.
type HelpfulVoter interface {
	IncrementHelpfulVotes(ctx context.Context, id int64) (int, error)
}

type FAQHandler struct {
	voter HelpfulVoter
}

func NewFAQHandler(voter HelpfulVoter) *FAQHandler {
	return &FAQHandler{voter: voter}
}

type HelpfulVoteResponse struct {
	HelpfulVotes int `json:"helpful_votes"`
}

// MarkHelpful handles POST /api/faq/{id}/helpful/.
func (h *FAQHandler) MarkHelpful(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.Error(w, http.StatusBadRequest, "invalid faq id")
		return
	}

	votes, err := h.voter.IncrementHelpfulVotes(r.Context(), id)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, HelpfulVoteResponse{HelpfulVotes: votes})
}
