package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/telemetry"
)

// VisitStore appends page-visit rows.
type VisitStore interface {
	Create(ctx context.Context, v *domain.Visit) error
}

// VisitLog records one visit row per page request, best-effort. API and
// health traffic is skipped; only page routes count toward stats.
func VisitLog(store VisitStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet && trackablePath(r.URL.Path) {
				visit := &domain.Visit{
					IPAddress:   ClientIP(r),
					UserAgent:   r.UserAgent(),
					PageVisited: r.URL.Path,
					Referrer:    r.Referer(),
				}
				if err := store.Create(r.Context(), visit); err != nil {
					telemetry.CaptureError(r.Context(), fmt.Errorf("visit log: %w", err))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func trackablePath(path string) bool {
	if path == "/health" {
		return false
	}
	return !strings.HasPrefix(path, "/api/")
}
