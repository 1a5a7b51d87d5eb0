package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"collabhub/internal/core/port"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Campaigns port.CampaignUseCase
	Matching  port.MatchingUseCase
	Discovery port.DiscoveryUseCase
	// Health reports store readiness for /healthz. Nil means always ready.
	Health func(ctx context.Context) error
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Every route under /api/v1 requires a bearer token; the resolved actor is
// passed to the use cases that authorize on it.
type Handler struct {
	svc     Services
	auth    *Authenticator
	logger  *slog.Logger
	retries int
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. retries is the
// number of extra attempts made for a transient failure.
func NewHandler(svc Services, auth *Authenticator, logger *slog.Logger, retries int) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger, retries: max(retries, 0)}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Post("/activate", h.handleActivateCampaign)
				r.Post("/complete", h.handleCompleteCampaign)
				r.Post("/applications", h.handleSubmitApplication)
				r.Get("/applications", h.handleListCampaignApplications)
				r.Get("/applications/{influencerID}", h.handleGetApplication)
				r.Post("/applications/{influencerID}/decision", h.handleDecideApplication)
			})
		})
		r.Get("/brands/{brandID}/campaigns", h.handleListBrandCampaigns)
		r.Get("/influencers", h.handleSearchInfluencers)
		r.Get("/influencers/{influencerID}/applications", h.handleListInfluencerApplications)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.svc.Health != nil {
		if err := h.svc.Health(r.Context()); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			writeJSON(w, h.logger, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
