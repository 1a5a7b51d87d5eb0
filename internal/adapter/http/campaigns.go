package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"collabhub/internal/core/domain"
)

// handleCreateCampaign creates a pending campaign owned by the calling
// brand. Field errors are returned all at once with HTTP 400.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if err := requireRole(actor, domain.RoleBrand); err != nil {
		h.writeError(w, r, err)
		return
	}
	var in domain.CampaignInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	// Creation is not idempotent, so a transient failure is not retried.
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), actor.ID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "campaignID")
	c, err := retry(r.Context(), h.retries, func(ctx context.Context) (*domain.Campaign, error) {
		return h.svc.Campaigns.GetCampaign(ctx, id)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "campaignID")
	actor := actorFrom(r.Context())
	_, err := retry(r.Context(), h.retries, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, h.svc.Campaigns.DeleteCampaign(ctx, id, actor)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Campaigns.ActivateCampaign)
}

func (h *Handler) handleCompleteCampaign(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Campaigns.CompleteCampaign)
}

// transition runs a lifecycle call. A retried transition that already took
// effect reports invalid state, the same as a lost race.
func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, string, domain.Actor) (*domain.Campaign, error)) {
	id := chi.URLParam(r, "campaignID")
	actor := actorFrom(r.Context())
	c, err := retry(r.Context(), h.retries, func(ctx context.Context) (*domain.Campaign, error) {
		return fn(ctx, id, actor)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, c)
}
