package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"collabhub/internal/core/domain"
)

type submitRequest struct {
	InfluencerID string  `json:"influencerId"`
	Offer        float64 `json:"offer"`
	Message      string  `json:"message"`
}

type decisionRequest struct {
	Decision domain.Verdict `json:"decision"`
}

// handleSubmitApplication records an application by the calling influencer.
// Submissions are not blindly retried: after a transient failure the pair is
// looked up first, and an application matching this request is taken as
// the result of the failed attempt.
func (h *Handler) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if err := requireRole(actor, domain.RoleInfluencer); err != nil {
		h.writeError(w, r, err)
		return
	}
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.InfluencerID != "" && req.InfluencerID != actor.ID {
		h.writeError(w, r, domain.Forbidden("influencers may only apply on their own behalf"))
		return
	}
	in := domain.ApplicationInput{
		CampaignID:   chi.URLParam(r, "campaignID"),
		InfluencerID: actor.ID,
		Offer:        req.Offer,
		Message:      req.Message,
	}

	ctx := r.Context()
	app, err := h.svc.Matching.SubmitApplication(ctx, in)
	for attempt := 0; domain.IsTransient(err) && attempt < h.retries; attempt++ {
		if !sleep(ctx, time.Duration(attempt+1)*retryBackoff) {
			break
		}
		existing, getErr := h.svc.Matching.GetApplication(ctx, in.CampaignID, in.InfluencerID)
		switch {
		case getErr == nil && sameSubmission(existing, in):
			h.logger.Info("submission recovered after transient failure",
				slog.String("campaign_id", in.CampaignID),
				slog.String("influencer_id", in.InfluencerID))
			app, err = existing, nil
		case getErr == nil:
			app, err = nil, domain.Conflict("an application for this campaign already exists")
		case domain.KindOf(getErr) == domain.KindNotFound:
			app, err = h.svc.Matching.SubmitApplication(ctx, in)
		default:
			err = getErr
		}
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, app)
}

// sameSubmission reports whether app is the pending application in would
// have created.
func sameSubmission(app *domain.Application, in domain.ApplicationInput) bool {
	return app.Decision == domain.DecisionPending &&
		app.Offer == in.Offer &&
		app.Message == strings.TrimSpace(in.Message)
}

// handleGetApplication is visible to the applicant, the campaign owner and
// admins.
func (h *Handler) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	var (
		campaignID   = chi.URLParam(r, "campaignID")
		influencerID = chi.URLParam(r, "influencerID")
		actor        = actorFrom(r.Context())
	)
	app, err := retry(r.Context(), h.retries, func(ctx context.Context) (*domain.Application, error) {
		if actor.ID != influencerID && !actor.IsAdmin() {
			c, err := h.svc.Campaigns.GetCampaign(ctx, campaignID)
			if err != nil {
				return nil, err
			}
			if !c.OwnedBy(actor.ID) {
				return nil, domain.Forbidden("not allowed to view this application")
			}
		}
		return h.svc.Matching.GetApplication(ctx, campaignID, influencerID)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, app)
}

// handleDecideApplication applies the calling brand's verdict. The decision
// is a compare-and-set, so retrying a transient failure can at worst report
// invalid state for a decision that already committed.
func (h *Handler) handleDecideApplication(w http.ResponseWriter, r *http.Request) {
	var (
		campaignID   = chi.URLParam(r, "campaignID")
		influencerID = chi.URLParam(r, "influencerID")
		actor        = actorFrom(r.Context())
	)
	if err := requireRole(actor, domain.RoleBrand); err != nil {
		h.writeError(w, r, err)
		return
	}
	var req decisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	app, err := retry(r.Context(), h.retries, func(ctx context.Context) (*domain.Application, error) {
		return h.svc.Matching.DecideApplication(ctx, campaignID, influencerID, req.Decision, actor.ID)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, app)
}

func (h *Handler) handleListCampaignApplications(w http.ResponseWriter, r *http.Request) {
	var (
		campaignID = chi.URLParam(r, "campaignID")
		decision   = domain.Decision(r.URL.Query().Get("decision"))
		actor      = actorFrom(r.Context())
	)
	apps, err := retry(r.Context(), h.retries, func(ctx context.Context) ([]domain.Application, error) {
		return h.svc.Matching.ListApplicationsForCampaign(ctx, campaignID, actor, decision)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	writeJSON(w, h.logger, http.StatusOK, listResponse[domain.Application]{Items: apps})
}

// handleListInfluencerApplications lists an influencer's applications for
// themselves or an admin. status selects applied (default) or registered.
func (h *Handler) handleListInfluencerApplications(w http.ResponseWriter, r *http.Request) {
	var (
		influencerID = chi.URLParam(r, "influencerID")
		actor        = actorFrom(r.Context())
		mode         = domain.ListMode(r.URL.Query().Get("status"))
	)
	if mode == "" {
		mode = domain.ListApplied
	}
	if actor.ID != influencerID && !actor.IsAdmin() {
		h.writeError(w, r, domain.Forbidden("not allowed to list another influencer's applications"))
		return
	}
	apps, err := retry(r.Context(), h.retries, func(ctx context.Context) ([]domain.Application, error) {
		apps := []domain.Application{}
		for app, err := range h.svc.Matching.ListApplicationsForInfluencer(ctx, influencerID, mode) {
			if err != nil {
				return nil, err
			}
			apps = append(apps, app)
		}
		return apps, nil
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, listResponse[domain.Application]{Items: apps})
}
