package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"collabhub/internal/core/domain"
)

// handleSearchInfluencers filters the influencer index by username
// substring and exact niche or country. Paging uses page and pageSize.
func (h *Handler) handleSearchInfluencers(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r, "pageSize")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	filter := domain.InfluencerFilter{
		Username:       q.Get("username"),
		PrimaryNiche:   q.Get("primaryNiche"),
		SecondaryNiche: q.Get("secondaryNiche"),
		Country:        q.Get("country"),
	}
	res, err := retry(r.Context(), h.retries, func(ctx context.Context) (domain.Page[domain.Influencer], error) {
		return h.svc.Discovery.SearchInfluencers(ctx, filter, page)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := retry(r.Context(), h.retries, func(ctx context.Context) (domain.Page[domain.Campaign], error) {
		return h.svc.Discovery.ListAllCampaigns(ctx, page)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *Handler) handleListBrandCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	brandID := chi.URLParam(r, "brandID")
	res, err := retry(r.Context(), h.retries, func(ctx context.Context) (domain.Page[domain.Campaign], error) {
		return h.svc.Discovery.ListCampaignsForBrand(ctx, brandID, page)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}
